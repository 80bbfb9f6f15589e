package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/apierr"
)

// ListModels lists the catalog models of the supported provider families.
// GET /models
func (h *Handler) ListModels(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := h.service.ListModels(ctx)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list models", "error", err)
		return c.JSON(http.StatusInternalServerError, apierr.Body(apierr.MsgModelsFailed))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"models":      models,
		"total_count": len(models),
	})
}
