package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/service"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/apierr"
)

// GetSessionHistory returns the most recent turns of a session.
// GET /sessions/:session_id/history
func (h *Handler) GetSessionHistory(c echo.Context) error {
	sessionID := c.Param("session_id")
	limit := service.DefaultHistoryLimit
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil {
			limit = val
		}
	}

	ctx := c.Request().Context()

	turns, err := h.service.GetHistory(ctx, sessionID, limit)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to get history", "session_id", sessionID, "error", err)
		return c.JSON(http.StatusInternalServerError, apierr.Body(apierr.MsgHistoryFailed))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"turns":      turns,
	})
}
