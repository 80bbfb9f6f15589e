package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/apierr"
)

// Chat runs one conversational turn.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	// An empty body is an empty request and fails validation below.
	var req domain.ChatRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		observability.LoggerFromContext(ctx).Error("failed to decode chat request", "error", err)
		return c.JSON(http.StatusInternalServerError, apierr.Body(apierr.MsgInternal))
	}

	resp, err := h.service.Chat(ctx, req)
	if err != nil {
		status, msg := apierr.Classify(err)
		return c.JSON(status, apierr.Body(msg))
	}
	return c.JSON(http.StatusOK, resp)
}
