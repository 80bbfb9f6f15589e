// Package v1 provides the JSON HTTP handlers of the chat router.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/service"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/version"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the routes with the echo server. auth guards
// every route except health; pass nil to leave them open. Preflight is
// answered before routing, see Preflight.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	var guarded []echo.MiddlewareFunc
	if auth != nil {
		guarded = append(guarded, auth)
	}

	e.POST("/chat", h.Chat, guarded...)
	e.GET("/models", h.ListModels, guarded...)
	e.GET("/sessions/:session_id/history", h.GetSessionHistory, guarded...)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": version.Get().GitVersion,
	})
}

// Preflight acknowledges a CORS preflight request for any path. The CORS
// headers themselves are set by middleware on every response.
func (h *Handler) Preflight(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "CORS preflight successful"})
}
