// Package http assembles the chat router's HTTP server.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/config"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/service"
	v1 "github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/v1"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/ws"
)

// NewServer creates and configures the HTTP server. JSON routes and the
// WebSocket endpoint share one listener.
func NewServer(svc *service.Service, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Handlers
	v1Handler := v1.NewHandler(svc)
	wsServer := ws.NewServer(svc)

	// Middleware
	e.Pre(corsHeaders())
	e.Pre(preflight(v1Handler.Preflight))
	e.Use(middleware.RequestID())
	e.Use(requestContext())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	var auth echo.MiddlewareFunc
	if cfg.AuthJWTSecret != "" {
		auth = bearerAuth(cfg.AuthJWTSecret)
	}

	// Register Routes
	v1Handler.RegisterRoutes(e, auth)
	wsServer.RegisterRoutes(e, auth)

	return e
}
