package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	server "github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket chat API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := observability.Logger()

	log.Info("starting chatrouter",
		"version", version.Get().String(),
		"http_port", cfg.HTTPPort,
		"backend_mode", cfg.BackendMode,
		"history_driver", cfg.HistoryDriver,
		"analytics_driver", cfg.AnalyticsDriver,
		"default_model_id", cfg.DefaultModelID,
		"auth_enabled", cfg.AuthJWTSecret != "",
	)

	svc, cleanup, err := buildService(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	e := server.NewServer(svc, cfg)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("chat API started", "port", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Info("shutting down chatrouter")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("failed to shutdown server gracefully", "error", err)
	}

	log.Info("chatrouter stopped")
	return nil
}
