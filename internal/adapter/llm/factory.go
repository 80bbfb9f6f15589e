package llm

import (
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	// ModeBedrock uses Amazon Bedrock.
	ModeBedrock = "bedrock"
	// ModeMock uses the in-process MockClient.
	ModeMock = "mock"
)

// NewClient creates a backend client for the configured mode.
// Any mode other than ModeMock selects Bedrock.
func NewClient(mode string, cfg aws.Config, timeout time.Duration) Client {
	if mode == ModeMock {
		slog.Info("BACKEND_MODE=mock detected, using mock model backend")
		return NewMockClient()
	}
	return NewBedrockClient(cfg, timeout)
}
