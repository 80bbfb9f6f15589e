// Package llm translates prompts into provider-specific model invocations.
package llm

import (
	"context"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// Backend invokes a model with a serialized provider request body and
// returns the serialized provider response body.
type Backend interface {
	InvokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error)
}

// Catalog lists the foundation models the backend offers.
type Catalog interface {
	ListFoundationModels(ctx context.Context) ([]domain.ModelSummary, error)
}

// Client is a backend that can also list its catalog.
type Client interface {
	Backend
	Catalog
}

// Ensure implementations satisfy Client.
var (
	_ Client = (*BedrockClient)(nil)
	_ Client = (*MockClient)(nil)
)
