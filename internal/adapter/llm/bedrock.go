package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// RuntimeAPI is the subset of the Bedrock runtime client used here.
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// CatalogAPI is the subset of the Bedrock control-plane client used here.
type CatalogAPI interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// BedrockClient invokes models through Amazon Bedrock.
type BedrockClient struct {
	runtime RuntimeAPI
	catalog CatalogAPI
	timeout time.Duration
}

// NewBedrockClient creates a client from an AWS config.
func NewBedrockClient(cfg aws.Config, timeout time.Duration) *BedrockClient {
	return NewBedrockClientWithAPIs(bedrockruntime.NewFromConfig(cfg), bedrock.NewFromConfig(cfg), timeout)
}

// NewBedrockClientWithAPIs creates a client over explicit API implementations.
func NewBedrockClientWithAPIs(runtime RuntimeAPI, catalog CatalogAPI, timeout time.Duration) *BedrockClient {
	return &BedrockClient{runtime: runtime, catalog: catalog, timeout: timeout}
}

// InvokeModel sends one synchronous InvokeModel call.
func (c *BedrockClient) InvokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("bedrock invoke: %w", err)
	}
	return out.Body, nil
}

// ListFoundationModels returns every model summary the account can see.
func (c *BedrockClient) ListFoundationModels(ctx context.Context) ([]domain.ModelSummary, error) {
	out, err := c.catalog.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return nil, fmt.Errorf("bedrock list foundation models: %w", err)
	}

	models := make([]domain.ModelSummary, 0, len(out.ModelSummaries))
	for _, m := range out.ModelSummaries {
		summary := domain.ModelSummary{
			ModelID:                    aws.ToString(m.ModelId),
			ModelName:                  aws.ToString(m.ModelName),
			ProviderName:               aws.ToString(m.ProviderName),
			InputModalities:            make([]string, 0, len(m.InputModalities)),
			OutputModalities:           make([]string, 0, len(m.OutputModalities)),
			ResponseStreamingSupported: aws.ToBool(m.ResponseStreamingSupported),
		}
		for _, mod := range m.InputModalities {
			summary.InputModalities = append(summary.InputModalities, string(mod))
		}
		for _, mod := range m.OutputModalities {
			summary.OutputModalities = append(summary.OutputModalities, string(mod))
		}
		models = append(models, summary)
	}
	return models, nil
}
