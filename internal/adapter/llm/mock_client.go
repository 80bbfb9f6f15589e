package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// MockClient answers every provider schema locally, for development and tests.
type MockClient struct{}

// NewMockClient creates a new mock backend.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// InvokeModel returns a provider-shaped mock response for the request body.
func (m *MockClient) InvokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var req struct {
		Prompt   string `json:"prompt"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("mock: decode request: %w", err)
	}
	prompt := req.Prompt
	if len(req.Messages) > 0 {
		prompt = req.Messages[len(req.Messages)-1].Content
	}
	text := m.generateMockResponse(prompt)

	var resp any
	switch domain.ResolveFamily(modelID) {
	case domain.FamilyAnthropic:
		resp = map[string]any{
			"type":    "message",
			"role":    "assistant",
			"content": []map[string]string{{"type": "text", "text": text}},
		}
	case domain.FamilyMeta:
		resp = map[string]any{"generation": text, "stop_reason": "stop"}
	case domain.FamilyAI21:
		resp = map[string]any{
			"completions": []map[string]any{{"data": map[string]string{"text": text}}},
		}
	default:
		return nil, fmt.Errorf("mock: unknown model %q", modelID)
	}
	return json.Marshal(resp)
}

// ListFoundationModels returns a fixed catalog.
func (m *MockClient) ListFoundationModels(ctx context.Context) ([]domain.ModelSummary, error) {
	text := []string{"TEXT"}
	return []domain.ModelSummary{
		{ModelID: "anthropic.claude-3-sonnet-20240229-v1:0", ModelName: "Claude 3 Sonnet", ProviderName: "Anthropic", InputModalities: []string{"TEXT", "IMAGE"}, OutputModalities: text, ResponseStreamingSupported: true},
		{ModelID: "anthropic.claude-3-haiku-20240307-v1:0", ModelName: "Claude 3 Haiku", ProviderName: "Anthropic", InputModalities: []string{"TEXT", "IMAGE"}, OutputModalities: text, ResponseStreamingSupported: true},
		{ModelID: "meta.llama3-70b-instruct-v1:0", ModelName: "Llama 3 70B Instruct", ProviderName: "Meta", InputModalities: text, OutputModalities: text, ResponseStreamingSupported: true},
		{ModelID: "ai21.j2-ultra-v1", ModelName: "Jurassic-2 Ultra", ProviderName: "AI21 Labs", InputModalities: text, OutputModalities: text},
		{ModelID: "amazon.titan-text-express-v1", ModelName: "Titan Text G1 - Express", ProviderName: "Amazon", InputModalities: text, OutputModalities: text, ResponseStreamingSupported: true},
	}, nil
}

// generateMockResponse echoes the last human line of the prompt.
func (m *MockClient) generateMockResponse(prompt string) string {
	idx := strings.LastIndex(prompt, "Human: ")
	if idx < 0 {
		return "[MOCK] This is a mock response from the model backend."
	}
	line := prompt[idx+len("Human: "):]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(line, 100))
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
