package llm

import (
	"context"
	"encoding/json"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

const anthropicVersion = "bedrock-2023-05-31"

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

// anthropicAdapter speaks the Claude messages schema.
type anthropicAdapter struct {
	backend  Backend
	profiles *domain.ModelProfiles
}

func (a *anthropicAdapter) Family() domain.ProviderFamily {
	return domain.FamilyAnthropic
}

func (a *anthropicAdapter) Invoke(ctx context.Context, modelID, prompt string) (string, error) {
	profile, err := resolveProfile(a.profiles, domain.FamilyAnthropic, modelID)
	if err != nil {
		return "", err
	}

	req := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        profile.MaxTokens,
		Temperature:      profile.Temperature,
		TopP:             profile.TopP,
		Messages:         []anthropicMessage{{Role: "user", Content: prompt}},
	}
	return roundTrip(ctx, a.backend, modelID, req, func(body []byte) (string, error) {
		var resp anthropicResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", malformed("content[0].text", err)
		}
		if len(resp.Content) == 0 || resp.Content[0].Text == nil {
			return "", malformed("content[0].text", nil)
		}
		return *resp.Content[0].Text, nil
	})
}
