package llm

import (
	"context"
	"encoding/json"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// AI21 uses camelCase parameter names.
type jurassicRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type jurassicResponse struct {
	Completions []struct {
		Data *struct {
			Text *string `json:"text"`
		} `json:"data"`
	} `json:"completions"`
}

// jurassicAdapter speaks the AI21 Jurassic completion schema.
type jurassicAdapter struct {
	backend  Backend
	profiles *domain.ModelProfiles
}

func (a *jurassicAdapter) Family() domain.ProviderFamily {
	return domain.FamilyAI21
}

func (a *jurassicAdapter) Invoke(ctx context.Context, modelID, prompt string) (string, error) {
	profile, err := resolveProfile(a.profiles, domain.FamilyAI21, modelID)
	if err != nil {
		return "", err
	}

	req := jurassicRequest{
		Prompt:      prompt,
		MaxTokens:   profile.MaxTokens,
		Temperature: profile.Temperature,
		TopP:        profile.TopP,
	}
	return roundTrip(ctx, a.backend, modelID, req, func(body []byte) (string, error) {
		var resp jurassicResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", malformed("completions[0].data.text", err)
		}
		if len(resp.Completions) == 0 || resp.Completions[0].Data == nil || resp.Completions[0].Data.Text == nil {
			return "", malformed("completions[0].data.text", nil)
		}
		return *resp.Completions[0].Data.Text, nil
	})
}
