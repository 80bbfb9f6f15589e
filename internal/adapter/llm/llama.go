package llm

import (
	"context"
	"encoding/json"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

type llamaRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type llamaResponse struct {
	Generation *string `json:"generation"`
}

// llamaAdapter speaks the Meta Llama completion schema.
type llamaAdapter struct {
	backend  Backend
	profiles *domain.ModelProfiles
}

func (a *llamaAdapter) Family() domain.ProviderFamily {
	return domain.FamilyMeta
}

func (a *llamaAdapter) Invoke(ctx context.Context, modelID, prompt string) (string, error) {
	profile, err := resolveProfile(a.profiles, domain.FamilyMeta, modelID)
	if err != nil {
		return "", err
	}

	req := llamaRequest{
		Prompt:      prompt,
		MaxGenLen:   profile.MaxTokens,
		Temperature: profile.Temperature,
		TopP:        profile.TopP,
	}
	return roundTrip(ctx, a.backend, modelID, req, func(body []byte) (string, error) {
		var resp llamaResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", malformed("generation", err)
		}
		if resp.Generation == nil {
			return "", malformed("generation", nil)
		}
		return *resp.Generation, nil
	})
}
