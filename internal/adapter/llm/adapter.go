package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// Adapter translates a prompt into one provider family's wire schema.
type Adapter interface {
	Family() domain.ProviderFamily
	Invoke(ctx context.Context, modelID, prompt string) (string, error)
}

// Set holds one adapter per provider family and routes by model identifier.
type Set struct {
	anthropic Adapter
	meta      Adapter
	ai21      Adapter
}

// NewSet builds the adapter set over a shared backend and profile table.
func NewSet(backend Backend, profiles *domain.ModelProfiles) *Set {
	return &Set{
		anthropic: &anthropicAdapter{backend: backend, profiles: profiles},
		meta:      &llamaAdapter{backend: backend, profiles: profiles},
		ai21:      &jurassicAdapter{backend: backend, profiles: profiles},
	}
}

// Invoke selects the adapter for modelID and returns the generated text.
// It fails with *domain.UnsupportedModelError when no family matches and
// with *domain.BackendInvocationError when the call or payload is bad.
func (s *Set) Invoke(ctx context.Context, modelID, prompt string) (string, error) {
	adapter := s.adapterFor(domain.ResolveFamily(modelID))
	if adapter == nil {
		return "", &domain.UnsupportedModelError{ModelID: modelID}
	}
	return adapter.Invoke(ctx, modelID, prompt)
}

func (s *Set) adapterFor(family domain.ProviderFamily) Adapter {
	switch family {
	case domain.FamilyAnthropic:
		return s.anthropic
	case domain.FamilyMeta:
		return s.meta
	case domain.FamilyAI21:
		return s.ai21
	case domain.FamilyUnknown:
		return nil
	}
	return nil
}

// roundTrip marshals req, sends it and hands the raw body to extract.
// Every failure is reported as a BackendInvocationError.
func roundTrip(ctx context.Context, backend Backend, modelID string, req any, extract func([]byte) (string, error)) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", &domain.BackendInvocationError{ModelID: modelID, Err: fmt.Errorf("marshal request: %w", err)}
	}

	respBody, err := backend.InvokeModel(ctx, modelID, body)
	if err != nil {
		return "", &domain.BackendInvocationError{ModelID: modelID, Err: err}
	}

	text, err := extract(respBody)
	if err != nil {
		return "", &domain.BackendInvocationError{ModelID: modelID, Err: err}
	}
	return text, nil
}

func resolveProfile(profiles *domain.ModelProfiles, family domain.ProviderFamily, modelID string) (domain.ModelProfile, error) {
	profile, ok := profiles.Resolve(family, modelID)
	if !ok {
		return domain.ModelProfile{}, &domain.UnsupportedModelError{ModelID: modelID, Reason: "no parameter profile for " + family.String()}
	}
	return profile, nil
}

func malformed(path string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrMalformedResponse, err)
	}
	return fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, path)
}
