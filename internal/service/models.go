package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// supportedProviders are matched as substrings of the lower-cased model id.
var supportedProviders = []string{"anthropic", "meta", "ai21"}

// ListModels returns the catalog entries of supported provider families,
// sorted by provider name then model name.
func (s *Service) ListModels(ctx context.Context) ([]domain.ModelSummary, error) {
	all, err := s.catalog.ListFoundationModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	models := make([]domain.ModelSummary, 0, len(all))
	for _, m := range all {
		if isSupportedModel(m.ModelID) {
			models = append(models, m)
		}
	}
	slices.SortStableFunc(models, func(a, b domain.ModelSummary) int {
		return cmp.Or(
			cmp.Compare(a.ProviderName, b.ProviderName),
			cmp.Compare(a.ModelName, b.ModelName),
		)
	})
	return models, nil
}

func isSupportedModel(modelID string) bool {
	id := strings.ToLower(modelID)
	for _, p := range supportedProviders {
		if strings.Contains(id, p) {
			return true
		}
	}
	return false
}
