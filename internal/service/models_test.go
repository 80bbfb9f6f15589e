package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

type staticCatalog struct {
	models []domain.ModelSummary
	err    error
}

func (c *staticCatalog) ListFoundationModels(ctx context.Context) ([]domain.ModelSummary, error) {
	return c.models, c.err
}

func TestListModelsFiltersAndSorts(t *testing.T) {
	f := newFixture(t)
	f.svc.catalog = &staticCatalog{models: []domain.ModelSummary{
		{ModelID: "meta.llama3-8b-instruct-v1:0", ModelName: "Llama 3 8B", ProviderName: "Meta"},
		{ModelID: "amazon.titan-text-lite-v1", ModelName: "Titan Lite", ProviderName: "Amazon"},
		{ModelID: "anthropic.claude-3-sonnet-20240229-v1:0", ModelName: "Claude 3 Sonnet", ProviderName: "Anthropic"},
		{ModelID: "AI21.J2-Mid-v1", ModelName: "Jurassic-2 Mid", ProviderName: "AI21 Labs"},
		{ModelID: "anthropic.claude-3-haiku-20240307-v1:0", ModelName: "Claude 3 Haiku", ProviderName: "Anthropic"},
		{ModelID: "cohere.command-text-v14", ModelName: "Command", ProviderName: "Cohere"},
	}}

	models, err := f.svc.ListModels(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, m := range models {
		ids = append(ids, m.ModelID)
	}
	assert.Equal(t, []string{
		"AI21.J2-Mid-v1",
		"anthropic.claude-3-haiku-20240307-v1:0",
		"anthropic.claude-3-sonnet-20240229-v1:0",
		"meta.llama3-8b-instruct-v1:0",
	}, ids)

	again, err := f.svc.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models, again)
}

func TestListModelsEmpty(t *testing.T) {
	f := newFixture(t)
	f.svc.catalog = &staticCatalog{}

	models, err := f.svc.ListModels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, models)
	assert.Empty(t, models)
}

func TestListModelsError(t *testing.T) {
	f := newFixture(t)
	f.svc.catalog = &staticCatalog{err: errors.New("denied")}

	_, err := f.svc.ListModels(context.Background())
	assert.Error(t, err)
}

func TestGetHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, msg := range []string{"a", "b", "c"} {
		_, err := f.svc.Chat(ctx, domain.ChatRequest{Message: msg, SessionID: "s1"})
		require.NoError(t, err)
	}

	turns, err := f.svc.GetHistory(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "b", turns[0].UserMessage)
	assert.Equal(t, "c", turns[1].UserMessage)

	turns, err = f.svc.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Len(t, turns, 3)

	f.turns.failFetch = true
	_, err = f.svc.GetHistory(ctx, "s1", 10)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
