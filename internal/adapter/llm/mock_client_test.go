package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

func TestMockClientSatisfiesEveryAdapter(t *testing.T) {
	set := NewSet(NewMockClient(), domain.DefaultModelProfiles())
	prompt := "SYS\n\nHuman: earlier\nAssistant: reply\n\nHuman: Hello\nAssistant: "

	for _, id := range []string{
		"anthropic.claude-3-sonnet-20240229-v1:0",
		"meta.llama3-70b-instruct-v1:0",
		"ai21.j2-ultra-v1",
	} {
		text, err := set.Invoke(context.Background(), id, prompt)
		require.NoError(t, err, id)
		assert.Contains(t, text, `"Hello"`, id)
		assert.NotContains(t, text, "earlier", id)
	}
}

func TestMockClientUnknownModel(t *testing.T) {
	_, err := NewMockClient().InvokeModel(context.Background(), "unknown.x", []byte(`{"prompt":"p"}`))
	assert.Error(t, err)
}

func TestMockClientCatalog(t *testing.T) {
	models, err := NewMockClient().ListFoundationModels(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, models)
}

func TestMockClientCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockClient().InvokeModel(ctx, "ai21.j2-ultra-v1", []byte(`{}`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientMode(t *testing.T) {
	_, ok := NewClient(ModeMock, awsConfigForTest(), 0).(*MockClient)
	assert.True(t, ok)
	_, ok = NewClient(ModeBedrock, awsConfigForTest(), 0).(*BedrockClient)
	assert.True(t, ok)
}
