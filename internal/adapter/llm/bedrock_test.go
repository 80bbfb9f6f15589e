package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	input       *bedrockruntime.InvokeModelInput
	hasDeadline bool
	out         []byte
	err         error
}

func (f *fakeRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	_, f.hasDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.out}, nil
}

type fakeCatalog struct {
	out *bedrock.ListFoundationModelsOutput
	err error
}

func (f *fakeCatalog) ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestBedrockClientInvokeModel(t *testing.T) {
	runtime := &fakeRuntime{out: []byte(`{"generation":"x"}`)}
	client := NewBedrockClientWithAPIs(runtime, &fakeCatalog{}, time.Second)

	out, err := client.InvokeModel(context.Background(), "meta.llama3-70b-instruct-v1:0", []byte(`{"prompt":"p"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"generation":"x"}`, string(out))
	assert.Equal(t, "meta.llama3-70b-instruct-v1:0", aws.ToString(runtime.input.ModelId))
	assert.Equal(t, "application/json", aws.ToString(runtime.input.ContentType))
	assert.Equal(t, `{"prompt":"p"}`, string(runtime.input.Body))
	assert.True(t, runtime.hasDeadline)
}

func TestBedrockClientInvokeModelError(t *testing.T) {
	cause := errors.New("access denied")
	client := NewBedrockClientWithAPIs(&fakeRuntime{err: cause}, &fakeCatalog{}, 0)

	_, err := client.InvokeModel(context.Background(), "ai21.j2-ultra-v1", nil)
	assert.ErrorIs(t, err, cause)
}

func TestBedrockClientListFoundationModels(t *testing.T) {
	catalog := &fakeCatalog{out: &bedrock.ListFoundationModelsOutput{
		ModelSummaries: []bedrocktypes.FoundationModelSummary{
			{
				ModelId:                    aws.String("anthropic.claude-3-haiku-20240307-v1:0"),
				ModelName:                  aws.String("Claude 3 Haiku"),
				ProviderName:               aws.String("Anthropic"),
				InputModalities:            []bedrocktypes.ModelModality{bedrocktypes.ModelModalityText, bedrocktypes.ModelModalityImage},
				OutputModalities:           []bedrocktypes.ModelModality{bedrocktypes.ModelModalityText},
				ResponseStreamingSupported: aws.Bool(true),
			},
			{ModelId: aws.String("ai21.j2-ultra-v1")},
		},
	}}
	client := NewBedrockClientWithAPIs(&fakeRuntime{}, catalog, 0)

	models, err := client.ListFoundationModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "Claude 3 Haiku", models[0].ModelName)
	assert.Equal(t, []string{"TEXT", "IMAGE"}, models[0].InputModalities)
	assert.True(t, models[0].ResponseStreamingSupported)
	assert.Equal(t, "ai21.j2-ultra-v1", models[1].ModelID)
	assert.Empty(t, models[1].ProviderName)
	assert.NotNil(t, models[1].InputModalities)
	assert.False(t, models[1].ResponseStreamingSupported)
}

func TestBedrockClientListFoundationModelsError(t *testing.T) {
	client := NewBedrockClientWithAPIs(&fakeRuntime{}, &fakeCatalog{err: errors.New("boom")}, 0)
	_, err := client.ListFoundationModels(context.Background())
	assert.Error(t, err)
}

func awsConfigForTest() aws.Config {
	return aws.Config{Region: "us-east-1"}
}
