package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/adapter/llm"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/config"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/repository"
)

func localConfig() *config.Config {
	return &config.Config{
		AWSRegion:       "us-east-1",
		BackendMode:     llm.ModeMock,
		DefaultModelID:  domain.DefaultModelID,
		HistoryDriver:   config.DriverSQLite,
		AnalyticsDriver: config.DriverSQLite,
		DatabaseURL:     ":memory:",
		HistoryLimit:    10,
		PromptWindow:    5,
	}
}

func TestBuildServiceLocal(t *testing.T) {
	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, localConfig())
	require.NoError(t, err)
	defer cleanup()

	resp, err := svc.Chat(ctx, domain.ChatRequest{Message: "Hello", SessionID: "s1"})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "Hello")

	turns, err := svc.GetHistory(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Len(t, turns, 1)
}

func TestOpenStoresSelectsDrivers(t *testing.T) {
	cfg := localConfig()
	cfg.AnalyticsDriver = config.DriverS3
	cfg.LogsBucket = "bucket"

	turns, sink, cleanup, err := openStores(cfg, aws.Config{Region: cfg.AWSRegion})
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &store.SQLiteStore{}, turns)
	assert.IsType(t, &store.S3AnalyticsSink{}, sink)
}

func TestBuildServiceBadPolicyFile(t *testing.T) {
	cfg := localConfig()
	cfg.ModelPolicyFile = "/nonexistent/policy.rego"

	_, _, err := buildService(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPrintModels(t *testing.T) {
	models, err := llm.NewMockClient().ListFoundationModels(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printModels(&buf, models, "table"))
	assert.Contains(t, buf.String(), "MODEL ID")
	assert.Contains(t, buf.String(), "ai21.j2-ultra-v1")

	buf.Reset()
	require.NoError(t, printModels(&buf, models, "json"))
	var decoded struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, len(models), decoded.TotalCount)

	assert.Error(t, printModels(&buf, models, "yaml"))
}
