package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/adapter/llm"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/config"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/policy"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/repository"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/service"
)

// buildService wires the backend, stores and policy named by cfg.
// The returned cleanup closes any local database.
func buildService(ctx context.Context, cfg *config.Config) (*service.Service, func(), error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	turns, sink, cleanup, err := openStores(cfg, awsCfg)
	if err != nil {
		return nil, nil, err
	}

	policyEngine, err := policy.NewEngineFromFile(ctx, cfg.ModelPolicyFile)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize policy engine: %w", err)
	}

	client := llm.NewClient(cfg.BackendMode, awsCfg, cfg.BackendTimeout)
	svc := service.New(
		service.NewConversations(turns, sink, cfg.HistoryLimit),
		llm.NewSet(client, domain.DefaultModelProfiles()),
		client,
		policyEngine,
		domain.DefaultDomainProfiles(),
		cfg,
	)
	return svc, cleanup, nil
}

// loadAWSConfig resolves credentials only when some component talks to AWS.
func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	needsAWS := cfg.BackendMode != llm.ModeMock ||
		cfg.HistoryDriver == config.DriverDynamoDB ||
		cfg.AnalyticsDriver == config.DriverS3
	if !needsAWS {
		return aws.Config{Region: cfg.AWSRegion}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

func openStores(cfg *config.Config, awsCfg aws.Config) (store.TurnStore, store.AnalyticsSink, func(), error) {
	cleanup := func() {}

	var db *store.SQLiteStore
	if cfg.HistoryDriver == config.DriverSQLite || cfg.AnalyticsDriver == config.DriverSQLite {
		var err error
		db, err = store.NewSQLiteStore(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		cleanup = func() { _ = db.Close() }
	}

	var turns store.TurnStore
	switch cfg.HistoryDriver {
	case config.DriverSQLite:
		turns = db
	default:
		turns = store.NewDynamoTurnStore(dynamodb.NewFromConfig(awsCfg), cfg.ChatHistoryTable)
	}

	var sink store.AnalyticsSink
	switch cfg.AnalyticsDriver {
	case config.DriverSQLite:
		sink = db
	default:
		sink = store.NewS3AnalyticsSink(s3.NewFromConfig(awsCfg), cfg.LogsBucket)
	}

	return turns, sink, cleanup, nil
}
