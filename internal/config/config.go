// Package config provides configuration for the chat router.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the chat router configuration.
type Config struct {
	// Server settings
	HTTPPort int `mapstructure:"HTTP_PORT"`

	// Model backend
	AWSRegion      string        `mapstructure:"AWS_REGION"`
	BackendMode    string        `mapstructure:"BACKEND_MODE"`
	BackendTimeout time.Duration `mapstructure:"-"`
	DefaultModelID string        `mapstructure:"DEFAULT_MODEL_ID"`

	// Persistence
	HistoryDriver    string `mapstructure:"HISTORY_DRIVER"`
	ChatHistoryTable string `mapstructure:"CHAT_HISTORY_TABLE"`
	AnalyticsDriver  string `mapstructure:"ANALYTICS_DRIVER"`
	LogsBucket       string `mapstructure:"LOGS_BUCKET"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`

	// Conversation window
	HistoryLimit int `mapstructure:"HISTORY_LIMIT"`
	PromptWindow int `mapstructure:"PROMPT_WINDOW"`

	// Access control
	AuthJWTSecret   string `mapstructure:"AUTH_JWT_SECRET"`
	ModelPolicyFile string `mapstructure:"MODEL_POLICY_FILE"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

const (
	DriverDynamoDB = "dynamodb"
	DriverS3       = "s3"
	DriverSQLite   = "sqlite"
)

var defaults = map[string]any{
	"HTTP_PORT":          8080,
	"AWS_REGION":         "us-east-1",
	"BACKEND_MODE":       "bedrock",
	"BACKEND_TIMEOUT_MS": 60000,
	"DEFAULT_MODEL_ID":   "anthropic.claude-3-sonnet-20240229-v1:0",
	"HISTORY_DRIVER":     DriverDynamoDB,
	"CHAT_HISTORY_TABLE": "bedrock-chat-history",
	"ANALYTICS_DRIVER":   DriverS3,
	"LOGS_BUCKET":        "bedrock-chat-logs",
	"DATABASE_URL":       "file:chatrouter.db?cache=shared&mode=rwc",
	"HISTORY_LIMIT":      10,
	"PROMPT_WINDOW":      5,
	"AUTH_JWT_SECRET":    "",
	"MODEL_POLICY_FILE":  "",
	"LOG_LEVEL":          "info",
}

// Load loads configuration from environment variables and, if path is not
// empty, from a config file. Environment variables win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.BackendTimeout = time.Duration(v.GetInt("BACKEND_TIMEOUT_MS")) * time.Millisecond

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.HistoryDriver {
	case DriverDynamoDB, DriverSQLite:
	default:
		return fmt.Errorf("unknown HISTORY_DRIVER %q", c.HistoryDriver)
	}
	switch c.AnalyticsDriver {
	case DriverS3, DriverSQLite:
	default:
		return fmt.Errorf("unknown ANALYTICS_DRIVER %q", c.AnalyticsDriver)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.PromptWindow <= 0 {
		return fmt.Errorf("PROMPT_WINDOW must be positive, got %d", c.PromptWindow)
	}
	return nil
}
