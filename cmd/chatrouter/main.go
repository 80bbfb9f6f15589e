// Command chatrouter serves the domain-aware chat API and inspects the model catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/config"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "chatrouter",
		Short:         "Domain-aware chat router for foundation models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CHATROUTER_CONFIG"),
		"config file (env CHATROUTER_CONFIG); environment variables override it")

	rootCmd.AddCommand(newServeCmd(), newModelsCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and sets up the process logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	observability.Setup(os.Stderr, cfg.LogLevel)
	return cfg, nil
}
