package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

func newModelsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the catalog models the router can serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			models, err := svc.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			return printModels(cmd.OutOrStdout(), models, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	return cmd
}

func printModels(w io.Writer, models []domain.ModelSummary, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"models": models, "total_count": len(models)})
	case "table", "":
		table := uitable.New()
		table.MaxColWidth = 60
		table.AddRow("MODEL ID", "PROVIDER", "NAME", "INPUT", "OUTPUT", "STREAMING")
		for _, m := range models {
			table.AddRow(m.ModelID, m.ProviderName, m.ModelName,
				strings.Join(m.InputModalities, ","), strings.Join(m.OutputModalities, ","),
				m.ResponseStreamingSupported)
		}
		_, err := fmt.Fprintln(w, table)
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
