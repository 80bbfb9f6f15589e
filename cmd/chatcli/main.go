// Command chatcli is an interactive terminal client for the chat router's WebSocket API.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	var (
		addr    string
		token   string
		domain  string
		modelID string
		session string
	)

	rootCmd := &cobra.Command{
		Use:          "chatcli",
		Short:        "Chat with the router over WebSocket",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := http.Header{}
			if token != "" {
				header.Set("Authorization", "Bearer "+token)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Connecting to %s...\n", addr)
			client, err := Dial(addr, header)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer client.Close()

			client.Domain = domain
			client.ModelID = modelID
			client.SessionID = session
			return repl(client, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.Flags().StringVar(&addr, "addr", "ws://localhost:8080/ws", "WebSocket server address")
	rootCmd.Flags().StringVar(&token, "token", os.Getenv("CHATROUTER_TOKEN"), "bearer token (env CHATROUTER_TOKEN)")
	rootCmd.Flags().StringVar(&domain, "domain", "general", "domain tag (hr, medical, legal, finance, general)")
	rootCmd.Flags().StringVar(&modelID, "model", "", "model id, empty for the server default")
	rootCmd.Flags().StringVar(&session, "session", "", "resume an existing session id")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// repl reads lines from in and prints each reply until EOF or /quit.
// "/domain <tag>" and "/model <id>" change the settings for later turns.
func repl(client *Client, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Connected. Type a message and press Enter to send.")
	fmt.Fprintln(out, "Commands: /domain <tag>, /model <id>, /quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case input == "/quit":
			fmt.Fprintln(out, "Bye!")
			return nil
		case strings.HasPrefix(input, "/domain "):
			client.Domain = strings.TrimSpace(strings.TrimPrefix(input, "/domain "))
			fmt.Fprintf(out, "domain set to %s\n", client.Domain)
			continue
		case strings.HasPrefix(input, "/model "):
			client.ModelID = strings.TrimSpace(strings.TrimPrefix(input, "/model "))
			fmt.Fprintf(out, "model set to %s\n", client.ModelID)
			continue
		}

		result, err := client.Send(input)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			if client.Broken() {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "[%s | %s | %s]\n%s\n", result.Domain, result.ModelUsed, result.SessionID, result.Response)
	}
}
