// Package prompt assembles the single text prompt sent to a model.
package prompt

import (
	"strings"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// DefaultWindow is the number of prior turns included as context.
const DefaultWindow = 5

// Composer builds prompts from a system prompt, prior turns and a new message.
type Composer struct {
	window int
}

// NewComposer creates a composer that keeps the last window turns.
// A non-positive window falls back to DefaultWindow.
func NewComposer(window int) *Composer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Composer{window: window}
}

// Build renders the prompt. history must be in chronological order; only the
// last c.window entries are used, oldest first. The result ends with an
// "Assistant: " cue for the model to complete.
func (c *Composer) Build(systemPrompt string, history []domain.Turn, message string) string {
	if len(history) > c.window {
		history = history[len(history)-c.window:]
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, turn := range history {
		b.WriteString("Human: ")
		b.WriteString(turn.UserMessage)
		b.WriteString("\nAssistant: ")
		b.WriteString(turn.BotResponse)
		b.WriteString("\n\n")
	}
	b.WriteString("Human: ")
	b.WriteString(message)
	b.WriteString("\nAssistant: ")
	return b.String()
}
