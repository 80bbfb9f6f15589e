package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

func turns(n int) []domain.Turn {
	out := make([]domain.Turn, n)
	for i := range out {
		out[i] = domain.Turn{
			UserMessage: fmt.Sprintf("q%d", i),
			BotResponse: fmt.Sprintf("a%d", i),
		}
	}
	return out
}

func TestBuildEmptyHistory(t *testing.T) {
	c := NewComposer(5)
	got := c.Build("SYS", nil, "Hello")
	assert.Equal(t, "SYS\n\nHuman: Hello\nAssistant: ", got)
}

func TestBuildWithHistory(t *testing.T) {
	c := NewComposer(5)
	got := c.Build("SYS", turns(2), "next")
	want := "SYS\n\n" +
		"Human: q0\nAssistant: a0\n\n" +
		"Human: q1\nAssistant: a1\n\n" +
		"Human: next\nAssistant: "
	assert.Equal(t, want, got)
}

func TestBuildKeepsLastFiveInOrder(t *testing.T) {
	c := NewComposer(DefaultWindow)
	for _, n := range []int{0, 1, 4, 5, 6, 10} {
		got := c.Build("SYS", turns(n), "now")

		start := 0
		if n > DefaultWindow {
			start = n - DefaultWindow
		}
		assert.Equal(t, n-start, strings.Count(got, "Assistant: a"), "n=%d", n)

		last := -1
		for i := start; i < n; i++ {
			idx := strings.Index(got, fmt.Sprintf("Human: q%d\n", i))
			assert.Greater(t, idx, last, "turn %d out of order (n=%d)", i, n)
			last = idx
		}
		for i := 0; i < start; i++ {
			assert.NotContains(t, got, fmt.Sprintf("Human: q%d\n", i))
		}
		assert.True(t, strings.HasSuffix(got, "Human: now\nAssistant: "))
	}
}

func TestBuildDoesNotMutateHistory(t *testing.T) {
	history := turns(7)
	NewComposer(5).Build("SYS", history, "x")
	assert.Len(t, history, 7)
	assert.Equal(t, "q0", history[0].UserMessage)
}

func TestNewComposerDefaultsWindow(t *testing.T) {
	c := NewComposer(0)
	got := c.Build("SYS", turns(8), "x")
	assert.Equal(t, DefaultWindow, strings.Count(got, "Assistant: a"))
}
