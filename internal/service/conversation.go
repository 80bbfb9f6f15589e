package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/repository"
)

// DefaultHistoryLimit caps how many turns are fetched as context.
const DefaultHistoryLimit = 10

// Conversations is the gateway to the turn store and analytics sink.
// Writes are best-effort: failures are logged and returned, and callers may
// ignore the returned error.
type Conversations struct {
	turns store.TurnStore
	sink  store.AnalyticsSink
	limit int
}

func NewConversations(turns store.TurnStore, sink store.AnalyticsSink, limit int) *Conversations {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Conversations{turns: turns, sink: sink, limit: limit}
}

// FetchRecent returns the most recent turns of a session, oldest first.
// A store failure degrades to an empty history.
func (c *Conversations) FetchRecent(ctx context.Context, sessionID string) []domain.Turn {
	turns, err := c.turns.RecentTurns(ctx, sessionID, c.limit)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn("failed to fetch chat history",
			"session_id", sessionID, "error", err)
		return []domain.Turn{}
	}
	return turns
}

// Append stores a turn.
func (c *Conversations) Append(ctx context.Context, turn *domain.Turn) error {
	if err := c.turns.AppendTurn(ctx, turn); err != nil {
		observability.LoggerFromContext(ctx).Warn("failed to save chat turn",
			"session_id", turn.SessionID, "error", err)
		return err
	}
	return nil
}

// LogAnalytics writes an independently keyed analytics record for turn.
func (c *Conversations) LogAnalytics(ctx context.Context, turn *domain.Turn, ts time.Time) error {
	key := store.AnalyticsKey(ts, turn.SessionID)
	if err := c.sink.WriteRecord(ctx, key, domain.NewAnalyticsRecord(turn, ts)); err != nil {
		observability.LoggerFromContext(ctx).Warn("failed to write analytics record",
			"session_id", turn.SessionID, "key", key, "error", err)
		return err
	}
	return nil
}

// History returns up to limit recent turns. Unlike FetchRecent, store
// failures are returned to the caller.
func (c *Conversations) History(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error) {
	turns, err := c.turns.RecentTurns(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return turns, nil
}
