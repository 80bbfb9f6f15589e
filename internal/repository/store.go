// Package store defines the persistence interfaces and their implementations.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// TurnStore is a keyed, time-ordered log of conversation turns.
type TurnStore interface {
	// RecentTurns returns up to limit of the newest turns for sessionID,
	// oldest first.
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error)
	// AppendTurn stores one turn.
	AppendTurn(ctx context.Context, turn *domain.Turn) error
}

// AnalyticsSink is an append-only store of analytics records.
type AnalyticsSink interface {
	WriteRecord(ctx context.Context, key string, record *domain.AnalyticsRecord) error
}

// AnalyticsKey builds the date-partitioned key for a record written at ts:
// logs/YYYY/MM/DD/<session_id>_<8 hex chars>.json
func AnalyticsKey(ts time.Time, sessionID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("logs/%s/%s_%s.json", ts.UTC().Format("2006/01/02"), sessionID, suffix)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}

func reverse(turns []domain.Turn) {
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
}
