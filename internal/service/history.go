package service

import (
	"context"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// MaxHistoryLimit bounds explicit history reads.
const MaxHistoryLimit = 100

// GetHistory returns recent turns for a session, oldest first.
func (s *Service) GetHistory(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.conversations.History(ctx, sessionID, limit)
}
