package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/policy"
)

// Chat runs one conversational turn: resolve identity, fetch context,
// compose the prompt, invoke the model, then persist. Nothing is written
// unless the model call succeeds.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.Message == "" {
		return nil, &domain.ValidationError{Message: "Message is required"}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.newSessionID()
	}
	dom, systemPrompt := s.domains.Resolve(req.Domain)
	modelID := req.ModelID
	if modelID == "" {
		modelID = s.defaultModelID
	}

	log := observability.LoggerFromContext(ctx).With("session_id", sessionID, "model_id", modelID)

	if err := s.checkPolicy(ctx, modelID, dom); err != nil {
		log.Error("model refused", "error", err)
		return nil, err
	}

	history := s.conversations.FetchRecent(ctx, sessionID)
	fullPrompt := s.composer.Build(systemPrompt, history, req.Message)

	start := time.Now()
	text, err := s.adapters.Invoke(ctx, modelID, fullPrompt)
	if err != nil {
		log.Error("model invocation failed", "error", err)
		return nil, err
	}
	log.Info("model invoked", "domain", dom, "history_turns", len(history), "latency_ms", time.Since(start).Milliseconds())

	now := time.Now()
	turn := &domain.Turn{
		SessionID:   sessionID,
		Timestamp:   domain.FormatTimestamp(now),
		UserMessage: req.Message,
		BotResponse: text,
		Domain:      dom,
		ModelID:     modelID,
	}
	s.persist(context.WithoutCancel(ctx), turn, now)

	return &domain.ChatResponse{
		Response:  text,
		SessionID: sessionID,
		Domain:    dom,
		ModelUsed: modelID,
	}, nil
}

func (s *Service) checkPolicy(ctx context.Context, modelID string, dom domain.Domain) error {
	if s.policyEngine == nil {
		return nil
	}
	decision, err := s.policyEngine.Evaluate(ctx, policy.Input{ModelID: modelID, Domain: string(dom)})
	if err != nil {
		return fmt.Errorf("model policy: %w", err)
	}
	if decision == policy.DecisionBlock {
		return &domain.UnsupportedModelError{ModelID: modelID, Reason: "domain " + string(dom), Err: domain.ErrModelBlocked}
	}
	return nil
}

// persist writes the turn and its analytics record concurrently.
// Both are best-effort; their errors are already logged by Conversations.
func (s *Service) persist(ctx context.Context, turn *domain.Turn, now time.Time) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.conversations.Append(ctx, turn)
	}()
	go func() {
		defer wg.Done()
		_ = s.conversations.LogAnalytics(ctx, turn, now)
	}()
	wg.Wait()
}
