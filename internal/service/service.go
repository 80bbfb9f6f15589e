package service

import (
	"github.com/google/uuid"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/adapter/llm"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/config"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/policy"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/prompt"
)

// Service handles chat turns and model listing. It holds no per-request
// state; the profile tables are read-only.
type Service struct {
	conversations  *Conversations
	adapters       *llm.Set
	catalog        llm.Catalog
	policyEngine   *policy.Engine
	domains        *domain.DomainProfiles
	composer       *prompt.Composer
	defaultModelID string
	newSessionID   func() string
}

func New(conversations *Conversations, adapters *llm.Set, catalog llm.Catalog, policyEngine *policy.Engine, domains *domain.DomainProfiles, cfg *config.Config) *Service {
	defaultModelID := cfg.DefaultModelID
	if defaultModelID == "" {
		defaultModelID = domain.DefaultModelID
	}
	return &Service{
		conversations:  conversations,
		adapters:       adapters,
		catalog:        catalog,
		policyEngine:   policyEngine,
		domains:        domains,
		composer:       prompt.NewComposer(cfg.PromptWindow),
		defaultModelID: defaultModelID,
		newSessionID:   uuid.NewString,
	}
}
