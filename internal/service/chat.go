package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/llm"
)

// ChatService handles the free-text nutrition chat
type ChatService struct {
	provider   llm.Provider
	chatRepo   domain.ChatMessageRepository
	llmTimeout time.Duration
}

// NewChatService creates a new chat service
func NewChatService(provider llm.Provider, chatRepo domain.ChatMessageRepository, llmTimeout time.Duration) *ChatService {
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}
	return &ChatService{
		provider:   provider,
		chatRepo:   chatRepo,
		llmTimeout: llmTimeout,
	}
}

// Send forwards a user message to the LLM and persists the exchange
func (s *ChatService) Send(ctx context.Context, userID uuid.UUID, message string) (*domain.ChatMessage, error) {
	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.provider.Complete(llmCtx, llm.BuildChatPrompt(message))
	if err != nil {
		return nil, domain.NewExternalServiceError("chat reply failed", err)
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Response:  reply,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		// The reply is still returned if persistence fails
		log.Error().Err(err).Msg("failed to save chat message")
	}

	return msg, nil
}

// History returns the user's recent chat messages
func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]domain.ChatMessage, error) {
	// 50 messages limit for now
	return s.chatRepo.ListByUser(ctx, userID, 50)
}
