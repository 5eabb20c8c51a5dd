package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one user message with the assistant's reply
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the payload for the nutrition chat endpoint
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatMessageRepository persists chat history
type ChatMessageRepository interface {
	Create(ctx context.Context, msg *ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error)
}
