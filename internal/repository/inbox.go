package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Inbox defines the interface for message persistence
type Inbox interface {
	InsertMessage(ctx context.Context, message *domain.Message) error
	GetMessagesForUser(ctx context.Context, userID string) ([]domain.Message, error)
	MarkMessageRead(ctx context.Context, messageID uuid.UUID, userID string) error
}
