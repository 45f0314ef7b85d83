package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// Service exposes inbox read operations
type Service interface {
	GetInbox(ctx context.Context, userID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, messageID uuid.UUID, userID string) error
}

type service struct {
	repo repository.Inbox
}

// NewService creates a new inbox service
func NewService(repo repository.Inbox) Service {
	if repo == nil {
		panic("notify: inbox repository is required")
	}
	return &service{repo: repo}
}

func (s *service) GetInbox(ctx context.Context, userID string) ([]domain.Message, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	messages, err := s.repo.GetMessagesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}
	return messages, nil
}

func (s *service) MarkRead(ctx context.Context, messageID uuid.UUID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	if err := s.repo.MarkMessageRead(ctx, messageID, userID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}
