package repository

import (
	"context"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Feedback defines the interface for feedback persistence
type Feedback interface {
	InsertFeedback(ctx context.Context, feedback *domain.Feedback) error
	GetFeedbackForUser(ctx context.Context, userID string) ([]domain.Feedback, error)
	GetReputation(ctx context.Context, userID string) (*domain.Reputation, error)
}
