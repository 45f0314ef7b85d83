package profile

import (
	"context"
	"fmt"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// Service defines the interface for user profile queries: reputation,
// received feedback and trade history
type Service interface {
	GetReputation(ctx context.Context, userID string) (*domain.Reputation, error)
	GetFeedbackHistory(ctx context.Context, userID string) ([]domain.Feedback, error)
	GetTradeHistory(ctx context.Context, userID string) (*TradeHistory, error)
}

// TradeHistory groups a user's own trades with the trades they have open
// offers on
type TradeHistory struct {
	Owned   []domain.Trade `json:"owned"`
	Offered []domain.Trade `json:"offered"`
}

type service struct {
	trades   repository.Trade
	feedback repository.Feedback
}

// NewService creates a new profile service
func NewService(trades repository.Trade, feedback repository.Feedback) Service {
	if trades == nil {
		panic("profile: trade repository is required")
	}
	if feedback == nil {
		panic("profile: feedback repository is required")
	}
	return &service{trades: trades, feedback: feedback}
}

func (s *service) GetReputation(ctx context.Context, userID string) (*domain.Reputation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return s.feedback.GetReputation(ctx, userID)
}

func (s *service) GetFeedbackHistory(ctx context.Context, userID string) ([]domain.Feedback, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return s.feedback.GetFeedbackForUser(ctx, userID)
}

func (s *service) GetTradeHistory(ctx context.Context, userID string) (*TradeHistory, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	owned, err := s.trades.GetTradesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owned trades: %w", err)
	}
	offered, err := s.trades.GetTradesWithOfferFrom(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offered trades: %w", err)
	}

	return &TradeHistory{Owned: owned, Offered: offered}, nil
}
