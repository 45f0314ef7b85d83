package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Trade defines the interface for trade persistence.
//
// Implementations must make each method atomic with respect to concurrent
// callers on the same trade id (row lock or equivalent); the lifecycle engine
// relies on that and does not lock.
type Trade interface {
	GetTradeByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	InsertTrade(ctx context.Context, trade *domain.Trade) error
	// UpdateTrade persists state, winner and feedback flags. It never touches
	// the offer set; offers change only through AddOffer and RemoveOffer, so
	// a stale snapshot written back cannot erase a concurrent offer.
	UpdateTrade(ctx context.Context, trade *domain.Trade) error
	// DeleteTrade removes the trade and its have/want detail rows and offers
	// in a single transaction.
	DeleteTrade(ctx context.Context, id uuid.UUID) error

	// AddOffer records userID's offer as one atomic write. Returns false
	// without error when the offer already exists, which is how concurrent
	// duplicate offers are told apart.
	AddOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error)
	// RemoveOffer deletes userID's offer as one atomic write. Returns false
	// without error when there was no offer to remove.
	RemoveOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error)

	// GetActiveTrades returns Active trades matching the filter. The item-id
	// predicate is evaluated by the store (see migrations for the supporting
	// indexes), not by the caller.
	GetActiveTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error)
	// GetLatestTrades returns Active trades newest-first, capped at limit.
	// Ties break on trade id for a deterministic order.
	GetLatestTrades(ctx context.Context, limit int) ([]domain.Trade, error)
	// GetHottestTrades returns Active trades by descending offer count,
	// capped at limit. Ties break on trade id.
	GetHottestTrades(ctx context.Context, limit int) ([]domain.Trade, error)

	GetTradesByOwner(ctx context.Context, ownerID string) ([]domain.Trade, error)
	GetTradesWithOfferFrom(ctx context.Context, userID string) ([]domain.Trade, error)
	CountActiveTradesByOwner(ctx context.Context, ownerID string) (int, error)
}
