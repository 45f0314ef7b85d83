package repository

import (
	"context"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItems(ctx context.Context, offset, limit int) ([]domain.Item, error)
	CountItems(ctx context.Context) (int, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int) error
}
