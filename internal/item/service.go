package item

import (
	"context"
	"fmt"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// DefaultPageSize is how many catalog entries a page holds when the caller
// does not say otherwise
const DefaultPageSize = 10

// Page is one page of the item catalog
type Page struct {
	Items      []domain.Item `json:"items"`
	Number     int           `json:"number"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// Service defines the interface for item catalog operations
type Service interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	GetPage(ctx context.Context, number, size int) (*Page, error)
	CreateItem(ctx context.Context, name string, rarity domain.Rarity, details string) (int, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int) error
}

type service struct {
	items repository.Item
}

// NewService creates a new item catalog service
func NewService(items repository.Item) Service {
	if items == nil {
		panic("item: item repository is required")
	}
	return &service{items: items}
}

func (s *service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	return s.items.GetItemByID(ctx, id)
}

// GetPage returns page `number` (1-based) of the catalog. A page number past
// the end comes back empty rather than failing.
func (s *service) GetPage(ctx context.Context, number, size int) (*Page, error) {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	total, err := s.items.CountItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	items, err := s.items.GetItems(ctx, (number-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	return &Page{
		Items:      items,
		Number:     number,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func (s *service) CreateItem(ctx context.Context, name string, rarity domain.Rarity, details string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if !rarity.IsValid() {
		return 0, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, rarity)
	}

	return s.items.InsertItem(ctx, &domain.Item{
		Name:    name,
		Rarity:  rarity,
		Details: details,
	})
}

func (s *service) UpdateItem(ctx context.Context, item *domain.Item) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if !item.Rarity.IsValid() {
		return fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, item.Rarity)
	}
	return s.items.UpdateItem(ctx, item)
}

func (s *service) DeleteItem(ctx context.Context, id int) error {
	return s.items.DeleteItem(ctx, id)
}
