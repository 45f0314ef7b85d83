package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) repository.Item {
	return &ItemRepository{pool: pool}
}

// GetItemByID retrieves an item by ID
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	var (
		item   domain.Item
		rarity string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT item_id, item_name, rarity, details FROM items WHERE item_id = $1`, id).
		Scan(&item.ID, &item.Name, &rarity, &item.Details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item.Rarity = domain.Rarity(rarity)
	return &item, nil
}

// GetItems retrieves a window of the catalog ordered by item id
func (r *ItemRepository) GetItems(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT item_id, item_name, rarity, details FROM items
		 ORDER BY item_id
		 OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			item   domain.Item
			rarity string
		)
		if err := rows.Scan(&item.ID, &item.Name, &rarity, &item.Details); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryItems, err)
		}
		item.Rarity = domain.Rarity(rarity)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryItems, err)
	}
	return items, nil
}

// CountItems returns the catalog size
func (r *ItemRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountItems, err)
	}
	return count, nil
}

// InsertItem inserts a new item and returns its generated id
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO items (item_name, rarity, details) VALUES ($1, $2, $3) RETURNING item_id`,
		item.Name, string(item.Rarity), item.Details).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	item.ID = id
	return id, nil
}

// UpdateItem updates an existing item
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE items SET item_name = $2, rarity = $3, details = $4 WHERE item_id = $1`,
		item.ID, item.Name, string(item.Rarity), item.Details)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an item from the catalog
func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
