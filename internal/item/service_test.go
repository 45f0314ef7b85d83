package item

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/trade"
)

func newCatalog(t *testing.T, count int) (Service, *trade.FakeItemRepository) {
	t.Helper()

	repo := trade.NewFakeItemRepository()
	svc := NewService(repo)

	for i := 0; i < count; i++ {
		_, err := svc.CreateItem(context.Background(), fmt.Sprintf("Item %02d", i+1), domain.RarityCommon, "")
		require.NoError(t, err)
	}
	return svc, repo
}

func TestCreateAndGetItem(t *testing.T) {
	svc, _ := newCatalog(t, 0)
	ctx := context.Background()

	id, err := svc.CreateItem(ctx, "Mosin", domain.RarityRare, "Bolt-action rifle")
	require.NoError(t, err)

	item, err := svc.GetItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mosin", item.Name)
	assert.Equal(t, domain.RarityRare, item.Rarity)

	_, err = svc.GetItem(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := newCatalog(t, 0)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, "", domain.RarityCommon, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateItem(ctx, "Mosin", domain.Rarity("MYTHIC"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetPage(t *testing.T) {
	svc, _ := newCatalog(t, 25)
	ctx := context.Background()

	page, err := svc.GetPage(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalItems)

	page, err = svc.GetPage(ctx, 3, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)

	// Past the end: empty page, not an error
	page, err = svc.GetPage(ctx, 7, DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 7, page.Number)
}

func TestGetPageEmptyCatalog(t *testing.T) {
	svc, _ := newCatalog(t, 0)

	page, err := svc.GetPage(context.Background(), 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Zero(t, page.TotalItems)
}

func TestUpdateAndDeleteItem(t *testing.T) {
	svc, _ := newCatalog(t, 1)
	ctx := context.Background()

	item, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)

	item.Name = "Renamed"
	item.Rarity = domain.RarityLegendary
	require.NoError(t, svc.UpdateItem(ctx, item))

	updated, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.RarityLegendary, updated.Rarity)

	require.NoError(t, svc.DeleteItem(ctx, 1))
	_, err = svc.GetItem(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.ErrorIs(t, svc.DeleteItem(ctx, 1), domain.ErrItemNotFound)
}
