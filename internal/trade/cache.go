package trade

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

const (
	defaultItemCacheSize = 512
	defaultItemCacheTTL  = 10 * time.Minute
)

// itemCache provides an in-memory LRU cache for item metadata lookups.
// Catalog edits are rare, so entries simply age out via the TTL rather than
// being invalidated on write.
type itemCache struct {
	lru *expirable.LRU[int, *domain.Item]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int, *domain.Item](size, nil, ttl),
	}
}

// Get retrieves an item from the cache
func (c *itemCache) Get(itemID int) (*domain.Item, bool) {
	return c.lru.Get(itemID)
}

// Set stores an item in the cache
func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(item.ID, item)
}
