package trade

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// FakeTradeRepository is a stateful in-memory implementation of
// repository.Trade for testing. It mirrors the reference behavior of
// materializing the full active set before applying the item filter; the
// Postgres implementation pushes that predicate into SQL instead.
type FakeTradeRepository struct {
	mu     sync.Mutex
	trades map[uuid.UUID]*domain.Trade
}

func NewFakeTradeRepository() *FakeTradeRepository {
	return &FakeTradeRepository{
		trades: make(map[uuid.UUID]*domain.Trade),
	}
}

func (f *FakeTradeRepository) GetTradeByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trades[id]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	cp := cloneTrade(t)
	return &cp, nil
}

func (f *FakeTradeRepository) InsertTrade(ctx context.Context, trade *domain.Trade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := cloneTrade(trade)
	f.trades[trade.ID] = &cp
	return nil
}

func (f *FakeTradeRepository) UpdateTrade(ctx context.Context, trade *domain.Trade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.trades[trade.ID]
	if !ok {
		return domain.ErrTradeNotFound
	}
	cp := cloneTrade(trade)
	// Offers change only through AddOffer/RemoveOffer; a stale snapshot
	// written back here must not erase them
	cp.Offers = append([]string{}, stored.Offers...)
	f.trades[trade.ID] = &cp
	return nil
}

func (f *FakeTradeRepository) AddOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trades[tradeID]
	if !ok {
		return false, domain.ErrTradeNotFound
	}
	if t.HasOfferFrom(userID) {
		return false, nil
	}
	t.Offers = append(t.Offers, userID)
	return true, nil
}

func (f *FakeTradeRepository) RemoveOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trades[tradeID]
	if !ok {
		return false, domain.ErrTradeNotFound
	}
	if !t.HasOfferFrom(userID) {
		return false, nil
	}
	offers := make([]string, 0, len(t.Offers)-1)
	for _, id := range t.Offers {
		if id != userID {
			offers = append(offers, id)
		}
	}
	t.Offers = offers
	return true, nil
}

func (f *FakeTradeRepository) DeleteTrade(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trades[id]; !ok {
		return domain.ErrTradeNotFound
	}
	delete(f.trades, id)
	return nil
}

func (f *FakeTradeRepository) GetActiveTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Trade
	for _, t := range f.active() {
		if filter.HardcoreOnly && !t.Hardcore {
			continue
		}
		if filter.ItemID != nil && !matchesItem(t, *filter.ItemID, filter.Scope) {
			continue
		}
		result = append(result, cloneTrade(t))
	}

	sortByCreatedDesc(result)
	return result, nil
}

func (f *FakeTradeRepository) GetLatestTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Trade
	for _, t := range f.active() {
		result = append(result, cloneTrade(t))
	}
	sortByCreatedDesc(result)

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *FakeTradeRepository) GetHottestTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Trade
	for _, t := range f.active() {
		result = append(result, cloneTrade(t))
	}
	sort.Slice(result, func(i, j int) bool {
		if len(result[i].Offers) != len(result[j].Offers) {
			return len(result[i].Offers) > len(result[j].Offers)
		}
		return result[i].ID.String() < result[j].ID.String()
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *FakeTradeRepository) GetTradesByOwner(ctx context.Context, ownerID string) ([]domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Trade
	for _, t := range f.trades {
		if t.OwnerID == ownerID {
			result = append(result, cloneTrade(t))
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (f *FakeTradeRepository) GetTradesWithOfferFrom(ctx context.Context, userID string) ([]domain.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Trade
	for _, t := range f.trades {
		if t.HasOfferFrom(userID) {
			result = append(result, cloneTrade(t))
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (f *FakeTradeRepository) CountActiveTradesByOwner(ctx context.Context, ownerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, t := range f.trades {
		if t.OwnerID == ownerID && t.State == domain.TradeStateActive {
			count++
		}
	}
	return count, nil
}

func (f *FakeTradeRepository) active() []*domain.Trade {
	var result []*domain.Trade
	for _, t := range f.trades {
		if t.State == domain.TradeStateActive {
			result = append(result, t)
		}
	}
	return result
}

func matchesItem(t *domain.Trade, itemID int, scope domain.SearchScope) bool {
	inHave := detailsContain(t.Have, itemID)
	inWant := detailsContain(t.Want, itemID)

	switch scope {
	case domain.SearchScopeHave:
		return inHave
	case domain.SearchScopeWant:
		return inWant
	default:
		return inHave || inWant
	}
}

func detailsContain(details []domain.TradeDetails, itemID int) bool {
	for _, d := range details {
		if d.ItemID == itemID {
			return true
		}
	}
	return false
}

func sortByCreatedDesc(trades []domain.Trade) {
	sort.Slice(trades, func(i, j int) bool {
		if !trades[i].CreatedAt.Equal(trades[j].CreatedAt) {
			return trades[i].CreatedAt.After(trades[j].CreatedAt)
		}
		return trades[i].ID.String() < trades[j].ID.String()
	})
}

func cloneTrade(t *domain.Trade) domain.Trade {
	cp := *t
	cp.Have = append([]domain.TradeDetails{}, t.Have...)
	cp.Want = append([]domain.TradeDetails{}, t.Want...)
	cp.Offers = append([]string{}, t.Offers...)
	if t.WinnerID != nil {
		w := *t.WinnerID
		cp.WinnerID = &w
	}
	return cp
}

// FakeItemRepository is a stateful in-memory implementation of
// repository.Item for testing
type FakeItemRepository struct {
	mu     sync.Mutex
	items  map[int]*domain.Item
	nextID int
}

func NewFakeItemRepository() *FakeItemRepository {
	return &FakeItemRepository{
		items:  make(map[int]*domain.Item),
		nextID: 1,
	}
}

func (f *FakeItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *FakeItemRepository) GetItems(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var result []domain.Item
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, *f.items[ids[i]])
	}
	return result, nil
}

func (f *FakeItemRepository) CountItems(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

func (f *FakeItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[item.ID] = &cp
	return item.ID, nil
}

func (f *FakeItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *FakeItemRepository) DeleteItem(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

// FakeFeedbackRepository is a stateful in-memory implementation of
// repository.Feedback for testing
type FakeFeedbackRepository struct {
	mu       sync.Mutex
	feedback map[string][]domain.Feedback // keyed by recipient user ID
}

func NewFakeFeedbackRepository() *FakeFeedbackRepository {
	return &FakeFeedbackRepository{
		feedback: make(map[string][]domain.Feedback),
	}
}

func (f *FakeFeedbackRepository) InsertFeedback(ctx context.Context, feedback *domain.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedback[feedback.ToID] = append(f.feedback[feedback.ToID], *feedback)
	return nil
}

func (f *FakeFeedbackRepository) GetFeedbackForUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.Feedback, len(f.feedback[userID]))
	copy(result, f.feedback[userID])
	return result, nil
}

func (f *FakeFeedbackRepository) GetReputation(ctx context.Context, userID string) (*domain.Reputation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.feedback[userID]
	rep := &domain.Reputation{UserID: userID, Count: len(entries)}
	if len(entries) == 0 {
		return rep, nil
	}

	total := 0
	for _, fb := range entries {
		total += fb.Score
	}
	rep.Average = float64(total) / float64(len(entries))
	return rep, nil
}
