package trade

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/event"
	"github.com/halcyard/TradeCenter_Go/internal/notify"
)

type testEnv struct {
	svc      Service
	trades   *FakeTradeRepository
	items    *FakeItemRepository
	feedback *FakeFeedbackRepository
	inbox    *notify.FakeInboxRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		trades:   NewFakeTradeRepository(),
		items:    NewFakeItemRepository(),
		feedback: NewFakeFeedbackRepository(),
		inbox:    notify.NewFakeInboxRepository(),
	}
	env.svc = NewService(env.trades, env.items, env.feedback, notify.NewInboxSink(env.inbox), event.NewMemoryBus())

	return env
}

// seedItems inserts n catalog items and returns their ids
func (e *testEnv) seedItems(t *testing.T, names ...string) []int {
	t.Helper()

	ids := make([]int, len(names))
	for i, name := range names {
		id, err := e.items.InsertItem(context.Background(), &domain.Item{
			Name:   name,
			Rarity: domain.RarityCommon,
		})
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func (e *testEnv) createTrade(t *testing.T, owner string, haveItem, wantItem int) *domain.Trade {
	t.Helper()

	ok, err := e.svc.CreateTrade(context.Background(),
		[]domain.TradeDetails{{ItemID: haveItem, Quantity: 1}},
		[]domain.TradeDetails{{ItemID: wantItem, Quantity: 1}},
		false, owner)
	require.NoError(t, err)
	require.True(t, ok)

	trades, err := e.svc.GetTradesByUser(context.Background(), owner)
	require.NoError(t, err)
	require.NotEmpty(t, trades)
	return &trades[0]
}

func TestCreateTradeEnforcesActiveLimit(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	ctx := context.Background()

	for i := 0; i < domain.MaxActiveTradesPerUser; i++ {
		ok, err := env.svc.CreateTrade(ctx,
			[]domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
			[]domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			false, "u1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	canCreate, err := env.svc.CanCreateTrade(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, canCreate)

	ok, err := env.svc.CreateTrade(ctx,
		[]domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
		[]domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
		false, "u1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrTradeLimitReached)

	// The rejected trade must not be persisted
	trades, err := env.svc.GetTradesByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, trades, domain.MaxActiveTradesPerUser)

	// Another user is unaffected
	canCreate, err = env.svc.CanCreateTrade(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, canCreate)
}

func TestCreateTradeValidation(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	ctx := context.Background()

	tests := []struct {
		name    string
		have    []domain.TradeDetails
		want    []domain.TradeDetails
		owner   string
		wantErr error
	}{
		{
			name:    "missing owner",
			have:    []domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
			want:    []domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			owner:   "",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "empty have",
			have:    nil,
			want:    []domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			owner:   "u1",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "zero quantity",
			have:    []domain.TradeDetails{{ItemID: ids[0], Quantity: 0}},
			want:    []domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			owner:   "u1",
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "have and want overlap",
			have:    []domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
			want:    []domain.TradeDetails{{ItemID: ids[0], Quantity: 2}},
			owner:   "u1",
			wantErr: domain.ErrSameItems,
		},
		{
			name:    "unknown item",
			have:    []domain.TradeDetails{{ItemID: 999, Quantity: 1}},
			want:    []domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			owner:   "u1",
			wantErr: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := env.svc.CreateTrade(ctx, tt.have, tt.want, false, tt.owner)
			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTradeRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "ItemA", "ItemB")
	ctx := context.Background()

	ok, err := env.svc.CreateTrade(ctx,
		[]domain.TradeDetails{{ItemID: ids[0], Quantity: 2}},
		[]domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
		true, "u1")
	require.NoError(t, err)
	require.True(t, ok)

	trades, err := env.svc.GetTradesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, trades, 1)

	reloaded, err := env.svc.GetTradeByID(ctx, trades[0].ID)
	require.NoError(t, err)

	assert.Equal(t, []domain.TradeDetails{{ItemID: ids[0], Quantity: 2}}, reloaded.Have)
	assert.Equal(t, []domain.TradeDetails{{ItemID: ids[1], Quantity: 1}}, reloaded.Want)
	assert.True(t, reloaded.Hardcore)
	assert.Equal(t, domain.TradeStateActive, reloaded.State)
	assert.Empty(t, reloaded.Offers)
	assert.Nil(t, reloaded.WinnerID)
}

func TestOfferRules(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	// Owner can never offer on their own trade
	result, err := env.svc.Offer(ctx, tr.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferOwnerCannotOffer, result)

	reloaded, err := env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Offers)
	assert.Zero(t, env.inbox.CountByType("owner", domain.MessageOfferReceived))

	// First offer succeeds and notifies the owner
	result, err = env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferSuccess, result)
	assert.Equal(t, 1, env.inbox.CountByType("owner", domain.MessageOfferReceived))

	// Duplicate offer is rejected without a second notification
	result, err = env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferAlreadyOffered, result)

	reloaded, err = env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, reloaded.Offers)
	assert.Equal(t, 1, env.inbox.CountByType("owner", domain.MessageOfferReceived))
}

func TestOfferUnknownTrade(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Offer(context.Background(), uuid.New(), "u2")
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}

func TestConcurrentOffersAllRecorded(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	users := []string{"u2", "u3", "u4"}
	results := make([]domain.OfferResult, len(users))
	errs := make([]error, len(users))

	var wg sync.WaitGroup
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			results[i], errs[i] = env.svc.Offer(ctx, tr.ID, userID)
		}(i, userID)
	}
	wg.Wait()

	for i := range users {
		require.NoError(t, errs[i])
		assert.Equal(t, domain.OfferSuccess, results[i])
	}

	reloaded, err := env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, users, reloaded.Offers)
	assert.Equal(t, len(users), env.inbox.CountByType("owner", domain.MessageOfferReceived))
}

func TestConcurrentDuplicateOfferSingleSuccess(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	const attempts = 8
	results := make([]domain.OfferResult, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = env.svc.Offer(ctx, tr.ID, "u2")
		}(i)
	}
	wg.Wait()

	successes := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i] == domain.OfferSuccess {
			successes++
		} else {
			assert.Equal(t, domain.OfferAlreadyOffered, results[i])
		}
	}
	assert.Equal(t, 1, successes)

	reloaded, err := env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, reloaded.Offers)
	assert.Equal(t, 1, env.inbox.CountByType("owner", domain.MessageOfferReceived))
}

func TestStaleSnapshotCannotEraseOffers(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	// Snapshot loaded before any offer exists
	stale, err := env.trades.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	require.Empty(t, stale.Offers)

	added, err := env.trades.AddOffer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	require.True(t, added)

	// Writing the stale snapshot back must not drop u2's offer
	winner := "u2"
	stale.WinnerID = &winner
	stale.State = domain.TradeStateClosed
	require.NoError(t, env.trades.UpdateTrade(ctx, stale))

	reloaded, err := env.trades.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStateClosed, reloaded.State)
	assert.Equal(t, []string{"u2"}, reloaded.Offers)
}

func TestWithdraw(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	_, err := env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	_, err = env.svc.Offer(ctx, tr.ID, "u3")
	require.NoError(t, err)

	// Owner has nothing to withdraw
	ok, err := env.svc.Withdraw(ctx, tr.ID, "owner")
	require.NoError(t, err)
	assert.False(t, ok)

	// Withdrawing an absent offer is a no-op success
	ok, err = env.svc.Withdraw(ctx, tr.ID, "u4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.svc.Withdraw(ctx, tr.ID, "u2")
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, reloaded.Offers)
}

func TestChooseWinner(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	for _, u := range []string{"u2", "u3", "u4"} {
		_, err := env.svc.Offer(ctx, tr.ID, u)
		require.NoError(t, err)
	}

	// Only the owner may choose
	ok, err := env.svc.ChooseWinner(ctx, tr.ID, "u2", "u3")
	require.NoError(t, err)
	assert.False(t, ok)

	reloaded, err := env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStateActive, reloaded.State)
	assert.Nil(t, reloaded.WinnerID)

	ok, err = env.svc.ChooseWinner(ctx, tr.ID, "u2", "owner")
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err = env.svc.GetTradeByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStateClosed, reloaded.State)
	require.NotNil(t, reloaded.WinnerID)
	assert.Equal(t, "u2", *reloaded.WinnerID)

	// Exactly one TradeWon, and TradeLost to every other offeror
	assert.Equal(t, 1, env.inbox.CountByType("u2", domain.MessageTradeWon))
	assert.Zero(t, env.inbox.CountByType("u2", domain.MessageTradeLost))
	assert.Equal(t, 1, env.inbox.CountByType("u3", domain.MessageTradeLost))
	assert.Equal(t, 1, env.inbox.CountByType("u4", domain.MessageTradeLost))

	// A closed trade cannot be closed again
	ok, err = env.svc.ChooseWinner(ctx, tr.ID, "u3", "owner")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrTradeNotActive)
}

func TestMarkAsCompleted(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	// An Active trade cannot be completed
	_, err := env.svc.MarkAsCompleted(ctx, tr.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrTradeNotClosed)

	_, err = env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	ok, err := env.svc.ChooseWinner(ctx, tr.ID, "u2", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := env.svc.MarkAsCompleted(ctx, tr.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStateCompleted, updated.State)
	assert.False(t, updated.Feedback.OwnerLeft)
	assert.False(t, updated.Feedback.WinnerLeft)
	assert.Equal(t, 1, env.inbox.CountByType("u2", domain.MessageFeedbackRequest))
}

func TestLeaveFeedbackRoles(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	_, err := env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	_, err = env.svc.ChooseWinner(ctx, tr.ID, "u2", "owner")
	require.NoError(t, err)
	_, err = env.svc.MarkAsCompleted(ctx, tr.ID, "u2")
	require.NoError(t, err)

	// A stranger cannot leave feedback
	result, err := env.svc.LeaveFeedback(ctx, tr.ID, 5, "u9")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackUnauthorized, result)

	// Owner: Ok then AlreadyLeft
	result, err = env.svc.LeaveFeedback(ctx, tr.ID, 5, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackOk, result)

	result, err = env.svc.LeaveFeedback(ctx, tr.ID, 4, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackAlreadyLeft, result)

	// Winner's flag is independent
	result, err = env.svc.LeaveFeedback(ctx, tr.ID, 3, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackOk, result)

	// Owner's score lands on the winner's history and vice versa
	winnerFeedback, err := env.feedback.GetFeedbackForUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, winnerFeedback, 1)
	assert.Equal(t, 5, winnerFeedback[0].Score)
	assert.Equal(t, "owner", winnerFeedback[0].FromID)

	ownerFeedback, err := env.feedback.GetFeedbackForUser(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, ownerFeedback, 1)
	assert.Equal(t, 3, ownerFeedback[0].Score)

	assert.Equal(t, 1, env.inbox.CountByType("u2", domain.MessageFeedbackReceived))
	assert.Equal(t, 1, env.inbox.CountByType("owner", domain.MessageFeedbackReceived))
}

func TestLeaveFeedbackBeforeWinner(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])

	result, err := env.svc.LeaveFeedback(context.Background(), tr.ID, 5, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackUnauthorized, result)
}

func TestDeleteTrade(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	_, err := env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	_, err = env.svc.Offer(ctx, tr.ID, "u3")
	require.NoError(t, err)

	ok, err := env.svc.DeleteTrade(ctx, tr.ID, "u2")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrNotTradeOwner)

	ok, err = env.svc.DeleteTrade(ctx, tr.ID, "owner")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1, env.inbox.CountByType("u2", domain.MessageTradeDeleted))
	assert.Equal(t, 1, env.inbox.CountByType("u3", domain.MessageTradeDeleted))

	_, err = env.svc.GetTradeByID(ctx, tr.ID)
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}

func TestDeleteTradeAfterClose(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	_, err := env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	ok, err := env.svc.ChooseWinner(ctx, tr.ID, "u2", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	// Ownership is the only deletion gate; a Closed trade can still go away
	ok, err = env.svc.DeleteTrade(ctx, tr.ID, "owner")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = env.svc.GetTradeByID(ctx, tr.ID)
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}

func TestSendExchangeDetails(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	tr := env.createTrade(t, "owner", ids[0], ids[1])
	ctx := context.Background()

	details := json.RawMessage(`{"location":"NW airfield","time":"21:00 GMT"}`)

	// Exchange coordination only exists once the trade is closed
	err := env.svc.SendExchangeDetails(ctx, tr.ID, "owner", details)
	assert.ErrorIs(t, err, domain.ErrTradeNotClosed)

	_, err = env.svc.Offer(ctx, tr.ID, "u2")
	require.NoError(t, err)
	_, err = env.svc.ChooseWinner(ctx, tr.ID, "u2", "owner")
	require.NoError(t, err)

	err = env.svc.SendExchangeDetails(ctx, tr.ID, "owner", details)
	require.NoError(t, err)
	assert.Equal(t, 1, env.inbox.CountByType("u2", domain.MessageExchangeDetails))

	err = env.svc.SendExchangeDetails(ctx, tr.ID, "u2", details)
	require.NoError(t, err)
	assert.Equal(t, 1, env.inbox.CountByType("owner", domain.MessageExchangeDetails))

	err = env.svc.SendExchangeDetails(ctx, tr.ID, "u9", details)
	assert.ErrorIs(t, err, domain.ErrNotTradeOwner)
}

func TestSearchActiveTrades(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope", "Tent")
	ctx := context.Background()

	// hardcore trade: have Axe, want Rope
	ok, err := env.svc.CreateTrade(ctx,
		[]domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
		[]domain.TradeDetails{{ItemID: ids[1], Quantity: 2}},
		true, "u1")
	require.NoError(t, err)
	require.True(t, ok)

	// regular trade: have Rope, want Tent
	ok, err = env.svc.CreateTrade(ctx,
		[]domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
		[]domain.TradeDetails{{ItemID: ids[2], Quantity: 1}},
		false, "u2")
	require.NoError(t, err)
	require.True(t, ok)

	all, err := env.svc.GetActiveTrades(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hardcore, err := env.svc.SearchActiveTrades(ctx, domain.TradeFilter{HardcoreOnly: true})
	require.NoError(t, err)
	require.Len(t, hardcore, 1)
	assert.Equal(t, "u1", hardcore[0].OwnerID)

	rope := ids[1]
	haveRope, err := env.svc.SearchActiveTrades(ctx, domain.TradeFilter{ItemID: &rope, Scope: domain.SearchScopeHave})
	require.NoError(t, err)
	require.Len(t, haveRope, 1)
	assert.Equal(t, "u2", haveRope[0].OwnerID)

	wantRope, err := env.svc.SearchActiveTrades(ctx, domain.TradeFilter{ItemID: &rope, Scope: domain.SearchScopeWant})
	require.NoError(t, err)
	require.Len(t, wantRope, 1)
	assert.Equal(t, "u1", wantRope[0].OwnerID)

	bothRope, err := env.svc.SearchActiveTrades(ctx, domain.TradeFilter{ItemID: &rope})
	require.NoError(t, err)
	assert.Len(t, bothRope, 2)

	_, err = env.svc.SearchActiveTrades(ctx, domain.TradeFilter{Scope: domain.SearchScope("sideways")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetLatestAndHottestTrades(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	ctx := context.Background()

	owners := []string{"u1", "u2", "u3"}
	var trades []domain.Trade
	for _, owner := range owners {
		ok, err := env.svc.CreateTrade(ctx,
			[]domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
			[]domain.TradeDetails{{ItemID: ids[1], Quantity: 1}},
			false, owner)
		require.NoError(t, err)
		require.True(t, ok)
		// Creation timestamps must differ for a meaningful ordering check
		time.Sleep(2 * time.Millisecond)

		owned, err := env.svc.GetTradesByUser(ctx, owner)
		require.NoError(t, err)
		trades = append(trades, owned[0])
	}

	latest, err := env.svc.GetLatestTrades(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "u3", latest[0].OwnerID)
	assert.Equal(t, "u2", latest[1].OwnerID)

	// u1's trade gets two offers, u2's one, u3's none
	for _, u := range []string{"u8", "u9"} {
		_, err := env.svc.Offer(ctx, trades[0].ID, u)
		require.NoError(t, err)
	}
	_, err = env.svc.Offer(ctx, trades[1].ID, "u9")
	require.NoError(t, err)

	hottest, err := env.svc.GetHottestTrades(ctx, 2)
	require.NoError(t, err)
	require.Len(t, hottest, 2)
	assert.Equal(t, "u1", hottest[0].OwnerID)
	assert.Equal(t, "u2", hottest[1].OwnerID)
}

func TestGetOffersByUser(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	ctx := context.Background()

	t1 := env.createTrade(t, "u1", ids[0], ids[1])
	t2 := env.createTrade(t, "u2", ids[0], ids[1])

	_, err := env.svc.Offer(ctx, t1.ID, "u3")
	require.NoError(t, err)
	_, err = env.svc.Offer(ctx, t2.ID, "u3")
	require.NoError(t, err)

	offered, err := env.svc.GetOffersByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Len(t, offered, 2)
}

// Full lifecycle walkthrough: create, offer, choose winner, complete,
// feedback from both sides.
func TestTradeLifecycleScenario(t *testing.T) {
	env := newTestEnv(t)
	ids := env.seedItems(t, "Axe", "Rope")
	ctx := context.Background()

	ok, err := env.svc.CreateTrade(ctx,
		[]domain.TradeDetails{{ItemID: ids[0], Quantity: 1}},
		[]domain.TradeDetails{{ItemID: ids[1], Quantity: 2}},
		false, "U1")
	require.NoError(t, err)
	require.True(t, ok)

	trades, err := env.svc.GetTradesByUser(ctx, "U1")
	require.NoError(t, err)
	tr := trades[0]
	assert.Equal(t, domain.TradeStateActive, tr.State)

	result, err := env.svc.Offer(ctx, tr.ID, "U2")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferSuccess, result)

	ok, err = env.svc.ChooseWinner(ctx, tr.ID, "U2", "U1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, env.inbox.CountByType("U2", domain.MessageTradeWon))

	updated, err := env.svc.MarkAsCompleted(ctx, tr.ID, "U2")
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStateCompleted, updated.State)
	assert.Equal(t, 1, env.inbox.CountByType("U2", domain.MessageFeedbackRequest))

	fb, err := env.svc.LeaveFeedback(ctx, tr.ID, 5, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackOk, fb)

	fb, err = env.svc.LeaveFeedback(ctx, tr.ID, 4, "U2")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackOk, fb)

	fb, err = env.svc.LeaveFeedback(ctx, tr.ID, 1, "U1")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackAlreadyLeft, fb)
}
