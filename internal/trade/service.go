package trade

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/event"
	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/notify"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// DefaultListingCount is how many trades the latest/hottest queries return
// when the caller does not say otherwise
const DefaultListingCount = 12

// Service defines the interface for trade lifecycle operations.
//
// The service is stateless between calls; all trade state lives behind
// repository.Trade. Each operation loads, validates, mutates and persists as
// one logical step, and pushes its notifications before returning. Expected
// business-rule outcomes come back as typed results or sentinel domain
// errors, never as panics.
type Service interface {
	// Mutating operations
	CreateTrade(ctx context.Context, have, want []domain.TradeDetails, hardcore bool, ownerID string) (bool, error)
	DeleteTrade(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error)
	Offer(ctx context.Context, tradeID uuid.UUID, userID string) (domain.OfferResult, error)
	Withdraw(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error)
	ChooseWinner(ctx context.Context, tradeID uuid.UUID, winnerID, callerID string) (bool, error)
	MarkAsCompleted(ctx context.Context, tradeID uuid.UUID, userID string) (*domain.Trade, error)
	LeaveFeedback(ctx context.Context, tradeID uuid.UUID, score int, userID string) (domain.LeaveFeedbackResult, error)
	SendExchangeDetails(ctx context.Context, tradeID uuid.UUID, fromUserID string, details json.RawMessage) error

	// Query operations
	GetTradeByID(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error)
	GetActiveTrades(ctx context.Context) ([]domain.Trade, error)
	SearchActiveTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error)
	GetLatestTrades(ctx context.Context, count int) ([]domain.Trade, error)
	GetHottestTrades(ctx context.Context, count int) ([]domain.Trade, error)
	GetTradesByUser(ctx context.Context, userID string) ([]domain.Trade, error)
	GetOffersByUser(ctx context.Context, userID string) ([]domain.Trade, error)
	CanCreateTrade(ctx context.Context, userID string) (bool, error)
}

// service implements the Service interface
type service struct {
	trades    repository.Trade
	items     repository.Item
	feedback  repository.Feedback
	sink      notify.Sink
	bus       event.Bus
	itemCache *itemCache
}

// NewService creates a new trade lifecycle service. All collaborators are
// required; a nil collaborator is a programming error and fails fast.
func NewService(trades repository.Trade, items repository.Item, feedback repository.Feedback, sink notify.Sink, bus event.Bus) Service {
	if trades == nil {
		panic("trade: trade repository is required")
	}
	if items == nil {
		panic("trade: item repository is required")
	}
	if feedback == nil {
		panic("trade: feedback repository is required")
	}
	if sink == nil {
		panic("trade: notification sink is required")
	}
	if bus == nil {
		panic("trade: event bus is required")
	}

	return &service{
		trades:    trades,
		items:     items,
		feedback:  feedback,
		sink:      sink,
		bus:       bus,
		itemCache: newItemCache(defaultItemCacheSize, defaultItemCacheTTL),
	}
}

// CreateTrade creates a new Active trade for ownerID. Item ids in have/want
// are resolved through the item repository; unknown ids fail the whole
// operation. Returns (false, ErrTradeLimitReached) once the owner holds the
// maximum number of Active trades.
func (s *service) CreateTrade(ctx context.Context, have, want []domain.TradeDetails, hardcore bool, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("%w: owner id is required", domain.ErrInvalidInput)
	}
	if len(have) == 0 || len(want) == 0 {
		return false, fmt.Errorf("%w: have and want must each list at least one item", domain.ErrInvalidInput)
	}

	if err := validateDetails(have); err != nil {
		return false, err
	}
	if err := validateDetails(want); err != nil {
		return false, err
	}
	if sharesItem(have, want) {
		return false, domain.ErrSameItems
	}

	ok, err := s.CanCreateTrade(ctx, ownerID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrTradeLimitReached
	}

	// Resolve every referenced item so a dangling id never reaches storage
	for _, d := range append(append([]domain.TradeDetails{}, have...), want...) {
		if _, err := s.resolveItem(ctx, d.ItemID); err != nil {
			return false, err
		}
	}

	trade := &domain.Trade{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Hardcore:  hardcore,
		Have:      have,
		Want:      want,
		State:     domain.TradeStateActive,
		Offers:    []string{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.trades.InsertTrade(ctx, trade); err != nil {
		return false, fmt.Errorf("failed to insert trade: %w", err)
	}

	s.publish(ctx, event.NewTradeEvent(event.TradeCreated, trade.ID, ownerID, hardcore))

	return true, nil
}

// DeleteTrade removes a trade entirely. Only the owner may delete; every
// open offeror is notified before the trade and its detail rows go away.
func (s *service) DeleteTrade(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return false, err
	}

	if !trade.IsOwner(userID) {
		return false, domain.ErrNotTradeOwner
	}

	payload := domain.TradePayload{TradeID: trade.ID}
	for _, offerorID := range trade.Offers {
		if err := s.sink.Deliver(ctx, offerorID, domain.MessageTradeDeleted, payload); err != nil {
			return false, err
		}
	}

	if err := s.trades.DeleteTrade(ctx, tradeID); err != nil {
		return false, fmt.Errorf("failed to delete trade: %w", err)
	}

	s.publish(ctx, event.NewTradeEvent(event.TradeDeleted, tradeID, userID, trade.Hardcore))

	return true, nil
}

// Offer records userID's interest in the trade. The owner can never offer on
// their own trade, and a second offer from the same user is rejected without
// mutating anything or re-notifying the owner.
func (s *service) Offer(ctx context.Context, tradeID uuid.UUID, userID string) (domain.OfferResult, error) {
	if userID == "" {
		return domain.OfferResult(0), fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return domain.OfferResult(0), err
	}

	if trade.IsOwner(userID) {
		return domain.OfferOwnerCannotOffer, nil
	}

	// The store resolves racing offers: exactly one of two concurrent calls
	// for the same user sees added=true
	added, err := s.trades.AddOffer(ctx, tradeID, userID)
	if err != nil {
		return domain.OfferResult(0), fmt.Errorf("failed to record offer: %w", err)
	}
	if !added {
		return domain.OfferAlreadyOffered, nil
	}

	if err := s.sink.Deliver(ctx, trade.OwnerID, domain.MessageOfferReceived, domain.TradePayload{TradeID: trade.ID}); err != nil {
		return domain.OfferResult(0), err
	}

	s.publish(ctx, event.NewTradeEvent(event.OfferMade, trade.ID, userID, trade.Hardcore))

	return domain.OfferSuccess, nil
}

// Withdraw removes userID's offer. Withdrawing an offer that was never made
// is a no-op success; the owner has nothing to withdraw.
func (s *service) Withdraw(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return false, err
	}

	if trade.IsOwner(userID) {
		return false, nil
	}

	removed, err := s.trades.RemoveOffer(ctx, tradeID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to withdraw offer: %w", err)
	}
	if !removed {
		// Nothing to withdraw is still a success
		return true, nil
	}

	s.publish(ctx, event.NewTradeEvent(event.OfferWithdrawn, trade.ID, userID, trade.Hardcore))

	return true, nil
}

// ChooseWinner closes an Active trade. Only the owner may choose; the winner
// gets TradeWon and every other offeror gets TradeLost, exactly once each.
func (s *service) ChooseWinner(ctx context.Context, tradeID uuid.UUID, winnerID, callerID string) (bool, error) {
	if winnerID == "" {
		return false, fmt.Errorf("%w: winner id is required", domain.ErrInvalidInput)
	}

	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return false, err
	}

	if !trade.IsOwner(callerID) {
		return false, nil
	}
	if trade.State != domain.TradeStateActive {
		return false, domain.ErrTradeNotActive
	}

	winner := winnerID
	trade.WinnerID = &winner
	trade.State = domain.TradeStateClosed

	if err := s.trades.UpdateTrade(ctx, trade); err != nil {
		return false, fmt.Errorf("failed to close trade: %w", err)
	}

	payload := domain.TradePayload{TradeID: trade.ID}
	if err := s.sink.Deliver(ctx, winnerID, domain.MessageTradeWon, payload); err != nil {
		return false, err
	}
	for _, offerorID := range trade.Offers {
		if offerorID == winnerID {
			continue
		}
		if err := s.sink.Deliver(ctx, offerorID, domain.MessageTradeLost, payload); err != nil {
			return false, err
		}
	}

	s.publish(ctx, event.NewTradeEvent(event.WinnerChosen, trade.ID, callerID, trade.Hardcore))

	return true, nil
}

// MarkAsCompleted moves a Closed trade to Completed, resets both feedback
// flags and asks userID for feedback.
func (s *service) MarkAsCompleted(ctx context.Context, tradeID uuid.UUID, userID string) (*domain.Trade, error) {
	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	if trade.State != domain.TradeStateClosed {
		return nil, domain.ErrTradeNotClosed
	}

	trade.State = domain.TradeStateCompleted
	trade.Feedback = domain.TradeFeedback{}

	if err := s.trades.UpdateTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to complete trade: %w", err)
	}

	if err := s.sink.Deliver(ctx, userID, domain.MessageFeedbackRequest, domain.TradePayload{TradeID: trade.ID}); err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewTradeEvent(event.TradeCompleted, trade.ID, userID, trade.Hardcore))

	return trade, nil
}

// LeaveFeedback records a score against the caller's counterparty. The owner
// and the winner each leave feedback once, independently: the owner's score
// lands on the winner's history and vice versa.
func (s *service) LeaveFeedback(ctx context.Context, tradeID uuid.UUID, score int, userID string) (domain.LeaveFeedbackResult, error) {
	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return domain.LeaveFeedbackResult(0), err
	}

	result := canLeaveFeedback(trade, userID)
	if result != domain.FeedbackOk {
		return result, nil
	}

	var counterpartyID string
	if trade.IsOwner(userID) {
		trade.Feedback.OwnerLeft = true
		counterpartyID = *trade.WinnerID
	} else {
		trade.Feedback.WinnerLeft = true
		counterpartyID = trade.OwnerID
	}

	if err := s.trades.UpdateTrade(ctx, trade); err != nil {
		return domain.LeaveFeedbackResult(0), fmt.Errorf("failed to record feedback flag: %w", err)
	}

	fb := &domain.Feedback{
		ID:        uuid.New(),
		TradeID:   trade.ID,
		FromID:    userID,
		ToID:      counterpartyID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.feedback.InsertFeedback(ctx, fb); err != nil {
		return domain.LeaveFeedbackResult(0), fmt.Errorf("failed to record feedback: %w", err)
	}

	payload := domain.FeedbackPayload{TradeID: trade.ID, Score: score}
	if err := s.sink.Deliver(ctx, counterpartyID, domain.MessageFeedbackReceived, payload); err != nil {
		return domain.LeaveFeedbackResult(0), err
	}

	s.publish(ctx, event.NewTradeEvent(event.FeedbackLeft, trade.ID, userID, trade.Hardcore))

	return domain.FeedbackOk, nil
}

// SendExchangeDetails forwards an opaque exchange-coordination payload from
// one party of a Closed trade to the other. The engine never inspects the
// payload beyond requiring it to be present.
func (s *service) SendExchangeDetails(ctx context.Context, tradeID uuid.UUID, fromUserID string, details json.RawMessage) error {
	if len(details) == 0 {
		return fmt.Errorf("%w: exchange details are required", domain.ErrInvalidInput)
	}

	trade, err := s.trades.GetTradeByID(ctx, tradeID)
	if err != nil {
		return err
	}

	if trade.WinnerID == nil || trade.State == domain.TradeStateActive {
		return domain.ErrTradeNotClosed
	}

	var counterpartyID string
	switch {
	case trade.IsOwner(fromUserID):
		counterpartyID = *trade.WinnerID
	case trade.IsWinner(fromUserID):
		counterpartyID = trade.OwnerID
	default:
		return domain.ErrNotTradeOwner
	}

	return s.sink.Deliver(ctx, counterpartyID, domain.MessageExchangeDetails, details)
}

// GetTradeByID returns the trade with the given id
func (s *service) GetTradeByID(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error) {
	return s.trades.GetTradeByID(ctx, tradeID)
}

// GetActiveTrades returns every Active trade
func (s *service) GetActiveTrades(ctx context.Context) ([]domain.Trade, error) {
	return s.trades.GetActiveTrades(ctx, domain.TradeFilter{})
}

// SearchActiveTrades returns Active trades matching the filter. When an item
// id is given, Scope selects which side of the trade must reference it
// (default Both).
func (s *service) SearchActiveTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error) {
	if filter.Scope == "" {
		filter.Scope = domain.SearchScopeBoth
	}
	if !domain.IsValidSearchScope(string(filter.Scope)) {
		return nil, fmt.Errorf("%w: unknown search scope %q", domain.ErrInvalidInput, filter.Scope)
	}
	return s.trades.GetActiveTrades(ctx, filter)
}

// GetLatestTrades returns Active trades in reverse chronological order
func (s *service) GetLatestTrades(ctx context.Context, count int) ([]domain.Trade, error) {
	if count <= 0 {
		count = DefaultListingCount
	}
	return s.trades.GetLatestTrades(ctx, count)
}

// GetHottestTrades returns Active trades by descending offer count
func (s *service) GetHottestTrades(ctx context.Context, count int) ([]domain.Trade, error) {
	if count <= 0 {
		count = DefaultListingCount
	}
	return s.trades.GetHottestTrades(ctx, count)
}

// GetTradesByUser returns the trades owned by the user
func (s *service) GetTradesByUser(ctx context.Context, userID string) ([]domain.Trade, error) {
	return s.trades.GetTradesByOwner(ctx, userID)
}

// GetOffersByUser returns the trades the user has an open offer on
func (s *service) GetOffersByUser(ctx context.Context, userID string) ([]domain.Trade, error) {
	return s.trades.GetTradesWithOfferFrom(ctx, userID)
}

// CanCreateTrade reports whether the user is below the Active trade limit
func (s *service) CanCreateTrade(ctx context.Context, userID string) (bool, error) {
	count, err := s.trades.CountActiveTradesByOwner(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to count active trades: %w", err)
	}
	return count < domain.MaxActiveTradesPerUser, nil
}

// resolveItem loads item metadata through the LRU cache
func (s *service) resolveItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.itemCache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.itemCache.Set(item)
	return item, nil
}

// publish reports a lifecycle event to the bus. Bus failures are logged and
// never change the outcome of the operation that produced them.
func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish trade event",
			"event_type", e.Type,
			"error", err)
	}
}

func validateDetails(details []domain.TradeDetails) error {
	for _, d := range details {
		if d.Quantity < 1 {
			return fmt.Errorf("%w: item %d", domain.ErrInvalidQuantity, d.ItemID)
		}
	}
	return nil
}

func sharesItem(have, want []domain.TradeDetails) bool {
	haveIDs := make(map[int]bool, len(have))
	for _, d := range have {
		haveIDs[d.ItemID] = true
	}
	for _, d := range want {
		if haveIDs[d.ItemID] {
			return true
		}
	}
	return false
}

func canLeaveFeedback(trade *domain.Trade, userID string) domain.LeaveFeedbackResult {
	if trade.WinnerID == nil {
		return domain.FeedbackUnauthorized
	}
	if !trade.IsOwner(userID) && !trade.IsWinner(userID) {
		return domain.FeedbackUnauthorized
	}

	if trade.IsOwner(userID) && trade.Feedback.OwnerLeft ||
		trade.IsWinner(userID) && trade.Feedback.WinnerLeft {
		return domain.FeedbackAlreadyLeft
	}

	return domain.FeedbackOk
}
