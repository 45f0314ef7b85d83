package domain

import (
	"time"

	"github.com/google/uuid"
)

// TradeState represents the lifecycle state of a trade
type TradeState string

const (
	TradeStateActive    TradeState = "ACTIVE"
	TradeStateClosed    TradeState = "CLOSED"
	TradeStateCompleted TradeState = "COMPLETED"
)

// IsValid reports whether the state is one of the known lifecycle states
func (s TradeState) IsValid() bool {
	switch s {
	case TradeStateActive, TradeStateClosed, TradeStateCompleted:
		return true
	}
	return false
}

// MaxActiveTradesPerUser bounds how many Active trades a single owner may hold
const MaxActiveTradesPerUser = 3

// TradeDetails is a single line of a trade's Have or Want list
type TradeDetails struct {
	ItemID   int `json:"item_id" db:"item_id"`
	Quantity int `json:"quantity" db:"quantity"`
}

// TradeFeedback tracks which side of a completed trade has left feedback.
// The two flags are independent: the owner leaving feedback does not affect
// the winner's ability to leave theirs.
type TradeFeedback struct {
	OwnerLeft  bool `json:"owner_left" db:"feedback_owner_left"`
	WinnerLeft bool `json:"winner_left" db:"feedback_winner_left"`
}

// Trade is a barter listing: items offered (Have) against items sought (Want).
// Offers preserves insertion order; membership is unique and never includes
// the owner. WinnerID is set only when the trade leaves the Active state.
type Trade struct {
	ID        uuid.UUID      `json:"trade_id"`
	OwnerID   string         `json:"owner_id"`
	Hardcore  bool           `json:"hardcore"`
	Have      []TradeDetails `json:"have"`
	Want      []TradeDetails `json:"want"`
	State     TradeState     `json:"state"`
	Offers    []string       `json:"offers"`
	WinnerID  *string        `json:"winner_id,omitempty"`
	Feedback  TradeFeedback  `json:"feedback"`
	CreatedAt time.Time      `json:"created_at"`
}

// HasOfferFrom reports whether the user has an open offer on the trade
func (t *Trade) HasOfferFrom(userID string) bool {
	for _, id := range t.Offers {
		if id == userID {
			return true
		}
	}
	return false
}

// OfferCount returns the number of open offers
func (t *Trade) OfferCount() int {
	return len(t.Offers)
}

// IsOwner reports whether the user owns the trade
func (t *Trade) IsOwner(userID string) bool {
	return t.OwnerID == userID
}

// IsWinner reports whether the user was chosen as the trade's winner
func (t *Trade) IsWinner(userID string) bool {
	return t.WinnerID != nil && *t.WinnerID == userID
}

// SearchScope selects which side of a trade an item filter matches against
type SearchScope string

const (
	SearchScopeHave SearchScope = "have"
	SearchScopeWant SearchScope = "want"
	SearchScopeBoth SearchScope = "both"
)

// IsValidSearchScope checks a scope string (empty means Both)
func IsValidSearchScope(scope string) bool {
	switch SearchScope(scope) {
	case SearchScopeHave, SearchScopeWant, SearchScopeBoth, "":
		return true
	}
	return false
}

// TradeFilter narrows an active-trade query. HardcoreOnly restricts to the
// hardcore economy; ItemID (when set) matches trades whose Have/Want lists
// reference the item, according to Scope.
type TradeFilter struct {
	HardcoreOnly bool
	ItemID       *int
	Scope        SearchScope
}

// OfferResult is the outcome of an Offer operation
type OfferResult int

const (
	OfferSuccess OfferResult = iota
	OfferAlreadyOffered
	OfferOwnerCannotOffer
)

// String returns a stable label for logging and API responses
func (r OfferResult) String() string {
	switch r {
	case OfferSuccess:
		return "success"
	case OfferAlreadyOffered:
		return "already_offered"
	case OfferOwnerCannotOffer:
		return "owner_cannot_offer"
	}
	return "unknown"
}

// LeaveFeedbackResult is the outcome of a LeaveFeedback operation
type LeaveFeedbackResult int

const (
	FeedbackOk LeaveFeedbackResult = iota
	FeedbackUnauthorized
	FeedbackAlreadyLeft
)

// String returns a stable label for logging and API responses
func (r LeaveFeedbackResult) String() string {
	switch r {
	case FeedbackOk:
		return "ok"
	case FeedbackUnauthorized:
		return "unauthorized"
	case FeedbackAlreadyLeft:
		return "already_left"
	}
	return "unknown"
}
