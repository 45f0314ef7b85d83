package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a post-completion score one party of a trade leaves about the
// other. Exactly one per (trade, role) pair: one owner-side, one winner-side.
type Feedback struct {
	ID        uuid.UUID `json:"feedback_id"`
	TradeID   uuid.UUID `json:"trade_id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Reputation is the aggregate feedback standing of a user
type Reputation struct {
	UserID  string  `json:"user_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
