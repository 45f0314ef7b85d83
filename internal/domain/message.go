package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the kind of notification delivered to a user's inbox.
//
// Message types follow the pattern: <entity>.<event> (e.g., "trade.won")
type MessageType string

const (
	MessageTradeDeleted     MessageType = "trade.deleted"
	MessageOfferReceived    MessageType = "offer.received"
	MessageTradeWon         MessageType = "trade.won"
	MessageTradeLost        MessageType = "trade.lost"
	MessageFeedbackRequest  MessageType = "feedback.request"
	MessageFeedbackReceived MessageType = "feedback.received"
	MessageExchangeDetails  MessageType = "exchange.details"
)

// IsValid reports whether the message type is known
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTradeDeleted, MessageOfferReceived, MessageTradeWon,
		MessageTradeLost, MessageFeedbackRequest, MessageFeedbackReceived,
		MessageExchangeDetails:
		return true
	}
	return false
}

// Message is a typed notification in a user's inbox. Payload is opaque to the
// lifecycle engine beyond the type that produced it.
type Message struct {
	ID        uuid.UUID       `json:"message_id"`
	UserID    string          `json:"user_id"`
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}

// TradePayload is the common payload carried by trade lifecycle messages
type TradePayload struct {
	TradeID uuid.UUID `json:"trade_id"`
}

// FeedbackPayload is carried by feedback.received messages
type FeedbackPayload struct {
	TradeID uuid.UUID `json:"trade_id"`
	Score   int       `json:"score"`
}
