package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Trade lifecycle event types
const (
	TradeCreated   Type = "trade.created"
	TradeDeleted   Type = "trade.deleted"
	OfferMade      Type = "offer.made"
	OfferWithdrawn Type = "offer.withdrawn"
	WinnerChosen   Type = "winner.chosen"
	TradeCompleted Type = "trade.completed"
	FeedbackLeft   Type = "feedback.left"
)

// TradeEventPayloadV1 is the typed payload for trade lifecycle events
type TradeEventPayloadV1 struct {
	TradeID   uuid.UUID `json:"trade_id"`
	ActorID   string    `json:"actor_id"`
	Hardcore  bool      `json:"hardcore"`
	Timestamp int64     `json:"timestamp"`
}

// NewTradeEvent creates a trade lifecycle event with a type-safe payload
func NewTradeEvent(eventType Type, tradeID uuid.UUID, actorID string, hardcore bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: TradeEventPayloadV1{
			TradeID:   tradeID,
			ActorID:   actorID,
			Hardcore:  hardcore,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously; subscribers must stay cheap
	// (metrics counters, log lines).
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
