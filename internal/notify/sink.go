package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// Sink delivers typed messages to a user's inbox. Delivery is synchronous:
// an error from Deliver means the message is not in the inbox, and callers
// treat the enclosing operation as failed. Re-delivery on a retried
// operation is acceptable; exactly-once is not guaranteed.
type Sink interface {
	Deliver(ctx context.Context, userID string, messageType domain.MessageType, payload interface{}) error
}

// inboxSink persists messages through the inbox repository
type inboxSink struct {
	repo repository.Inbox
}

// NewInboxSink creates a Sink backed by the inbox repository
func NewInboxSink(repo repository.Inbox) Sink {
	if repo == nil {
		panic("notify: inbox repository is required")
	}
	return &inboxSink{repo: repo}
}

func (s *inboxSink) Deliver(ctx context.Context, userID string, messageType domain.MessageType, payload interface{}) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if !messageType.IsValid() {
		return fmt.Errorf("%w: unknown message type %q", domain.ErrInvalidInput, messageType)
	}

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode message payload: %w", err)
		}
		raw = data
	}

	msg := &domain.Message{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      messageType,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver %s message: %w", messageType, err)
	}

	return nil
}
