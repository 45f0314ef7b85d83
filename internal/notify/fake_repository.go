package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// FakeInboxRepository is a stateful in-memory implementation of
// repository.Inbox for testing. It preserves insertion order per user.
type FakeInboxRepository struct {
	mu       sync.Mutex
	messages map[string][]domain.Message // keyed by user ID
}

func NewFakeInboxRepository() *FakeInboxRepository {
	return &FakeInboxRepository{
		messages: make(map[string][]domain.Message),
	}
}

func (f *FakeInboxRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[message.UserID] = append(f.messages[message.UserID], *message)
	return nil
}

func (f *FakeInboxRepository) GetMessagesForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := make([]domain.Message, len(f.messages[userID]))
	copy(msgs, f.messages[userID])
	return msgs, nil
}

func (f *FakeInboxRepository) MarkMessageRead(ctx context.Context, messageID uuid.UUID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages[userID] {
		if f.messages[userID][i].ID == messageID {
			f.messages[userID][i].Read = true
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

// CountByType returns how many messages of the given type a user has received
func (f *FakeInboxRepository) CountByType(userID string, messageType domain.MessageType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, m := range f.messages[userID] {
		if m.Type == messageType {
			count++
		}
	}
	return count
}
