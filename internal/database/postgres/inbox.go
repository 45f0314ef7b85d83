package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// InboxRepository implements repository.Inbox for PostgreSQL
type InboxRepository struct {
	pool *pgxpool.Pool
}

// NewInboxRepository creates a new InboxRepository
func NewInboxRepository(pool *pgxpool.Pool) repository.Inbox {
	return &InboxRepository{pool: pool}
}

// InsertMessage stores a new inbox message
func (r *InboxRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO messages (message_id, user_id, message_type, payload, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		message.ID, message.UserID, string(message.Type), message.Payload, message.Read, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertMessage, err)
	}
	return nil
}

// GetMessagesForUser retrieves a user's messages oldest-first
func (r *InboxRepository) GetMessagesForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT message_id, user_id, message_type, payload, read, created_at
		 FROM messages
		 WHERE user_id = $1
		 ORDER BY created_at, message_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMessages, err)
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var (
			msg     domain.Message
			msgType string
		)
		if err := rows.Scan(&msg.ID, &msg.UserID, &msgType, &msg.Payload, &msg.Read, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMessages, err)
		}
		msg.Type = domain.MessageType(msgType)
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMessages, err)
	}
	return result, nil
}

// MarkMessageRead flags a message as read. The user id guards against marking
// someone else's message.
func (r *InboxRepository) MarkMessageRead(ctx context.Context, messageID uuid.UUID, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET read = TRUE WHERE message_id = $1 AND user_id = $2`,
		messageID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkRead, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
