package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// FeedbackRepository implements repository.Feedback for PostgreSQL
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(pool *pgxpool.Pool) repository.Feedback {
	return &FeedbackRepository{pool: pool}
}

// InsertFeedback records a feedback entry
func (r *FeedbackRepository) InsertFeedback(ctx context.Context, feedback *domain.Feedback) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO feedback (feedback_id, trade_id, from_id, to_id, score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		feedback.ID, feedback.TradeID, feedback.FromID, feedback.ToID, feedback.Score, feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertFeedback, err)
	}
	return nil
}

// GetFeedbackForUser retrieves the feedback a user has received, newest first
func (r *FeedbackRepository) GetFeedbackForUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT feedback_id, trade_id, from_id, to_id, score, created_at
		 FROM feedback
		 WHERE to_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFeedback, err)
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.TradeID, &fb.FromID, &fb.ToID, &fb.Score, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFeedback, err)
		}
		result = append(result, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFeedback, err)
	}
	return result, nil
}

// GetReputation computes a user's average score and feedback count
func (r *FeedbackRepository) GetReputation(ctx context.Context, userID string) (*domain.Reputation, error) {
	rep := &domain.Reputation{UserID: userID}
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(score), 0), COUNT(*) FROM feedback WHERE to_id = $1`, userID).
		Scan(&rep.Average, &rep.Count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetReputation, err)
	}
	return rep, nil
}
