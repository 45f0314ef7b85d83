package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/repository"
)

// TradeRepository implements repository.Trade for PostgreSQL. A trade spans
// three tables (trades, trade_details, trade_offers); every multi-table write
// runs in one transaction.
type TradeRepository struct {
	pool *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(pool *pgxpool.Pool) repository.Trade {
	return &TradeRepository{pool: pool}
}

const tradeColumns = `trade_id, owner_id, hardcore, state, winner_id, owner_feedback_left, winner_feedback_left, created_at`

// GetTradeByID retrieves a trade with its details and offers
func (r *TradeRepository) GetTradeByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1`, id)

	trade, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTrade, err)
	}

	if err := r.hydrateTrades(ctx, []*domain.Trade{trade}); err != nil {
		return nil, err
	}
	return trade, nil
}

// InsertTrade persists a new trade, its detail rows and any offers in one
// transaction
func (r *TradeRepository) InsertTrade(ctx context.Context, trade *domain.Trade) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx,
		`INSERT INTO trades (trade_id, owner_id, hardcore, state, winner_id, owner_feedback_left, winner_feedback_left, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		trade.ID, trade.OwnerID, trade.Hardcore, string(trade.State), trade.WinnerID,
		trade.Feedback.OwnerLeft, trade.Feedback.WinnerLeft, trade.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTrade, err)
	}

	if err := insertDetails(ctx, tx, trade.ID, SideHave, trade.Have); err != nil {
		return err
	}
	if err := insertDetails(ctx, tx, trade.ID, SideWant, trade.Want); err != nil {
		return err
	}
	if err := insertOffers(ctx, tx, trade.ID, trade.Offers); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// UpdateTrade persists the mutable parts of a trade: state, winner and
// feedback flags. Have/Want lines are fixed at creation and never rewritten,
// and the offer set is only ever touched by AddOffer/RemoveOffer so a stale
// snapshot here cannot clobber a concurrent offer.
func (r *TradeRepository) UpdateTrade(ctx context.Context, trade *domain.Trade) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trades
		 SET state = $2, winner_id = $3, owner_feedback_left = $4, winner_feedback_left = $5
		 WHERE trade_id = $1`,
		trade.ID, string(trade.State), trade.WinnerID,
		trade.Feedback.OwnerLeft, trade.Feedback.WinnerLeft)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTrade, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

// AddOffer records an offer in a single statement; the primary key on
// (trade_id, user_id) makes ON CONFLICT DO NOTHING report duplicates through
// the row count, so two racing offers from the same user resolve to exactly
// one Success.
func (r *TradeRepository) AddOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO trade_offers (trade_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (trade_id, user_id) DO NOTHING`,
		tradeID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
			return false, domain.ErrTradeNotFound
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertOffer, err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveOffer deletes an offer in a single statement
func (r *TradeRepository) RemoveOffer(ctx context.Context, tradeID uuid.UUID, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM trade_offers WHERE trade_id = $1 AND user_id = $2`,
		tradeID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteOffers, err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteTrade removes the trade; details and offers go with it via ON DELETE
// CASCADE
func (r *TradeRepository) DeleteTrade(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trades WHERE trade_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTrade, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

// GetActiveTrades retrieves Active trades matching the filter. The item
// predicate is pushed into SQL as an EXISTS over trade_details.
func (r *TradeRepository) GetActiveTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades t WHERE t.state = $1`
	args := []any{string(domain.TradeStateActive)}

	if filter.HardcoreOnly {
		query += ` AND t.hardcore`
	}

	if filter.ItemID != nil {
		args = append(args, *filter.ItemID)
		cond := fmt.Sprintf(`EXISTS (SELECT 1 FROM trade_details d WHERE d.trade_id = t.trade_id AND d.item_id = $%d`, len(args))
		switch filter.Scope {
		case domain.SearchScopeHave:
			args = append(args, SideHave)
			cond += fmt.Sprintf(` AND d.side = $%d`, len(args))
		case domain.SearchScopeWant:
			args = append(args, SideWant)
			cond += fmt.Sprintf(` AND d.side = $%d`, len(args))
		}
		query += ` AND ` + cond + `)`
	}

	query += ` ORDER BY t.created_at DESC, t.trade_id`

	return r.queryTrades(ctx, query, args...)
}

// GetLatestTrades retrieves Active trades newest-first
func (r *TradeRepository) GetLatestTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	return r.queryTrades(ctx,
		`SELECT `+tradeColumns+` FROM trades
		 WHERE state = $1
		 ORDER BY created_at DESC, trade_id
		 LIMIT $2`,
		string(domain.TradeStateActive), limit)
}

// GetHottestTrades retrieves Active trades by descending offer count
func (r *TradeRepository) GetHottestTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	return r.queryTrades(ctx,
		`SELECT t.trade_id, t.owner_id, t.hardcore, t.state, t.winner_id, t.owner_feedback_left, t.winner_feedback_left, t.created_at
		 FROM trades t
		 LEFT JOIN trade_offers o ON o.trade_id = t.trade_id
		 WHERE t.state = $1
		 GROUP BY t.trade_id
		 ORDER BY COUNT(o.user_id) DESC, t.trade_id
		 LIMIT $2`,
		string(domain.TradeStateActive), limit)
}

// GetTradesByOwner retrieves all trades owned by a user
func (r *TradeRepository) GetTradesByOwner(ctx context.Context, ownerID string) ([]domain.Trade, error) {
	return r.queryTrades(ctx,
		`SELECT `+tradeColumns+` FROM trades
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, trade_id`,
		ownerID)
}

// GetTradesWithOfferFrom retrieves the trades a user has an open offer on
func (r *TradeRepository) GetTradesWithOfferFrom(ctx context.Context, userID string) ([]domain.Trade, error) {
	return r.queryTrades(ctx,
		`SELECT `+tradeColumns+` FROM trades t
		 WHERE EXISTS (SELECT 1 FROM trade_offers o WHERE o.trade_id = t.trade_id AND o.user_id = $1)
		 ORDER BY created_at DESC, trade_id`,
		userID)
}

// CountActiveTradesByOwner counts a user's Active trades
func (r *TradeRepository) CountActiveTradesByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM trades WHERE owner_id = $1 AND state = $2`,
		ownerID, string(domain.TradeStateActive)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountTrades, err)
	}
	return count, nil
}

func (r *TradeRepository) queryTrades(ctx context.Context, query string, args ...any) ([]domain.Trade, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTrades, err)
	}

	if err := r.hydrateTrades(ctx, trades); err != nil {
		return nil, err
	}

	result := make([]domain.Trade, len(trades))
	for i, t := range trades {
		result[i] = *t
	}
	return result, nil
}

// hydrateTrades loads details and offers for a batch of trades in two queries
func (r *TradeRepository) hydrateTrades(ctx context.Context, trades []*domain.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Trade, len(trades))
	ids := make([]uuid.UUID, len(trades))
	for i, t := range trades {
		byID[t.ID] = t
		ids[i] = t.ID
		t.Have = []domain.TradeDetails{}
		t.Want = []domain.TradeDetails{}
		t.Offers = []string{}
	}

	rows, err := r.pool.Query(ctx,
		`SELECT trade_id, item_id, side, quantity FROM trade_details
		 WHERE trade_id = ANY($1)
		 ORDER BY trade_detail_id`, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryTradeDetails, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tradeID uuid.UUID
			detail  domain.TradeDetails
			side    string
		)
		if err := rows.Scan(&tradeID, &detail.ItemID, &side, &detail.Quantity); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToQueryTradeDetails, err)
		}
		trade := byID[tradeID]
		if side == SideHave {
			trade.Have = append(trade.Have, detail)
		} else {
			trade.Want = append(trade.Want, detail)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryTradeDetails, err)
	}

	offerRows, err := r.pool.Query(ctx,
		`SELECT trade_id, user_id FROM trade_offers
		 WHERE trade_id = ANY($1)
		 ORDER BY offer_position`, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryOffers, err)
	}
	defer offerRows.Close()

	for offerRows.Next() {
		var (
			tradeID uuid.UUID
			userID  string
		)
		if err := offerRows.Scan(&tradeID, &userID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToQueryOffers, err)
		}
		trade := byID[tradeID]
		trade.Offers = append(trade.Offers, userID)
	}
	if err := offerRows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryOffers, err)
	}

	return nil
}

func scanTrade(row pgx.Row) (*domain.Trade, error) {
	var (
		trade domain.Trade
		state string
	)
	err := row.Scan(&trade.ID, &trade.OwnerID, &trade.Hardcore, &state, &trade.WinnerID,
		&trade.Feedback.OwnerLeft, &trade.Feedback.WinnerLeft, &trade.CreatedAt)
	if err != nil {
		return nil, err
	}
	trade.State = domain.TradeState(state)
	return &trade, nil
}

func insertDetails(ctx context.Context, tx pgx.Tx, tradeID uuid.UUID, side string, details []domain.TradeDetails) error {
	for _, d := range details {
		_, err := tx.Exec(ctx,
			`INSERT INTO trade_details (trade_id, item_id, side, quantity) VALUES ($1, $2, $3, $4)`,
			tradeID, d.ItemID, side, d.Quantity)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTradeDetail, err)
		}
	}
	return nil
}

func insertOffers(ctx context.Context, tx pgx.Tx, tradeID uuid.UUID, offers []string) error {
	for _, userID := range offers {
		_, err := tx.Exec(ctx,
			`INSERT INTO trade_offers (trade_id, user_id) VALUES ($1, $2)`,
			tradeID, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertOffer, err)
		}
	}
	return nil
}
