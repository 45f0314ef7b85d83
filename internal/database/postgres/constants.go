package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Trade detail sides
const (
	SideHave = "have"
	SideWant = "want"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Trade Operations
const (
	ErrMsgFailedToGetTrade          = "failed to get trade"
	ErrMsgFailedToInsertTrade       = "failed to insert trade"
	ErrMsgFailedToUpdateTrade       = "failed to update trade"
	ErrMsgFailedToDeleteTrade       = "failed to delete trade"
	ErrMsgFailedToQueryTrades       = "failed to query trades"
	ErrMsgFailedToQueryTradeDetails = "failed to query trade details"
	ErrMsgFailedToInsertTradeDetail = "failed to insert trade detail"
	ErrMsgFailedToQueryOffers       = "failed to query offers"
	ErrMsgFailedToInsertOffer       = "failed to insert offer"
	ErrMsgFailedToDeleteOffers      = "failed to delete offers"
	ErrMsgFailedToCountTrades       = "failed to count trades"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItem    = "failed to get item"
	ErrMsgFailedToQueryItems = "failed to query items"
	ErrMsgFailedToCountItems = "failed to count items"
	ErrMsgFailedToInsertItem = "failed to insert item"
	ErrMsgFailedToUpdateItem = "failed to update item"
	ErrMsgFailedToDeleteItem = "failed to delete item"
)

// Error Messages - Feedback Operations
const (
	ErrMsgFailedToInsertFeedback = "failed to insert feedback"
	ErrMsgFailedToQueryFeedback  = "failed to query feedback"
	ErrMsgFailedToGetReputation  = "failed to get reputation"
)

// Error Messages - Inbox Operations
const (
	ErrMsgFailedToInsertMessage = "failed to insert message"
	ErrMsgFailedToQueryMessages = "failed to query messages"
	ErrMsgFailedToMarkRead      = "failed to mark message read"
)
