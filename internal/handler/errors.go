package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// ID parsing error messages
	ErrMsgInvalidTradeID   = "Invalid trade ID"
	ErrMsgInvalidMessageID = "Invalid message ID"
	ErrMsgInvalidItemID    = "Invalid item ID"

	// Trade operation error messages
	ErrMsgCreateTradeFailed  = "Failed to create trade"
	ErrMsgDeleteTradeFailed  = "Failed to delete trade"
	ErrMsgOfferFailed        = "Failed to record offer"
	ErrMsgWithdrawFailed     = "Failed to withdraw offer"
	ErrMsgChooseWinnerFailed = "Failed to choose winner"
	ErrMsgCompleteFailed     = "Failed to complete trade"
	ErrMsgFeedbackFailed     = "Failed to leave feedback"
	ErrMsgGetTradesFailed    = "Failed to retrieve trades"

	// Parameter validation error messages
	ErrMsgInvalidCount = "Invalid count parameter"
	ErrMsgInvalidPage  = "Invalid page parameter"
	ErrMsgInvalidScore = "Score must be between 1 and 5"
)

// Success messages for API responses
const (
	MsgTradeCreatedSuccess    = "Trade created successfully"
	MsgTradeDeletedSuccess    = "Trade deleted successfully"
	MsgOfferWithdrawnSuccess  = "Offer withdrawn successfully"
	MsgWinnerChosenSuccess    = "Winner chosen successfully"
	MsgExchangeDetailsSent    = "Exchange details sent"
	MsgMessageMarkedRead      = "Message marked as read"
	MsgItemCreatedSuccess     = "Item created successfully"
	MsgItemUpdatedSuccess     = "Item updated successfully"
	MsgItemDeletedSuccess     = "Item deleted successfully"
	MsgNothingToWithdraw      = "No offer to withdraw"
	MsgOnlyOwnerChoosesWinner = "Only the trade owner can choose a winner"
)
