package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Trade errors
	ErrMsgTradeNotFound     = "trade not found"
	ErrMsgTradeNotActive    = "trade is not active"
	ErrMsgTradeNotClosed    = "trade is not closed"
	ErrMsgTradeLimitReached = "active trade limit reached"
	ErrMsgNotTradeOwner     = "caller is not the trade owner"
	ErrMsgSameItems         = "have and want share an item"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Message errors
	ErrMsgMessageNotFound = "message not found"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidQuantity = "quantity must be at least 1"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Trade errors
	ErrTradeNotFound     = errors.New(ErrMsgTradeNotFound)
	ErrTradeNotActive    = errors.New(ErrMsgTradeNotActive)
	ErrTradeNotClosed    = errors.New(ErrMsgTradeNotClosed)
	ErrTradeLimitReached = errors.New(ErrMsgTradeLimitReached)
	ErrNotTradeOwner     = errors.New(ErrMsgNotTradeOwner)
	ErrSameItems         = errors.New(ErrMsgSameItems)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Message errors
	ErrMessageNotFound = errors.New(ErrMsgMessageNotFound)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
)
