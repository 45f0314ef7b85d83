package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/notify"
)

// InboxHandler bundles the inbox endpoints
type InboxHandler struct {
	service notify.Service
}

// NewInboxHandler creates a new InboxHandler
func NewInboxHandler(service notify.Service) *InboxHandler {
	return &InboxHandler{service: service}
}

func (h *InboxHandler) HandleGetInbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	messages, err := h.service.GetInbox(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get inbox", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

type MarkReadRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h *InboxHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	messageID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidMessageID, http.StatusBadRequest)
		return
	}

	var req MarkReadRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mark message read"); err != nil {
		return
	}

	if err := h.service.MarkRead(r.Context(), messageID, req.UserID); err != nil {
		logger.FromContext(r.Context()).Error("Failed to mark message read", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMessageMarkedRead})
}
