package handler

import (
	"net/http"

	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/profile"
)

// ProfileHandler bundles the user profile endpoints
type ProfileHandler struct {
	service profile.Service
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) HandleGetReputation(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	rep, err := h.service.GetReputation(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get reputation", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

func (h *ProfileHandler) HandleGetFeedbackHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	history, err := h.service.GetFeedbackHistory(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get feedback history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

func (h *ProfileHandler) HandleGetTradeHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	history, err := h.service.GetTradeHistory(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get trade history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
