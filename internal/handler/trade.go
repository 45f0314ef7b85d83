package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/trade"
)

// TradeHandler bundles the trade lifecycle endpoints
type TradeHandler struct {
	service trade.Service
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(service trade.Service) *TradeHandler {
	return &TradeHandler{service: service}
}

// parseTradeID extracts and parses the id query parameter. On failure the
// response has already been written.
func parseTradeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidTradeID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

type CreateTradeRequest struct {
	UserID   string                `json:"user_id" validate:"required"`
	Have     []domain.TradeDetails `json:"have" validate:"required,min=1,dive"`
	Want     []domain.TradeDetails `json:"want" validate:"required,min=1,dive"`
	Hardcore bool                  `json:"hardcore"`
}

func (h *TradeHandler) HandleCreateTrade(w http.ResponseWriter, r *http.Request) {
	var req CreateTradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create trade"); err != nil {
		return
	}

	ok, err := h.service.CreateTrade(r.Context(), req.Have, req.Want, req.Hardcore, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to create trade", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if !ok {
		respondError(w, http.StatusConflict, ErrMsgTradeLimitError)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgTradeCreatedSuccess})
}

type TradeActorRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h *TradeHandler) HandleDeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req TradeActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Delete trade"); err != nil {
		return
	}

	if _, err := h.service.DeleteTrade(r.Context(), tradeID, req.UserID); err != nil {
		logger.FromContext(r.Context()).Error("Failed to delete trade", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTradeDeletedSuccess})
}

// OfferResponse reports the typed outcome of an offer attempt
type OfferResponse struct {
	Result string `json:"result"`
}

func (h *TradeHandler) HandleOffer(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req TradeActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Offer"); err != nil {
		return
	}

	result, err := h.service.Offer(r.Context(), tradeID, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to record offer", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	status := http.StatusOK
	if result != domain.OfferSuccess {
		status = http.StatusConflict
	}
	respondJSON(w, status, OfferResponse{Result: result.String()})
}

func (h *TradeHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req TradeActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Withdraw offer"); err != nil {
		return
	}

	withdrawn, err := h.service.Withdraw(r.Context(), tradeID, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to withdraw offer", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if !withdrawn {
		respondJSON(w, http.StatusConflict, SuccessResponse{Message: MsgNothingToWithdraw})
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOfferWithdrawnSuccess})
}

type ChooseWinnerRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	WinnerID string `json:"winner_id" validate:"required"`
}

func (h *TradeHandler) HandleChooseWinner(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req ChooseWinnerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Choose winner"); err != nil {
		return
	}

	chosen, err := h.service.ChooseWinner(r.Context(), tradeID, req.WinnerID, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to choose winner", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if !chosen {
		respondError(w, http.StatusForbidden, MsgOnlyOwnerChoosesWinner)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWinnerChosenSuccess})
}

func (h *TradeHandler) HandleMarkAsCompleted(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req TradeActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete trade"); err != nil {
		return
	}

	updated, err := h.service.MarkAsCompleted(r.Context(), tradeID, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to complete trade", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

type LeaveFeedbackRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Score  int    `json:"score" validate:"required,min=1,max=5"`
}

// FeedbackResponse reports the typed outcome of a feedback attempt
type FeedbackResponse struct {
	Result string `json:"result"`
}

func (h *TradeHandler) HandleLeaveFeedback(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req LeaveFeedbackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Leave feedback"); err != nil {
		return
	}

	result, err := h.service.LeaveFeedback(r.Context(), tradeID, req.Score, req.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to leave feedback", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	status := http.StatusOK
	switch result {
	case domain.FeedbackUnauthorized:
		status = http.StatusForbidden
	case domain.FeedbackAlreadyLeft:
		status = http.StatusConflict
	}
	respondJSON(w, status, FeedbackResponse{Result: result.String()})
}

type ExchangeDetailsRequest struct {
	UserID  string          `json:"user_id" validate:"required"`
	Details json.RawMessage `json:"details" validate:"required"`
}

func (h *TradeHandler) HandleSendExchangeDetails(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	var req ExchangeDetailsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Send exchange details"); err != nil {
		return
	}

	if err := h.service.SendExchangeDetails(r.Context(), tradeID, req.UserID, req.Details); err != nil {
		logger.FromContext(r.Context()).Error("Failed to send exchange details", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgExchangeDetailsSent})
}

func (h *TradeHandler) HandleGetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := parseTradeID(w, r)
	if !ok {
		return
	}

	t, err := h.service.GetTradeByID(r.Context(), tradeID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get trade", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// HandleGetActiveTrades lists Active trades, optionally filtered by hardcore
// flag and item id/scope
func (h *TradeHandler) HandleGetActiveTrades(w http.ResponseWriter, r *http.Request) {
	filter := domain.TradeFilter{
		HardcoreOnly: r.URL.Query().Get("hardcore") == "true",
		Scope:        domain.SearchScope(strings.ToLower(GetOptionalQueryParam(r, "scope", ""))),
	}

	if itemStr := r.URL.Query().Get("item_id"); itemStr != "" {
		itemID, err := strconv.Atoi(itemStr)
		if err != nil {
			http.Error(w, ErrMsgInvalidItemID, http.StatusBadRequest)
			return
		}
		filter.ItemID = &itemID
	}

	trades, err := h.service.SearchActiveTrades(r.Context(), filter)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to search trades", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, trades)
}

func (h *TradeHandler) HandleGetLatestTrades(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, h.service.GetLatestTrades)
}

func (h *TradeHandler) HandleGetHottestTrades(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, h.service.GetHottestTrades)
}

func (h *TradeHandler) handleListing(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, count int) ([]domain.Trade, error)) {
	count := 0
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 0 {
			http.Error(w, ErrMsgInvalidCount, http.StatusBadRequest)
			return
		}
	}

	trades, err := list(r.Context(), count)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list trades", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, trades)
}

func (h *TradeHandler) HandleGetTradesByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	trades, err := h.service.GetTradesByUser(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get user trades", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, trades)
}

func (h *TradeHandler) HandleGetOffersByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	trades, err := h.service.GetOffersByUser(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get user offers", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, trades)
}

// CanCreateResponse reports whether a user may open another trade
type CanCreateResponse struct {
	CanCreate bool `json:"can_create"`
}

func (h *TradeHandler) HandleCanCreateTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	canCreate, err := h.service.CanCreateTrade(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to check trade limit", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, CanCreateResponse{CanCreate: canCreate})
}
