package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/internal/item"
	"github.com/halcyard/TradeCenter_Go/internal/logger"
)

// ItemHandler bundles the item catalog endpoints
type ItemHandler struct {
	service item.Service
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

func parseItemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidItemID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// HandleGetItems returns one page of the catalog
func (h *ItemHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	pageStr := GetOptionalQueryParam(r, "page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		http.Error(w, ErrMsgInvalidPage, http.StatusBadRequest)
		return
	}

	result, err := h.service.GetPage(r.Context(), page, item.DefaultPageSize)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list items", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	it, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get item", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, it)
}

type CreateItemRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Rarity  string `json:"rarity" validate:"required,rarity"`
	Details string `json:"details"`
}

// CreateItemResponse carries the generated item id
type CreateItemResponse struct {
	ItemID  int    `json:"item_id"`
	Message string `json:"message"`
}

func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	id, err := h.service.CreateItem(r.Context(), req.Name, domain.Rarity(strings.ToUpper(req.Rarity)), req.Details)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to create item", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, CreateItemResponse{ItemID: id, Message: MsgItemCreatedSuccess})
}

type UpdateItemRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Rarity  string `json:"rarity" validate:"required,rarity"`
	Details string `json:"details"`
}

func (h *ItemHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	updated := &domain.Item{
		ID:      id,
		Name:    req.Name,
		Rarity:  domain.Rarity(strings.ToUpper(req.Rarity)),
		Details: req.Details,
	}
	if err := h.service.UpdateItem(r.Context(), updated); err != nil {
		logger.FromContext(r.Context()).Error("Failed to update item", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUpdatedSuccess})
}

func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		logger.FromContext(r.Context()).Error("Failed to delete item", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeletedSuccess})
}
