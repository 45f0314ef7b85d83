package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
	"github.com/halcyard/TradeCenter_Go/mocks"
)

func TestHandleCreateTrade(t *testing.T) {
	have := []domain.TradeDetails{{ItemID: 1, Quantity: 1}}
	want := []domain.TradeDetails{{ItemID: 2, Quantity: 2}}

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockTradeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(ms *mocks.MockTradeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing user",
			reqBody:        CreateTradeRequest{Have: have, Want: want},
			setupMocks:     func(ms *mocks.MockTradeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:    "Trade limit reached",
			reqBody: CreateTradeRequest{UserID: "u1", Have: have, Want: want},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("CreateTrade", mock.Anything, have, want, false, "u1").Return(false, domain.ErrTradeLimitReached)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgTradeLimitError,
		},
		{
			name:    "Shared item",
			reqBody: CreateTradeRequest{UserID: "u1", Have: have, Want: have},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("CreateTrade", mock.Anything, have, have, false, "u1").Return(false, domain.ErrSameItems)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSameItemsError,
		},
		{
			name:    "Success",
			reqBody: CreateTradeRequest{UserID: "u1", Have: have, Want: want, Hardcore: true},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("CreateTrade", mock.Anything, have, want, true, "u1").Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgTradeCreatedSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTradeService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}
			handler := NewTradeHandler(mockService)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/trade/create", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleCreateTrade(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleOffer(t *testing.T) {
	tradeID := uuid.New()

	tests := []struct {
		name           string
		url            string
		reqBody        interface{}
		setupMocks     func(*mocks.MockTradeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing id",
			url:            "/trade/offer",
			reqBody:        TradeActorRequest{UserID: "u2"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing id query parameter",
		},
		{
			name:           "Invalid id",
			url:            "/trade/offer?id=not-a-uuid",
			reqBody:        TradeActorRequest{UserID: "u2"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidTradeID,
		},
		{
			name:    "Owner cannot offer",
			url:     "/trade/offer?id=" + tradeID.String(),
			reqBody: TradeActorRequest{UserID: "owner"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("Offer", mock.Anything, tradeID, "owner").Return(domain.OfferOwnerCannotOffer, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "owner_cannot_offer",
		},
		{
			name:    "Duplicate offer",
			url:     "/trade/offer?id=" + tradeID.String(),
			reqBody: TradeActorRequest{UserID: "u2"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("Offer", mock.Anything, tradeID, "u2").Return(domain.OfferAlreadyOffered, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "already_offered",
		},
		{
			name:    "Trade not found",
			url:     "/trade/offer?id=" + tradeID.String(),
			reqBody: TradeActorRequest{UserID: "u2"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("Offer", mock.Anything, tradeID, "u2").Return(domain.OfferResult(0), domain.ErrTradeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTradeNotFoundError,
		},
		{
			name:    "Success",
			url:     "/trade/offer?id=" + tradeID.String(),
			reqBody: TradeActorRequest{UserID: "u2"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("Offer", mock.Anything, tradeID, "u2").Return(domain.OfferSuccess, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTradeService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}
			handler := NewTradeHandler(mockService)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", tt.url, bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleOffer(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleChooseWinner(t *testing.T) {
	tradeID := uuid.New()

	tests := []struct {
		name           string
		reqBody        ChooseWinnerRequest
		setupMocks     func(*mocks.MockTradeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Not owner",
			reqBody: ChooseWinnerRequest{UserID: "u2", WinnerID: "u3"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("ChooseWinner", mock.Anything, tradeID, "u3", "u2").Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   MsgOnlyOwnerChoosesWinner,
		},
		{
			name:    "Trade already closed",
			reqBody: ChooseWinnerRequest{UserID: "owner", WinnerID: "u3"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("ChooseWinner", mock.Anything, tradeID, "u3", "owner").Return(false, domain.ErrTradeNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgTradeNotActiveError,
		},
		{
			name:    "Success",
			reqBody: ChooseWinnerRequest{UserID: "owner", WinnerID: "u3"},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("ChooseWinner", mock.Anything, tradeID, "u3", "owner").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgWinnerChosenSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTradeService(t)
			tt.setupMocks(mockService)
			handler := NewTradeHandler(mockService)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/trade/choose-winner?id="+tradeID.String(), bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleChooseWinner(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleLeaveFeedback(t *testing.T) {
	tradeID := uuid.New()

	tests := []struct {
		name           string
		reqBody        LeaveFeedbackRequest
		setupMocks     func(*mocks.MockTradeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Score out of range",
			reqBody:        LeaveFeedbackRequest{UserID: "u1", Score: 6},
			setupMocks:     func(ms *mocks.MockTradeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at most 5",
		},
		{
			name:    "Unauthorized",
			reqBody: LeaveFeedbackRequest{UserID: "u9", Score: 4},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("LeaveFeedback", mock.Anything, tradeID, 4, "u9").Return(domain.FeedbackUnauthorized, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "unauthorized",
		},
		{
			name:    "Already left",
			reqBody: LeaveFeedbackRequest{UserID: "u1", Score: 4},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("LeaveFeedback", mock.Anything, tradeID, 4, "u1").Return(domain.FeedbackAlreadyLeft, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "already_left",
		},
		{
			name:    "Success",
			reqBody: LeaveFeedbackRequest{UserID: "u1", Score: 5},
			setupMocks: func(ms *mocks.MockTradeService) {
				ms.On("LeaveFeedback", mock.Anything, tradeID, 5, "u1").Return(domain.FeedbackOk, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTradeService(t)
			tt.setupMocks(mockService)
			handler := NewTradeHandler(mockService)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/trade/feedback?id="+tradeID.String(), bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleLeaveFeedback(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetActiveTrades(t *testing.T) {
	mockService := mocks.NewMockTradeService(t)
	itemID := 7
	mockService.On("SearchActiveTrades", mock.Anything, domain.TradeFilter{
		HardcoreOnly: true,
		ItemID:       &itemID,
		Scope:        domain.SearchScopeHave,
	}).Return([]domain.Trade{{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001")}}, nil)

	handler := NewTradeHandler(mockService)

	req := httptest.NewRequest("GET", "/trade/active?hardcore=true&item_id=7&scope=have", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetActiveTrades(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "00000000-0000-0000-0000-000000000001")
}

func TestHandleGetLatestTrades(t *testing.T) {
	mockService := mocks.NewMockTradeService(t)
	mockService.On("GetLatestTrades", mock.Anything, 5).Return([]domain.Trade{}, nil)

	handler := NewTradeHandler(mockService)

	req := httptest.NewRequest("GET", "/trade/latest?count=5", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetLatestTrades(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bad count never reaches the service
	req = httptest.NewRequest("GET", "/trade/latest?count=abc", nil)
	rec = httptest.NewRecorder()

	handler.HandleGetLatestTrades(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidCount)
}
