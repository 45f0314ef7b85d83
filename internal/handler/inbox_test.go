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

func TestHandleGetInbox(t *testing.T) {
	t.Run("Missing user_id", func(t *testing.T) {
		mockService := mocks.NewMockInboxService(t)
		handler := NewInboxHandler(mockService)

		req := httptest.NewRequest("GET", "/inbox", nil)
		rec := httptest.NewRecorder()

		handler.HandleGetInbox(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing user_id query parameter")
	})

	t.Run("Returns messages oldest first", func(t *testing.T) {
		mockService := mocks.NewMockInboxService(t)
		mockService.On("GetInbox", mock.Anything, "u1").Return([]domain.Message{
			{ID: uuid.New(), UserID: "u1", Type: domain.MessageOfferReceived},
			{ID: uuid.New(), UserID: "u1", Type: domain.MessageTradeWon},
		}, nil)
		handler := NewInboxHandler(mockService)

		req := httptest.NewRequest("GET", "/inbox?user_id=u1", nil)
		rec := httptest.NewRecorder()

		handler.HandleGetInbox(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(domain.MessageOfferReceived))
		assert.Contains(t, rec.Body.String(), string(domain.MessageTradeWon))
	})
}

func TestHandleMarkRead(t *testing.T) {
	messageID := uuid.New()

	tests := []struct {
		name           string
		url            string
		reqBody        MarkReadRequest
		setupMocks     func(*mocks.MockInboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid message id",
			url:            "/inbox/read?id=nope",
			reqBody:        MarkReadRequest{UserID: "u1"},
			setupMocks:     func(ms *mocks.MockInboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidMessageID,
		},
		{
			name:    "Not the recipient",
			url:     "/inbox/read?id=" + messageID.String(),
			reqBody: MarkReadRequest{UserID: "u2"},
			setupMocks: func(ms *mocks.MockInboxService) {
				ms.On("MarkRead", mock.Anything, messageID, "u2").Return(domain.ErrMessageNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgMessageNotFoundError,
		},
		{
			name:    "Success",
			url:     "/inbox/read?id=" + messageID.String(),
			reqBody: MarkReadRequest{UserID: "u1"},
			setupMocks: func(ms *mocks.MockInboxService) {
				ms.On("MarkRead", mock.Anything, messageID, "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgMessageMarkedRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockInboxService(t)
			tt.setupMocks(mockService)
			handler := NewInboxHandler(mockService)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", tt.url, bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleMarkRead(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
