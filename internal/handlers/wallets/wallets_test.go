package wallets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/internal/service/walletservice"
	"github.com/viwallet/viwallet/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, body)
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	wallet := &domain.Wallet{
		ID:           7,
		Name:         "Holiday fund",
		Balance:      decimal.Zero,
		CurrencyCode: "EUR",
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Wallet created",
			body: `{"name":"Holiday fund","currencyId":1}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "Holiday fund", 1).Return(wallet, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing currency",
			body:         `{"name":"Holiday fund"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate currency wallet",
			body: `{"name":"Holiday fund","currencyId":1}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "Holiday fund", 1).
					Return(nil, walletservice.ErrWalletExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown currency",
			body: `{"name":"Holiday fund","currencyId":99}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "Holiday fund", 99).
					Return(nil, walletservice.ErrCurrencyNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"name":"Holiday fund","currencyId":1}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "Holiday fund", 1).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := authedRequest(http.MethodPost, "/api/wallets", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.WalletID)
				assert.Equal(t, "EUR", body.CurrencyCode)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Two wallets",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return([]domain.Wallet{
					{ID: 1, Name: "EUR Wallet", CurrencyCode: "EUR"},
					{ID: 2, Name: "Holiday fund", CurrencyCode: "USD"},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "Empty list",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/wallets", nil)
			w := httptest.NewRecorder()
			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body dto.WalletsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Wallets, tt.expectedCount)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		walletID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Wallet found",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1, 7).
					Return(&domain.Wallet{ID: 7, Name: "Holiday fund", CurrencyCode: "EUR"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			walletID:     "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Wallet not found",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1, 7).Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := authedRequest(http.MethodGet, "/api/wallets/"+tt.walletID, nil)
			r = withURLParam(r, "id", tt.walletID)
			w := httptest.NewRecorder()
			handler.Get(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRenameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		walletID     string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Wallet renamed",
			walletID: "7",
			body:     `{"name":"Rainy day fund"}`,
			prepareMock: func() {
				service.EXPECT().Rename(gomock.Any(), 1, 7, "Rainy day fund").
					Return(&domain.Wallet{ID: 7, Name: "Rainy day fund", CurrencyCode: "EUR"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			walletID:     "abc",
			body:         `{"name":"Rainy day fund"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Empty name",
			walletID:     "7",
			body:         `{"name":""}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Name unchanged",
			walletID: "7",
			body:     `{"name":"Rainy day fund"}`,
			prepareMock: func() {
				service.EXPECT().Rename(gomock.Any(), 1, 7, "Rainy day fund").
					Return(nil, walletservice.ErrNameUnchanged)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Wallet not found",
			walletID: "7",
			body:     `{"name":"Rainy day fund"}`,
			prepareMock: func() {
				service.EXPECT().Rename(gomock.Any(), 1, 7, "Rainy day fund").
					Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := authedRequest(http.MethodPut, "/api/wallets/"+tt.walletID, bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", tt.walletID)
			w := httptest.NewRecorder()
			handler.Rename(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		walletID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Wallet deleted",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid id",
			walletID:     "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Wallet not found",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7).Return(walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Wallet not empty",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7).Return(walletservice.ErrWalletNotEmpty)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Wallet has cards",
			walletID: "7",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7).Return(walletservice.ErrWalletHasCards)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := authedRequest(http.MethodDelete, "/api/wallets/"+tt.walletID, nil)
			r = withURLParam(r, "id", tt.walletID)
			w := httptest.NewRecorder()
			handler.Delete(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
