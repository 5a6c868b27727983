package fundpool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	fundpoolservice "github.com/dialloibra/microcredit/internal/service/fundpoolservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
)

func NewMock(t *testing.T) (*FundPoolHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func adminRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(r.Context(), pkgauth.UserIDKey, 3)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, domain.RoleAdministrator)
	return r.WithContext(ctx)
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"amount":1000000,"description":"Quarterly capital injection"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), &domain.Principal{ID: 3, Role: domain.RoleAdministrator}, 1000000.0, "Quarterly capital injection").
					Return(
						&domain.FundPool{ID: 1, Balance: 1600000},
						&domain.Transaction{ID: 1, Type: domain.TransactionDeposit, Amount: 1000000},
						nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          "{invalid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Missing amount",
			body:         `{"description":"no amount"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not an administrator",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, authz.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := adminRequest(http.MethodPost, "/api/admin/fund-pool/deposit", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var response dto.FundPoolMoveResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&response)
				assert.Equal(t, "Deposit recorded", response.Message)
				assert.Equal(t, 1600000.0, response.FundPool.Balance)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"amount":200000,"description":"Office rent"}`

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), gomock.Any(), 200000.0, "Office rent").
					Return(
						&domain.FundPool{ID: 1, Balance: 400000},
						&domain.Transaction{ID: 2, Type: domain.TransactionWithdrawal, Amount: 200000},
						nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, fundpoolservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "insufficient funds",
		},
		{
			name: "No pool yet",
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, fundpoolservice.ErrPoolNotFound)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "fund pool not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := adminRequest(http.MethodPost, "/api/admin/fund-pool/withdraw", bytes.NewBufferString(validBody))
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var response dto.FundPoolMoveResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&response)
				assert.Equal(t, "Withdrawal recorded", response.Message)
			}
		})
	}
}

func TestOverviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Balance with its ledger",
			prepareMock: func() {
				service.EXPECT().
					Overview(gomock.Any(), gomock.Any()).
					Return(
						&domain.FundPool{ID: 1, Balance: 600000},
						[]domain.Transaction{{ID: 2}, {ID: 1}},
						nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not an administrator",
			prepareMock: func() {
				service.EXPECT().
					Overview(gomock.Any(), gomock.Any()).
					Return(nil, nil, authz.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := adminRequest(http.MethodGet, "/api/admin/fund-pool", nil)
			w := httptest.NewRecorder()

			handler.Overview(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var response dto.FundPoolOverviewResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&response)
				assert.Equal(t, 600000.0, response.FundPool.Balance)
				assert.Len(t, response.Transactions, 2)
			}
		})
	}
}
