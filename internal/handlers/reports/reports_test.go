package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	reportservice "github.com/dialloibra/microcredit/internal/service/reportservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(target string, userID int, role domain.Role) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := context.WithValue(r.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)
	return r.WithContext(ctx)
}

func TestAdminSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Dashboard numbers",
			prepareMock: func() {
				service.EXPECT().
					AdminSummary(gomock.Any(), &domain.Principal{ID: 3, Role: domain.RoleAdministrator}).
					Return(&reportservice.AdminSummary{
						TotalUsers:        13,
						ClientsCount:      10,
						SupervisorsCount:  2,
						AdminsCount:       1,
						TotalCredits:      10,
						PendingCredits:    3,
						ApprovedCredits:   4,
						RejectedCredits:   1,
						TotalCreditAmount: 900000,
						TotalRepaidAmount: 350000,
						RecentUsers:       []reportservice.RecentUser{{ID: 11, Name: "Aminata"}},
						RecentCredits:     []reportservice.RecentCredit{{ID: 7, ClientName: "Aminata"}},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not an administrator",
			prepareMock: func() {
				service.EXPECT().
					AdminSummary(gomock.Any(), gomock.Any()).
					Return(nil, authz.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					AdminSummary(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest("/api/admin/summary", 3, domain.RoleAdministrator)
			w := httptest.NewRecorder()

			handler.AdminSummary(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminSummaryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 13, body.TotalUsers)
				assert.Equal(t, 900000.0, body.TotalCreditAmount)
				assert.Len(t, body.RecentUsers, 1)
				assert.Len(t, body.RecentCredits, 1)
			}
		})
	}
}

func TestSupervisorSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Portfolio numbers",
			prepareMock: func() {
				service.EXPECT().
					SupervisorSummary(gomock.Any(), &domain.Principal{ID: 2, Role: domain.RoleSupervisor}).
					Return(&reportservice.SupervisorSummary{
						Total:               10,
						Pending:             3,
						Approved:            4,
						Rejected:            1,
						Repaid:              2,
						TotalApprovedAmount: 900000,
						TotalRepaidAmount:   350000,
						TotalClients:        10,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Client is refused",
			prepareMock: func() {
				service.EXPECT().
					SupervisorSummary(gomock.Any(), gomock.Any()).
					Return(nil, authz.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest("/api/supervisor/summary", 2, domain.RoleSupervisor)
			w := httptest.NewRecorder()

			handler.SupervisorSummary(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.SupervisorSummaryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 10, body.Total)
				assert.Equal(t, 2, body.Repaid)
			}
		})
	}
}

func TestPaymentSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Client repayment totals",
			prepareMock: func() {
				service.EXPECT().
					ClientPaymentSummary(gomock.Any(), &domain.Principal{ID: 1, Role: domain.RoleClient}).
					Return(&reportservice.ClientPaymentSummary{
						TotalPayments: 3,
						TotalAmount:   120000,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Staff is refused",
			prepareMock: func() {
				service.EXPECT().
					ClientPaymentSummary(gomock.Any(), gomock.Any()).
					Return(nil, authz.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest("/api/payments/summary", 1, domain.RoleClient)
			w := httptest.NewRecorder()

			handler.PaymentSummary(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PaymentSummaryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 3, body.TotalPayments)
				assert.Equal(t, 120000.0, body.TotalAmount)
			}
		})
	}
}
