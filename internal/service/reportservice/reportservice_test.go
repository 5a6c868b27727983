package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockCreditRepo, *MockPaymentRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	creditRepo := NewMockCreditRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	service := New(userRepo, creditRepo, paymentRepo)
	defer ctrl.Finish()
	return service, userRepo, creditRepo, paymentRepo
}

var (
	client     = &domain.Principal{ID: 1, Role: domain.RoleClient}
	supervisor = &domain.Principal{ID: 2, Role: domain.RoleSupervisor}
	admin      = &domain.Principal{ID: 3, Role: domain.RoleAdministrator}
)

func TestAdminSummary(t *testing.T) {
	t.Run("Full summary for the administrator", func(t *testing.T) {
		service, userRepo, creditRepo, paymentRepo := NewMock(t)

		userRepo.EXPECT().CountByRole(gomock.Any()).Return(map[domain.Role]int{
			domain.RoleClient:        10,
			domain.RoleSupervisor:    2,
			domain.RoleAdministrator: 1,
		}, nil)
		creditRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.CreditStatus]int{
			domain.CreditStatusPending:  3,
			domain.CreditStatusApproved: 4,
			domain.CreditStatusRejected: 1,
			domain.CreditStatusRepaid:   2,
		}, nil)
		creditRepo.EXPECT().SumAmountByStatuses(gomock.Any(),
			[]domain.CreditStatus{domain.CreditStatusApproved, domain.CreditStatusRepaid}).
			Return(900000.0, nil)
		paymentRepo.EXPECT().SumAll(gomock.Any()).Return(350000.0, nil)
		userRepo.EXPECT().FindRecent(gomock.Any(), 5).Return([]domain.User{
			{ID: 11, Name: "Aminata", Email: "aminata@example.com", Role: domain.RoleClient},
		}, nil)
		creditRepo.EXPECT().FindRecent(gomock.Any(), 5).Return([]domain.Credit{
			{ID: 7, UserID: 11, Amount: 200000, Status: domain.CreditStatusPending},
		}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 11).Return(&domain.User{ID: 11, Name: "Aminata"}, nil)

		summary, err := service.AdminSummary(context.Background(), admin)
		assert.NoError(t, err)
		assert.Equal(t, 13, summary.TotalUsers)
		assert.Equal(t, 10, summary.ClientsCount)
		assert.Equal(t, 10, summary.TotalCredits)
		assert.Equal(t, 3, summary.PendingCredits)
		assert.Equal(t, 900000.0, summary.TotalCreditAmount)
		assert.Equal(t, 350000.0, summary.TotalRepaidAmount)
		assert.Len(t, summary.RecentUsers, 1)
		assert.Len(t, summary.RecentCredits, 1)
		assert.Equal(t, "Aminata", summary.RecentCredits[0].ClientName)
	})

	t.Run("Supervisor is refused", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.AdminSummary(context.Background(), supervisor)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("Count failure propagates", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t)
		userRepo.EXPECT().CountByRole(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.AdminSummary(context.Background(), admin)
		assert.Error(t, err)
	})
}

func TestSupervisorSummary(t *testing.T) {
	t.Run("Credit portfolio for staff", func(t *testing.T) {
		service, userRepo, creditRepo, paymentRepo := NewMock(t)

		creditRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.CreditStatus]int{
			domain.CreditStatusPending:  3,
			domain.CreditStatusApproved: 4,
			domain.CreditStatusRejected: 1,
			domain.CreditStatusRepaid:   2,
		}, nil)
		creditRepo.EXPECT().SumAmountByStatuses(gomock.Any(),
			[]domain.CreditStatus{domain.CreditStatusApproved, domain.CreditStatusRepaid}).
			Return(900000.0, nil)
		paymentRepo.EXPECT().SumAll(gomock.Any()).Return(350000.0, nil)
		userRepo.EXPECT().CountByRole(gomock.Any()).Return(map[domain.Role]int{domain.RoleClient: 10}, nil)

		summary, err := service.SupervisorSummary(context.Background(), supervisor)
		assert.NoError(t, err)
		assert.Equal(t, 10, summary.Total)
		assert.Equal(t, 3, summary.Pending)
		assert.Equal(t, 2, summary.Repaid)
		assert.Equal(t, 900000.0, summary.TotalApprovedAmount)
		assert.Equal(t, 10, summary.TotalClients)
	})

	t.Run("Administrator may read it too", func(t *testing.T) {
		service, userRepo, creditRepo, paymentRepo := NewMock(t)

		creditRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.CreditStatus]int{}, nil)
		creditRepo.EXPECT().SumAmountByStatuses(gomock.Any(), gomock.Any()).Return(0.0, nil)
		paymentRepo.EXPECT().SumAll(gomock.Any()).Return(0.0, nil)
		userRepo.EXPECT().CountByRole(gomock.Any()).Return(map[domain.Role]int{}, nil)

		_, err := service.SupervisorSummary(context.Background(), admin)
		assert.NoError(t, err)
	})

	t.Run("Client is refused", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.SupervisorSummary(context.Background(), client)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})
}

func TestClientPaymentSummary(t *testing.T) {
	t.Run("Client with payments", func(t *testing.T) {
		service, _, _, paymentRepo := NewMock(t)

		last := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		paymentRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Payment{
			{ID: 2, Amount: 30000, Date: last},
			{ID: 1, Amount: 20000, Date: last.AddDate(0, -1, 0)},
		}, nil)

		summary, err := service.ClientPaymentSummary(context.Background(), client)
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalPayments)
		assert.Equal(t, 50000.0, summary.TotalAmount)
		assert.Equal(t, last, *summary.LastPaymentDate)
	})

	t.Run("Client with no payments", func(t *testing.T) {
		service, _, _, paymentRepo := NewMock(t)
		paymentRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)

		summary, err := service.ClientPaymentSummary(context.Background(), client)
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalPayments)
		assert.Nil(t, summary.LastPaymentDate)
	})

	t.Run("Staff is refused", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.ClientPaymentSummary(context.Background(), supervisor)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})
}
