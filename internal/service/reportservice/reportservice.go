package reportservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
)

type UserRepo interface {
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
	FindRecent(ctx context.Context, limit int) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type CreditRepo interface {
	CountByStatus(ctx context.Context) (map[domain.CreditStatus]int, error)
	SumAmountByStatuses(ctx context.Context, statuses []domain.CreditStatus) (float64, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Credit, error)
}

type PaymentRepo interface {
	SumAll(ctx context.Context) (float64, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
}

type Service struct {
	userRepo    UserRepo
	creditRepo  CreditRepo
	paymentRepo PaymentRepo
}

func New(userRepo UserRepo, creditRepo CreditRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
	}
}

const recentLimit = 5

type RecentUser struct {
	ID        int
	Name      string
	Email     string
	Role      domain.Role
	CreatedAt time.Time
}

type RecentCredit struct {
	ID          int
	Amount      float64
	Status      domain.CreditStatus
	ClientName  string
	RequestDate time.Time
}

type AdminSummary struct {
	TotalUsers        int
	ClientsCount      int
	SupervisorsCount  int
	AdminsCount       int
	TotalCredits      int
	PendingCredits    int
	ApprovedCredits   int
	RejectedCredits   int
	TotalCreditAmount float64
	TotalRepaidAmount float64
	RecentUsers       []RecentUser
	RecentCredits     []RecentCredit
}

func (s *Service) AdminSummary(ctx context.Context, actor *domain.Principal) (*AdminSummary, error) {
	if err := authz.Authorize(actor, authz.CapSummaryAdmin, 0); err != nil {
		return nil, err
	}

	roleCounts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.creditRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	approvedAmount, err := s.creditRepo.SumAmountByStatuses(ctx,
		[]domain.CreditStatus{domain.CreditStatusApproved, domain.CreditStatusRepaid})
	if err != nil {
		return nil, err
	}
	repaidAmount, err := s.paymentRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	credits, err := s.creditRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	summary := &AdminSummary{
		ClientsCount:      roleCounts[domain.RoleClient],
		SupervisorsCount:  roleCounts[domain.RoleSupervisor],
		AdminsCount:       roleCounts[domain.RoleAdministrator],
		PendingCredits:    statusCounts[domain.CreditStatusPending],
		ApprovedCredits:   statusCounts[domain.CreditStatusApproved],
		RejectedCredits:   statusCounts[domain.CreditStatusRejected],
		TotalCreditAmount: approvedAmount,
		TotalRepaidAmount: repaidAmount,
	}
	for _, c := range roleCounts {
		summary.TotalUsers += c
	}
	for _, c := range statusCounts {
		summary.TotalCredits += c
	}
	for _, u := range users {
		summary.RecentUsers = append(summary.RecentUsers, RecentUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	for _, c := range credits {
		name := ""
		if owner, err := s.userRepo.FindByID(ctx, c.UserID); err == nil && owner != nil {
			name = owner.Name
		}
		summary.RecentCredits = append(summary.RecentCredits, RecentCredit{
			ID:          c.ID,
			Amount:      c.Amount,
			Status:      c.Status,
			ClientName:  name,
			RequestDate: c.RequestDate,
		})
	}
	return summary, nil
}

type SupervisorSummary struct {
	Total               int
	Pending             int
	Approved            int
	Rejected            int
	Repaid              int
	TotalApprovedAmount float64
	TotalRepaidAmount   float64
	TotalClients        int
}

func (s *Service) SupervisorSummary(ctx context.Context, actor *domain.Principal) (*SupervisorSummary, error) {
	if err := authz.Authorize(actor, authz.CapSummaryStaff, 0); err != nil {
		return nil, err
	}

	statusCounts, err := s.creditRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	approvedAmount, err := s.creditRepo.SumAmountByStatuses(ctx,
		[]domain.CreditStatus{domain.CreditStatusApproved, domain.CreditStatusRepaid})
	if err != nil {
		return nil, err
	}
	repaidAmount, err := s.paymentRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	roleCounts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SupervisorSummary{
		Pending:             statusCounts[domain.CreditStatusPending],
		Approved:            statusCounts[domain.CreditStatusApproved],
		Rejected:            statusCounts[domain.CreditStatusRejected],
		Repaid:              statusCounts[domain.CreditStatusRepaid],
		TotalApprovedAmount: approvedAmount,
		TotalRepaidAmount:   repaidAmount,
		TotalClients:        roleCounts[domain.RoleClient],
	}
	for _, c := range statusCounts {
		summary.Total += c
	}
	return summary, nil
}

type ClientPaymentSummary struct {
	TotalPayments   int
	TotalAmount     float64
	LastPaymentDate *time.Time
}

func (s *Service) ClientPaymentSummary(ctx context.Context, actor *domain.Principal) (*ClientPaymentSummary, error) {
	if err := authz.Authorize(actor, authz.CapSummaryClient, 0); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByUserID(ctx, actor.ID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}

	summary := &ClientPaymentSummary{
		TotalPayments: len(payments),
		TotalAmount:   domain.TotalPaid(payments),
	}
	if len(payments) > 0 {
		// Payments come back newest first.
		summary.LastPaymentDate = &payments[0].Date
	}
	return summary, nil
}
