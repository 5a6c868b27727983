package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
	"github.com/dialloibra/microcredit/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByCreditID(ctx context.Context, creditID int) ([]domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
	SumByCreditID(ctx context.Context, creditID int) (float64, error)
}

type CreditRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Credit, error)
	LockByID(ctx context.Context, id int) (*domain.Credit, error)
	MarkRepaid(ctx context.Context, id int) (bool, error)
}

type PoolRepo interface {
	Get(ctx context.Context) (*domain.FundPool, error)
	Create(ctx context.Context) (*domain.FundPool, error)
	CreditBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error)
	CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	repo       Repo
	creditRepo CreditRepo
	poolRepo   PoolRepo
	txManager  pg.TXManager
}

func New(repo Repo, creditRepo CreditRepo, poolRepo PoolRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:       repo,
		creditRepo: creditRepo,
		poolRepo:   poolRepo,
		txManager:  txManager,
	}
}

var (
	ErrCreditNotFound   = errors.New("credit not found")
	ErrNotApproved      = errors.New("credit is not approved")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrExceedsRemaining = errors.New("payment exceeds the remaining amount")
)

type RecordInput struct {
	CreditID int
	Amount   float64
	Method   string
	Notes    string
}

type RecordResult struct {
	Payment     *domain.Payment
	Credit      *domain.Credit
	FullyPaid   bool
	Transaction *domain.Transaction
}

// Record registers a repayment against an approved credit. The remaining
// amount cap applies to every caller role. Payment row, pool credit, ledger
// entry and the REPAID transition all commit or roll back together; the credit
// row is locked for the duration, so two concurrent payments cannot both pass
// the cap on a stale sum.
func (s *Service) Record(ctx context.Context, actor *domain.Principal, in RecordInput) (*RecordResult, error) {
	credit, err := s.creditRepo.FindByID(ctx, in.CreditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	if err := authz.Authorize(actor, authz.CapPaymentRecord, credit.UserID); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result := &RecordResult{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		credit, err := s.creditRepo.LockByID(ctx, in.CreditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return ErrCreditNotFound
		}
		if credit.Status != domain.CreditStatusApproved {
			return ErrNotApproved
		}

		totalBefore, err := s.repo.SumByCreditID(ctx, in.CreditID)
		if err != nil {
			return err
		}
		if in.Amount > credit.Amount-totalBefore {
			return ErrExceedsRemaining
		}

		now := time.Now()
		payment, err := s.repo.Create(ctx, &domain.Payment{
			CreditID:      in.CreditID,
			Amount:        in.Amount,
			ReceiptNumber: validate.NewReceiptNumber(),
			Date:          now,
			Metadata: domain.PaymentMetadata{
				Method:     in.Method,
				Notes:      in.Notes,
				RecordedBy: actor.ID,
			},
		})
		if err != nil {
			return err
		}

		pool, err := s.poolRepo.Get(ctx)
		if err != nil {
			return err
		}
		if pool == nil {
			pool, err = s.poolRepo.Create(ctx)
			if err != nil {
				return err
			}
		}
		if _, err := s.poolRepo.CreditBalance(ctx, pool.ID, in.Amount); err != nil {
			return err
		}
		transaction, err := s.poolRepo.CreateTransaction(ctx, &domain.Transaction{
			FundPoolID:  pool.ID,
			UserID:      &credit.UserID,
			CreditID:    &credit.ID,
			PaymentID:   &payment.ID,
			Type:        domain.TransactionPayment,
			Amount:      in.Amount,
			Description: fmt.Sprintf("Repayment for credit #%d", credit.ID),
			Status:      domain.TransactionStatusCompleted,
			Date:        now,
		})
		if err != nil {
			return err
		}

		fullyPaid := totalBefore+in.Amount >= credit.Amount
		if fullyPaid {
			if _, err := s.creditRepo.MarkRepaid(ctx, credit.ID); err != nil {
				return err
			}
			credit.Status = domain.CreditStatusRepaid
		}

		result.Payment = payment
		result.Credit = credit
		result.FullyPaid = fullyPaid
		result.Transaction = transaction
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrExceedsRemaining) && !errors.Is(err, ErrNotApproved) && !errors.Is(err, ErrCreditNotFound) {
			zap.L().Error("payment failed", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.Int("credit_id", in.CreditID),
		zap.Float64("amount", in.Amount),
		zap.Bool("fully_paid", result.FullyPaid))
	return result, nil
}

// ListByCredit returns the payments of one credit, visible to staff and the
// owning client.
func (s *Service) ListByCredit(ctx context.Context, actor *domain.Principal, creditID int) ([]domain.Payment, error) {
	credit, err := s.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	if err := authz.Authorize(actor, authz.CapPaymentRead, credit.UserID); err != nil {
		return nil, err
	}
	return s.repo.FindByCreditID(ctx, creditID)
}

// List returns the payment history scoped by role.
func (s *Service) List(ctx context.Context, actor *domain.Principal) ([]domain.Payment, error) {
	if actor == nil {
		return nil, authz.ErrUnauthenticated
	}
	if actor.Role.IsStaff() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByUserID(ctx, actor.ID)
}
