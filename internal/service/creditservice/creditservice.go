package creditservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, credit *domain.Credit) (*domain.Credit, error)
	FindByID(ctx context.Context, id int) (*domain.Credit, error)
	LockByID(ctx context.Context, id int) (*domain.Credit, error)
	FindAll(ctx context.Context) ([]domain.Credit, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Credit, error)
	Approve(ctx context.Context, credit *domain.Credit) (bool, error)
	Reject(ctx context.Context, credit *domain.Credit) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type PoolRepo interface {
	Get(ctx context.Context) (*domain.FundPool, error)
	DebitBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error)
	CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	repo      Repo
	poolRepo  PoolRepo
	txManager pg.TXManager
}

func New(repo Repo, poolRepo PoolRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		poolRepo:  poolRepo,
		txManager: txManager,
	}
}

const (
	minPurposeLen    = 10
	minReasonLen     = 10
	maxDurationMonth = 36
)

var (
	ErrCreditNotFound      = errors.New("credit not found")
	ErrNotPending          = errors.New("credit is not pending")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrPurposeTooShort     = errors.New("purpose must be at least 10 characters")
	ErrReasonTooShort      = errors.New("rejection reason must be at least 10 characters")
	ErrInvalidDuration     = errors.New("duration must be between 1 and 36 months")
	ErrInvalidInterestRate = errors.New("interest rate out of range")
	ErrInsufficientFunds   = errors.New("insufficient funds in the pool")
	ErrNotDeletable        = errors.New("approved or repaid credits cannot be deleted")
)

type RequestInput struct {
	OwnerID               int
	Amount                float64
	Purpose               string
	DurationMonths        int
	ExpectedRepaymentDate time.Time
	Activity              string
	Guarantee             string
}

// Request creates a credit in PENDING state. No fund movement happens here.
func (s *Service) Request(ctx context.Context, actor *domain.Principal, in RequestInput) (*domain.Credit, error) {
	if err := authz.Authorize(actor, authz.CapCreditRequest, in.OwnerID); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(strings.TrimSpace(in.Purpose)) < minPurposeLen {
		return nil, ErrPurposeTooShort
	}
	if in.DurationMonths < 1 || in.DurationMonths > maxDurationMonth {
		return nil, ErrInvalidDuration
	}

	due := in.ExpectedRepaymentDate
	credit := &domain.Credit{
		UserID:      in.OwnerID,
		Amount:      in.Amount,
		Status:      domain.CreditStatusPending,
		RequestDate: time.Now(),
		DueDate:     &due,
		Metadata: domain.CreditMetadata{
			Request: domain.RequestMetadata{
				Purpose:        in.Purpose,
				DurationMonths: in.DurationMonths,
				Activity:       in.Activity,
				Guarantee:      in.Guarantee,
			},
		},
	}

	created, err := s.repo.Create(ctx, credit)
	if err != nil {
		zap.L().Error("can't create credit", zap.Error(err))
		return nil, err
	}

	zap.L().Info("credit requested", zap.Int("credit_id", created.ID), zap.Int("owner", in.OwnerID))
	return created, nil
}

type ApproveInput struct {
	CreditID     int
	DueDate      time.Time
	InterestRate float64
	Notes        string
}

// Approve releases funds for a pending credit. The status transition, the pool
// debit and the ledger entry are one database transaction: if the pool cannot
// cover the amount the credit stays PENDING and the pool untouched.
func (s *Service) Approve(ctx context.Context, actor *domain.Principal, in ApproveInput) (*domain.Credit, *domain.FundPool, *domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CapCreditApprove, 0); err != nil {
		return nil, nil, nil, err
	}
	if in.InterestRate < 0 || in.InterestRate > 100 {
		return nil, nil, nil, ErrInvalidInterestRate
	}

	var credit *domain.Credit
	var pool *domain.FundPool
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		credit, err = s.repo.LockByID(ctx, in.CreditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return ErrCreditNotFound
		}
		if credit.Status != domain.CreditStatusPending {
			return ErrNotPending
		}

		now := time.Now()
		due := in.DueDate
		credit.Status = domain.CreditStatusApproved
		credit.ApprovalDate = &now
		credit.DueDate = &due
		credit.SupervisorID = &actor.ID
		credit.Metadata.Approval = &domain.ApprovalMetadata{
			InterestRate: in.InterestRate,
			Notes:        in.Notes,
			ApprovedBy:   actor.ID,
		}

		ok, err := s.repo.Approve(ctx, credit)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotPending
		}

		p, err := s.poolRepo.Get(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			// No pool yet means no capital at all.
			return ErrInsufficientFunds
		}
		pool, err = s.poolRepo.DebitBalance(ctx, p.ID, credit.Amount)
		if err != nil {
			return err
		}
		if pool == nil {
			return ErrInsufficientFunds
		}

		transaction, err = s.poolRepo.CreateTransaction(ctx, &domain.Transaction{
			FundPoolID:  p.ID,
			UserID:      &actor.ID,
			CreditID:    &credit.ID,
			Type:        domain.TransactionCreditApproval,
			Amount:      credit.Amount,
			Description: fmt.Sprintf("Funds released for credit #%d", credit.ID),
			Status:      domain.TransactionStatusCompleted,
			Date:        now,
		})
		return err
	})
	if err != nil {
		return nil, nil, nil, err
	}

	zap.L().Info("credit approved",
		zap.Int("credit_id", credit.ID),
		zap.Float64("amount", credit.Amount),
		zap.Int("supervisor", actor.ID))
	return credit, pool, transaction, nil
}

// Reject turns down a pending credit. No fund movement.
func (s *Service) Reject(ctx context.Context, actor *domain.Principal, creditID int, reason string) (*domain.Credit, error) {
	if err := authz.Authorize(actor, authz.CapCreditReject, 0); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(reason)) < minReasonLen {
		return nil, ErrReasonTooShort
	}

	credit, err := s.repo.FindByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	if credit.Status != domain.CreditStatusPending {
		return nil, ErrNotPending
	}

	credit.Status = domain.CreditStatusRejected
	credit.SupervisorID = &actor.ID
	credit.Metadata.Rejection = &domain.RejectionMetadata{
		Reason:     reason,
		RejectedBy: actor.ID,
		RejectedAt: time.Now(),
	}

	ok, err := s.repo.Reject(ctx, credit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPending
	}

	zap.L().Info("credit rejected", zap.Int("credit_id", credit.ID), zap.Int("supervisor", actor.ID))
	return credit, nil
}

// Delete removes a credit and its payments. Only PENDING and REJECTED credits
// qualify: an approved credit already debited the pool, deleting it would
// leave the ledger pointing at nothing.
func (s *Service) Delete(ctx context.Context, actor *domain.Principal, creditID int) error {
	if err := authz.Authorize(actor, authz.CapCreditDelete, 0); err != nil {
		return err
	}

	credit, err := s.repo.FindByID(ctx, creditID)
	if err != nil {
		return err
	}
	if credit == nil {
		return ErrCreditNotFound
	}
	if credit.Status == domain.CreditStatusApproved || credit.Status == domain.CreditStatusRepaid {
		return ErrNotDeletable
	}

	deleted, err := s.repo.Delete(ctx, creditID)
	if err != nil {
		return err
	}
	if !deleted {
		// the credit was approved or removed after the read
		return ErrNotDeletable
	}

	zap.L().Info("credit deleted", zap.Int("credit_id", creditID), zap.Int("actor", actor.ID))
	return nil
}

// List returns credits scoped by role: clients see their own, staff sees all.
// A non-zero ownerID narrows the result to one client and requires staff role
// or ownership.
func (s *Service) List(ctx context.Context, actor *domain.Principal, ownerID int) ([]domain.Credit, error) {
	if actor == nil {
		return nil, authz.ErrUnauthenticated
	}
	if ownerID != 0 {
		if err := authz.Authorize(actor, authz.CapCreditRead, ownerID); err != nil {
			return nil, err
		}
		return s.repo.FindByUserID(ctx, ownerID)
	}
	if actor.Role.IsStaff() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByUserID(ctx, actor.ID)
}

func (s *Service) Get(ctx context.Context, actor *domain.Principal, creditID int) (*domain.Credit, error) {
	credit, err := s.repo.FindByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	if err := authz.Authorize(actor, authz.CapCreditRead, credit.UserID); err != nil {
		return nil, err
	}
	return credit, nil
}
