package fundpoolservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

type Repo interface {
	Get(ctx context.Context) (*domain.FundPool, error)
	Create(ctx context.Context) (*domain.FundPool, error)
	CreditBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error)
	DebitBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error)
	CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindTransactions(ctx context.Context, poolID int) ([]domain.Transaction, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds in the pool")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrPoolNotFound      = errors.New("fund pool not found")
)

// Ensure returns the singleton pool, creating it with a zero balance on first
// access.
func (s *Service) Ensure(ctx context.Context) (*domain.FundPool, error) {
	pool, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get fund pool", zap.Error(err))
		return nil, err
	}
	if pool != nil {
		return pool, nil
	}
	pool, err = s.repo.Create(ctx)
	if err != nil {
		zap.L().Error("failed to create fund pool", zap.Error(err))
		return nil, err
	}
	return pool, nil
}

// Deposit adds capital to the pool and appends a DEPOSIT transaction. Both
// writes happen inside one database transaction.
func (s *Service) Deposit(ctx context.Context, actor *domain.Principal, amount float64, description string) (*domain.FundPool, *domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CapPoolDeposit, 0); err != nil {
		return nil, nil, err
	}
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var updated *domain.FundPool
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pool, err := s.Ensure(ctx)
		if err != nil {
			return err
		}
		updated, err = s.repo.CreditBalance(ctx, pool.ID, amount)
		if err != nil {
			return err
		}
		transaction, err = s.repo.CreateTransaction(ctx, &domain.Transaction{
			FundPoolID:  pool.ID,
			UserID:      &actor.ID,
			Type:        domain.TransactionDeposit,
			Amount:      amount,
			Description: description,
			Status:      domain.TransactionStatusCompleted,
			Date:        time.Now(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("deposit failed", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("deposit recorded", zap.Float64("amount", amount), zap.Int("actor", actor.ID))
	return updated, transaction, nil
}

// Withdraw removes capital from the pool. The balance check and the debit are
// one conditional update, a failed withdrawal leaves the balance untouched.
func (s *Service) Withdraw(ctx context.Context, actor *domain.Principal, amount float64, description string) (*domain.FundPool, *domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CapPoolWithdraw, 0); err != nil {
		return nil, nil, err
	}
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var updated *domain.FundPool
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pool, err := s.repo.Get(ctx)
		if err != nil {
			return err
		}
		if pool == nil {
			return ErrPoolNotFound
		}
		updated, err = s.repo.DebitBalance(ctx, pool.ID, amount)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrInsufficientFunds
		}
		transaction, err = s.repo.CreateTransaction(ctx, &domain.Transaction{
			FundPoolID:  pool.ID,
			UserID:      &actor.ID,
			Type:        domain.TransactionWithdrawal,
			Amount:      amount,
			Description: description,
			Status:      domain.TransactionStatusCompleted,
			Date:        time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrPoolNotFound) {
			zap.L().Error("withdrawal failed", zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("withdrawal recorded", zap.Float64("amount", amount), zap.Int("actor", actor.ID))
	return updated, transaction, nil
}

// Overview returns the pool with its full transaction trail, newest first.
func (s *Service) Overview(ctx context.Context, actor *domain.Principal) (*domain.FundPool, []domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CapPoolRead, 0); err != nil {
		return nil, nil, err
	}
	pool, err := s.Ensure(ctx)
	if err != nil {
		return nil, nil, err
	}
	transactions, err := s.repo.FindTransactions(ctx, pool.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, nil, err
	}
	return pool, transactions, nil
}
