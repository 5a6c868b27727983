package fundpoolrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.FundPool, error) {
	query := `
		SELECT id, balance, created_at, updated_at
		FROM fund_pool
		ORDER BY id
		LIMIT 1
	`
	var pool domain.FundPool
	err := r.db.QueryRow(ctx, query).
		Scan(&pool.ID, &pool.Balance, &pool.CreatedAt, &pool.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get fund pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

// Create inserts the singleton pool row. The unique index on fund_pool makes
// a concurrent insert a no-op, so the re-read always returns the one row that
// won.
func (r *Repository) Create(ctx context.Context) (*domain.FundPool, error) {
	query := `
		INSERT INTO fund_pool (balance)
		VALUES (0)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("can't create fund pool", zap.Error(err))
		return nil, err
	}
	return r.Get(ctx)
}

// CreditBalance adds amount to the pool balance.
func (r *Repository) CreditBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error) {
	query := `
		UPDATE fund_pool
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
		RETURNING id, balance, created_at, updated_at
	`
	var pool domain.FundPool
	err := r.db.QueryRow(ctx, query, amount, id).
		Scan(&pool.ID, &pool.Balance, &pool.CreatedAt, &pool.UpdatedAt)
	if err != nil {
		zap.L().Error("can't credit fund pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

// DebitBalance subtracts amount from the pool balance. The balance check and
// the mutation are one conditional statement, so two concurrent debits can
// never both pass on a stale read. Returns nil when the balance was too low.
func (r *Repository) DebitBalance(ctx context.Context, id int, amount float64) (*domain.FundPool, error) {
	query := `
		UPDATE fund_pool
		SET balance = balance - $1, updated_at = now()
		WHERE id = $2 AND balance >= $1
		RETURNING id, balance, created_at, updated_at
	`
	var pool domain.FundPool
	err := r.db.QueryRow(ctx, query, amount, id).
		Scan(&pool.ID, &pool.Balance, &pool.CreatedAt, &pool.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't debit fund pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (fund_pool_id, user_id, credit_id, payment_id, type, amount, description, status, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, t.FundPoolID, t.UserID, t.CreditID, t.PaymentID,
		t.Type, t.Amount, t.Description, t.Status, t.Date).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindTransactions(ctx context.Context, poolID int) ([]domain.Transaction, error) {
	query := `
		SELECT id, fund_pool_id, user_id, credit_id, payment_id, type, amount, description, status, date
		FROM transactions
		WHERE fund_pool_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.FundPoolID, &t.UserID, &t.CreditID, &t.PaymentID,
			&t.Type, &t.Amount, &t.Description, &t.Status, &t.Date)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
