package paymentrepo

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	meta, err := json.Marshal(payment.Metadata)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO payments (credit_id, amount, receipt_number, date, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query, payment.CreditID, payment.Amount,
		payment.ReceiptNumber, payment.Date, meta).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		var meta []byte
		err := rows.Scan(&payment.ID, &payment.CreditID, &payment.Amount,
			&payment.ReceiptNumber, &payment.Date, &meta)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &payment.Metadata); err != nil {
				return nil, err
			}
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (r *Repository) FindByCreditID(ctx context.Context, creditID int) ([]domain.Payment, error) {
	query := `
		SELECT id, credit_id, amount, receipt_number, date, metadata
		FROM payments
		WHERE credit_id = $1
		ORDER BY date DESC
	`
	return r.findMany(ctx, query, creditID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT id, credit_id, amount, receipt_number, date, metadata
		FROM payments
		ORDER BY date DESC
	`
	return r.findMany(ctx, query)
}

// FindByUserID returns payments across every credit owned by the user.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
		SELECT p.id, p.credit_id, p.amount, p.receipt_number, p.date, p.metadata
		FROM payments p
		JOIN credits c ON c.id = p.credit_id
		WHERE c.user_id = $1
		ORDER BY p.date DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *Repository) SumByCreditID(ctx context.Context, creditID int) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE credit_id = $1`
	err := r.db.QueryRow(ctx, query, creditID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumAll(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}
