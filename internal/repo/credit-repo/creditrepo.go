package creditrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

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

const creditColumns = "id, user_id, supervisor_id, amount, status, request_date, approval_date, due_date, metadata"

func scanCredit(row pgx.Row) (*domain.Credit, error) {
	var credit domain.Credit
	var meta []byte
	err := row.Scan(&credit.ID, &credit.UserID, &credit.SupervisorID, &credit.Amount,
		&credit.Status, &credit.RequestDate, &credit.ApprovalDate, &credit.DueDate, &meta)
	if err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &credit.Metadata); err != nil {
			return nil, err
		}
	}
	return &credit, nil
}

func (r *Repository) Create(ctx context.Context, credit *domain.Credit) (*domain.Credit, error) {
	meta, err := json.Marshal(credit.Metadata)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO credits (user_id, amount, status, request_date, due_date, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query, credit.UserID, credit.Amount, credit.Status,
		credit.RequestDate, credit.DueDate, meta).Scan(&credit.ID)
	if err != nil {
		zap.L().Error("can't save credit", zap.Error(err))
		return nil, err
	}
	return credit, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		WHERE id = $1
	`
	credit, err := scanCredit(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find credit", zap.Error(err))
		return nil, err
	}
	return credit, nil
}

// LockByID reads a credit with FOR UPDATE. Only meaningful inside a
// TXManager.Begin scope, where it serializes concurrent mutations of the same
// credit row.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		WHERE id = $1
		FOR UPDATE
	`
	credit, err := scanCredit(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock credit", zap.Error(err))
		return nil, err
	}
	return credit, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Credit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.Credit
	for rows.Next() {
		credit, err := scanCredit(rows)
		if err != nil {
			zap.L().Error("can't scan credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, *credit)
	}
	return credits, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		ORDER BY request_date DESC
	`
	return r.findMany(ctx, query)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		WHERE user_id = $1
		ORDER BY request_date DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		ORDER BY request_date DESC
		LIMIT $1
	`
	return r.findMany(ctx, query, limit)
}

// FindOverdue returns approved credits whose due date passed before the given
// moment.
func (r *Repository) FindOverdue(ctx context.Context, before time.Time, limit int) ([]domain.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credits
		WHERE status = 'APPROVED' AND due_date IS NOT NULL AND due_date < $1
		ORDER BY due_date ASC
		LIMIT $2
	`
	return r.findMany(ctx, query, before, limit)
}

// Approve moves a credit from PENDING to APPROVED in one conditional update.
// Returns false when the credit was not pending anymore, so a concurrent
// transition can never be overwritten.
func (r *Repository) Approve(ctx context.Context, credit *domain.Credit) (bool, error) {
	meta, err := json.Marshal(credit.Metadata)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE credits
		SET status = $1, approval_date = $2, due_date = $3, supervisor_id = $4, metadata = $5
		WHERE id = $6 AND status = 'PENDING'
	`
	tag, err := r.db.Exec(ctx, query, domain.CreditStatusApproved, credit.ApprovalDate,
		credit.DueDate, credit.SupervisorID, meta, credit.ID)
	if err != nil {
		zap.L().Error("can't approve credit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Reject moves a credit from PENDING to REJECTED, same conditional form as
// Approve.
func (r *Repository) Reject(ctx context.Context, credit *domain.Credit) (bool, error) {
	meta, err := json.Marshal(credit.Metadata)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE credits
		SET status = $1, supervisor_id = $2, metadata = $3
		WHERE id = $4 AND status = 'PENDING'
	`
	tag, err := r.db.Exec(ctx, query, domain.CreditStatusRejected, credit.SupervisorID, meta, credit.ID)
	if err != nil {
		zap.L().Error("can't reject credit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkRepaid finalizes an APPROVED credit once its payments cover the amount.
func (r *Repository) MarkRepaid(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE credits
		SET status = $1
		WHERE id = $2 AND status = 'APPROVED'
	`
	tag, err := r.db.Exec(ctx, query, domain.CreditStatusRepaid, id)
	if err != nil {
		zap.L().Error("can't mark credit repaid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var errNotDeletable = errors.New("credit is not deletable")

// Delete removes a PENDING or REJECTED credit together with its payments. The
// status guard lives in the DELETE itself, so a transition committed after the
// caller's read rolls the whole removal back. Returns false when the guard
// matched no row.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM payments WHERE credit_id = $1`, id); err != nil {
			zap.L().Error("can't delete credit payments", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, `DELETE FROM credits WHERE id = $1 AND status IN ('PENDING', 'REJECTED')`, id)
		if err != nil {
			zap.L().Error("can't delete credit", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNotDeletable
		}
		return nil
	})
	if errors.Is(err, errNotDeletable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) ExistsByUserID(ctx context.Context, userID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM credits WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user credits", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[domain.CreditStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM credits GROUP BY status`)
	if err != nil {
		zap.L().Error("can't count credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.CreditStatus]int)
	for rows.Next() {
		var status domain.CreditStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan credit count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *Repository) SumAmountByStatuses(ctx context.Context, statuses []domain.CreditStatus) (float64, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM credits WHERE status = ANY($1)`
	err := r.db.QueryRow(ctx, query, names).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum credit amounts", zap.Error(err))
		return 0, err
	}
	return total, nil
}
