package creditrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var creditCols = []string{"id", "user_id", "supervisor_id", "amount", "status", "request_date", "approval_date", "due_date", "metadata"}

func metaJSON(t *testing.T, m domain.CreditMetadata) []byte {
	raw, err := json.Marshal(m)
	assert.NoError(t, err)
	return raw
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	credit := &domain.Credit{
		UserID:      1,
		Amount:      400000,
		Status:      domain.CreditStatusPending,
		RequestDate: time.Now(),
		Metadata: domain.CreditMetadata{
			Request: domain.RequestMetadata{Purpose: "Stock for the market stall", DurationMonths: 12},
		},
	}

	t.Run("Created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO credits (user_id, amount, status, request_date, due_date, metadata)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`)).
			WithArgs(credit.UserID, credit.Amount, credit.Status, credit.RequestDate, credit.DueDate, metaJSON(t, credit.Metadata)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))

		result, err := repo.Create(context.Background(), credit)
		assert.NoError(t, err)
		assert.Equal(t, 10, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO credits")).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), credit)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	requestDate := time.Now()
	meta := domain.CreditMetadata{Request: domain.RequestMetadata{Purpose: "Stock for the market stall", DurationMonths: 12}}

	t.Run("Credit found", func(t *testing.T) {
		rows := pgxmock.NewRows(creditCols).
			AddRow(5, 1, nil, 400000.0, domain.CreditStatusPending, requestDate, nil, nil, metaJSON(t, meta))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, supervisor_id, amount, status, request_date, approval_date, due_date, metadata FROM credits WHERE id = $1")).
			WithArgs(5).
			WillReturnRows(rows)

		credit, err := repo.FindByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, credit.ID)
		assert.Equal(t, "Stock for the market stall", credit.Metadata.Request.Purpose)
	})

	t.Run("Credit not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, supervisor_id, amount, status, request_date, approval_date, due_date, metadata FROM credits WHERE id = $1")).
			WithArgs(9).
			WillReturnError(pgx.ErrNoRows)

		credit, err := repo.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, credit)
	})
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	requestDate := time.Now()

	rows := pgxmock.NewRows(creditCols).
		AddRow(5, 1, nil, 400000.0, domain.CreditStatusPending, requestDate, nil, nil, []byte(nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, supervisor_id, amount, status, request_date, approval_date, due_date, metadata FROM credits WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(rows)

	credit, err := repo.LockByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, credit.ID)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	requestDate := time.Now()

	rows := pgxmock.NewRows(creditCols).
		AddRow(5, 1, nil, 400000.0, domain.CreditStatusPending, requestDate, nil, nil, []byte(nil)).
		AddRow(4, 1, nil, 100000.0, domain.CreditStatusRepaid, requestDate.AddDate(0, -6, 0), nil, nil, []byte(nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, supervisor_id, amount, status, request_date, approval_date, due_date, metadata FROM credits WHERE user_id = $1 ORDER BY request_date DESC")).
		WithArgs(1).
		WillReturnRows(rows)

	credits, err := repo.FindByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, credits, 2)
	assert.Equal(t, 5, credits[0].ID)
}

func TestRepository_FindOverdue(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	due := now.AddDate(0, 0, -10)

	rows := pgxmock.NewRows(creditCols).
		AddRow(5, 1, nil, 400000.0, domain.CreditStatusApproved, now.AddDate(0, -7, 0), nil, &due, []byte(nil))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'APPROVED' AND due_date IS NOT NULL AND due_date < $1")).
		WithArgs(now, 1000).
		WillReturnRows(rows)

	credits, err := repo.FindOverdue(context.Background(), now, 1000)
	assert.NoError(t, err)
	assert.Len(t, credits, 1)
	assert.Equal(t, domain.CreditStatusApproved, credits[0].Status)
}

func TestRepository_Approve(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Now()
	supervisorID := 2
	credit := &domain.Credit{
		ID:           5,
		Status:       domain.CreditStatusApproved,
		ApprovalDate: &now,
		DueDate:      &now,
		SupervisorID: &supervisorID,
		Metadata:     domain.CreditMetadata{Approval: &domain.ApprovalMetadata{InterestRate: 5.5, ApprovedBy: 2}},
	}

	t.Run("Approved", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE credits
			SET status = $1, approval_date = $2, due_date = $3, supervisor_id = $4, metadata = $5
			WHERE id = $6 AND status = 'PENDING'
		`)).
			WithArgs(domain.CreditStatusApproved, credit.ApprovalDate, credit.DueDate, credit.SupervisorID, metaJSON(t, credit.Metadata), 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Approve(context.Background(), credit)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Already processed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE credits")).
			WithArgs(domain.CreditStatusApproved, credit.ApprovalDate, credit.DueDate, credit.SupervisorID, metaJSON(t, credit.Metadata), 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Approve(context.Background(), credit)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock, _ := NewMock(t)

	supervisorID := 2
	credit := &domain.Credit{
		ID:           5,
		Status:       domain.CreditStatusRejected,
		SupervisorID: &supervisorID,
		Metadata:     domain.CreditMetadata{Rejection: &domain.RejectionMetadata{Reason: "Insufficient repayment capacity", RejectedBy: 2}},
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE credits
		SET status = $1, supervisor_id = $2, metadata = $3
		WHERE id = $4 AND status = 'PENDING'
	`)).
		WithArgs(domain.CreditStatusRejected, credit.SupervisorID, metaJSON(t, credit.Metadata), 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.Reject(context.Background(), credit)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_MarkRepaid(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Marked", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE credits
			SET status = $1
			WHERE id = $2 AND status = 'APPROVED'
		`)).
			WithArgs(domain.CreditStatusRepaid, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkRepaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Not approved anymore", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE credits")).
			WithArgs(domain.CreditStatusRepaid, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkRepaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	t.Run("Credit and payments removed together", func(t *testing.T) {
		mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE credit_id = $1")).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credits WHERE id = $1 AND status IN ('PENDING', 'REJECTED')")).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Status guard matched no row", func(t *testing.T) {
		mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE credit_id = $1")).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credits WHERE id = $1 AND status IN ('PENDING', 'REJECTED')")).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), 5)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Payment deletion fails", func(t *testing.T) {
		mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE credit_id = $1")).
			WithArgs(5).
			WillReturnError(errors.New("database error"))

		deleted, err := repo.Delete(context.Background(), 5)
		assert.Error(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_ExistsByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM credits WHERE user_id = $1)")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := pgxmock.NewRows([]string{"status", "count"}).
		AddRow(domain.CreditStatusPending, 3).
		AddRow(domain.CreditStatusApproved, 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM credits GROUP BY status")).
		WillReturnRows(rows)

	counts, err := repo.CountByStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, counts[domain.CreditStatusPending])
	assert.Equal(t, 4, counts[domain.CreditStatusApproved])
}

func TestRepository_SumAmountByStatuses(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM credits WHERE status = ANY($1)")).
		WithArgs([]string{"APPROVED", "REPAID"}).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(900000.0))

	total, err := repo.SumAmountByStatuses(context.Background(),
		[]domain.CreditStatus{domain.CreditStatusApproved, domain.CreditStatusRepaid})
	assert.NoError(t, err)
	assert.Equal(t, 900000.0, total)
}
