package fundpoolservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, txManager)
	defer ctrl.Finish()
	return service, repo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

var (
	admin      = &domain.Principal{ID: 3, Role: domain.RoleAdministrator}
	supervisor = &domain.Principal{ID: 2, Role: domain.RoleSupervisor}
)

func TestEnsure(t *testing.T) {
	t.Run("Existing pool returned as is", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().Get(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 100}, nil)

		pool, err := service.Ensure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 100.0, pool.Balance)
	})

	t.Run("Pool created on first access", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 0}, nil)

		pool, err := service.Ensure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0.0, pool.Balance)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.Ensure(context.Background())
		assert.Error(t, err)
	})
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name          string
		actor         *domain.Principal
		amount        float64
		prepareMock   func(repo *MockRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:   "Administrator deposits capital",
			actor:  admin,
			amount: 500000,
			prepareMock: func(repo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().Get(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 100000}, nil)
				repo.EXPECT().CreditBalance(gomock.Any(), 1, 500000.0).Return(&domain.FundPool{ID: 1, Balance: 600000}, nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TransactionDeposit, tr.Type)
						assert.Equal(t, 3, *tr.UserID)
						tr.ID = 1
						return tr, nil
					})
			},
		},
		{
			name:   "Pool created before the first deposit",
			actor:  admin,
			amount: 500000,
			prepareMock: func(repo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any()).Return(&domain.FundPool{ID: 1}, nil)
				repo.EXPECT().CreditBalance(gomock.Any(), 1, 500000.0).Return(&domain.FundPool{ID: 1, Balance: 500000}, nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 1}, nil)
			},
		},
		{
			name:          "Supervisor cannot deposit",
			actor:         supervisor,
			amount:        500000,
			prepareMock:   func(*MockRepo, *pg.MockTXManager) {},
			expectedError: authz.ErrForbidden,
		},
		{
			name:          "Non-positive amount",
			actor:         admin,
			amount:        0,
			prepareMock:   func(*MockRepo, *pg.MockTXManager) {},
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, txManager := NewMock(t)
			tt.prepareMock(repo, txManager)

			pool, transaction, err := service.Deposit(context.Background(), tt.actor, tt.amount, "capital injection")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, pool)
				assert.NotNil(t, transaction)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name: "Administrator withdraws within balance",
			prepareMock: func(repo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().Get(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 600000}, nil)
				repo.EXPECT().DebitBalance(gomock.Any(), 1, 200000.0).Return(&domain.FundPool{ID: 1, Balance: 400000}, nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TransactionWithdrawal, tr.Type)
						tr.ID = 2
						return tr, nil
					})
			},
		},
		{
			name: "Balance too low",
			prepareMock: func(repo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().Get(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 100}, nil)
				repo.EXPECT().DebitBalance(gomock.Any(), 1, 200000.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "No pool yet",
			prepareMock: func(repo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrPoolNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, txManager := NewMock(t)
			tt.prepareMock(repo, txManager)

			pool, _, err := service.Withdraw(context.Background(), admin, 200000, "office rent")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 400000.0, pool.Balance)
			}
		})
	}
}

func TestWithdraw_Forbidden(t *testing.T) {
	service, _, _ := NewMock(t)

	_, _, err := service.Withdraw(context.Background(), supervisor, 100, "")
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestOverview(t *testing.T) {
	t.Run("Pool with its transactions", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().Get(gomock.Any()).Return(&domain.FundPool{ID: 1, Balance: 600000}, nil)
		repo.EXPECT().FindTransactions(gomock.Any(), 1).Return([]domain.Transaction{{ID: 2}, {ID: 1}}, nil)

		pool, transactions, err := service.Overview(context.Background(), admin)
		assert.NoError(t, err)
		assert.Equal(t, 600000.0, pool.Balance)
		assert.Len(t, transactions, 2)
	})

	t.Run("Only administrators may read the pool", func(t *testing.T) {
		service, _, _ := NewMock(t)

		_, _, err := service.Overview(context.Background(), supervisor)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})
}
