package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dialloibra/microcredit/internal/pg"
	"github.com/dialloibra/microcredit/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CreditService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.FundPoolService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.ReportService)
}
