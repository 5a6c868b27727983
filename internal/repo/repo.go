package repo

import (
	"github.com/dialloibra/microcredit/internal/pg"
	creditrepo "github.com/dialloibra/microcredit/internal/repo/credit-repo"
	fundpoolrepo "github.com/dialloibra/microcredit/internal/repo/fundpool-repo"
	paymentrepo "github.com/dialloibra/microcredit/internal/repo/payment-repo"
	userrepo "github.com/dialloibra/microcredit/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	CreditRepo  *creditrepo.Repository
	PaymentRepo *paymentrepo.Repository
	PoolRepo    *fundpoolrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		CreditRepo:  creditrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn),
		PoolRepo:    fundpoolrepo.New(conn, txManager),
	}
}
