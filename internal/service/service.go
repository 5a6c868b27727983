package service

import (
	"github.com/dialloibra/microcredit/internal/handlers/auth"
	"github.com/dialloibra/microcredit/internal/handlers/credits"
	"github.com/dialloibra/microcredit/internal/handlers/fundpool"
	"github.com/dialloibra/microcredit/internal/handlers/payments"
	"github.com/dialloibra/microcredit/internal/handlers/reports"
	"github.com/dialloibra/microcredit/internal/handlers/users"

	pkgauth "github.com/dialloibra/microcredit/pkg/auth"

	"github.com/dialloibra/microcredit/internal/pg"
	"github.com/dialloibra/microcredit/internal/repo"
	authservice "github.com/dialloibra/microcredit/internal/service/authservice"
	creditservice "github.com/dialloibra/microcredit/internal/service/creditservice"
	fundpoolservice "github.com/dialloibra/microcredit/internal/service/fundpoolservice"
	paymentservice "github.com/dialloibra/microcredit/internal/service/paymentservice"
	reportservice "github.com/dialloibra/microcredit/internal/service/reportservice"
	userservice "github.com/dialloibra/microcredit/internal/service/userservice"
)

type Services struct {
	AuthService     auth.Service
	CreditService   credits.Service
	PaymentService  payments.Service
	FundPoolService fundpool.Service
	UserService     users.Service
	ReportService   reports.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	fundPoolService := fundpoolservice.New(repo.PoolRepo, txManager)
	creditService := creditservice.New(repo.CreditRepo, repo.PoolRepo, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.CreditRepo, repo.PoolRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo, repo.CreditRepo, &pkgauth.HashService{})
	reportService := reportservice.New(repo.UserRepo, repo.CreditRepo, repo.PaymentRepo)

	return &Services{
		AuthService:     authService,
		CreditService:   creditService,
		PaymentService:  paymentService,
		FundPoolService: fundPoolService,
		UserService:     userService,
		ReportService:   reportService,
	}
}
