package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dialloibra/microcredit/docs"
	authhandlers "github.com/dialloibra/microcredit/internal/handlers/auth"
	credithandlers "github.com/dialloibra/microcredit/internal/handlers/credits"
	fundpoolhandlers "github.com/dialloibra/microcredit/internal/handlers/fundpool"
	paymenthandlers "github.com/dialloibra/microcredit/internal/handlers/payments"
	reporthandlers "github.com/dialloibra/microcredit/internal/handlers/reports"
	userhandlers "github.com/dialloibra/microcredit/internal/handlers/users"
	"github.com/dialloibra/microcredit/internal/service"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListByCredit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type FundPoolHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	SupervisorSummary(w http.ResponseWriter, r *http.Request)
	PaymentSummary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CreditHandler   CreditHandler
	PaymentHandler  PaymentHandler
	FundPoolHandler FundPoolHandler
	UserHandler     UserHandler
	ReportHandler   ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CreditHandler:   credithandlers.New(s.CreditService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		FundPoolHandler: fundpoolhandlers.New(s.FundPoolService),
		UserHandler:     userhandlers.New(s.UserService),
		ReportHandler:   reporthandlers.New(s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware)
			r.Route("/credits", func(r chi.Router) {
				r.Post("/", h.CreditHandler.Create)
				r.Get("/", h.CreditHandler.List)
				r.Get("/{id}", h.CreditHandler.Get)
				r.Delete("/{id}", h.CreditHandler.Delete)
				r.Post("/{id}/approve", h.CreditHandler.Approve)
				r.Post("/{id}/reject", h.CreditHandler.Reject)
				r.Get("/{id}/payments", h.PaymentHandler.ListByCredit)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.Record)
				r.Get("/", h.PaymentHandler.List)
				r.Get("/summary", h.ReportHandler.PaymentSummary)
			})
			r.Get("/supervisor/summary", h.ReportHandler.SupervisorSummary)
			r.Route("/admin", func(r chi.Router) {
				r.Get("/summary", h.ReportHandler.AdminSummary)
				r.Route("/fund-pool", func(r chi.Router) {
					r.Get("/", h.FundPoolHandler.Overview)
					r.Post("/deposit", h.FundPoolHandler.Deposit)
					r.Post("/withdraw", h.FundPoolHandler.Withdraw)
				})
				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.UserHandler.List)
					r.Post("/", h.UserHandler.Create)
					r.Put("/{id}", h.UserHandler.Update)
					r.Delete("/{id}", h.UserHandler.Delete)
				})
			})
		})
	})

	return r
}
