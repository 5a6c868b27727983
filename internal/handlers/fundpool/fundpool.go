package fundpool

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	"github.com/dialloibra/microcredit/internal/service/fundpoolservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
	"github.com/dialloibra/microcredit/pkg/utils"
	"github.com/dialloibra/microcredit/pkg/validate"
)

type Service interface {
	Deposit(ctx context.Context, actor *domain.Principal, amount float64, description string) (*domain.FundPool, *domain.Transaction, error)
	Withdraw(ctx context.Context, actor *domain.Principal, amount float64, description string) (*domain.FundPool, *domain.Transaction, error)
	Overview(ctx context.Context, actor *domain.Principal) (*domain.FundPool, []domain.Transaction, error)
}

type FundPoolHandler struct {
	fundPoolService Service
}

func New(fundPoolService Service) *FundPoolHandler {
	return &FundPoolHandler{
		fundPoolService: fundPoolService,
	}
}

func respondPoolError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, authz.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, fundpoolservice.ErrInsufficientFunds),
		errors.Is(err, fundpoolservice.ErrInvalidAmount),
		errors.Is(err, fundpoolservice.ErrPoolNotFound):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeMove(w http.ResponseWriter, r *http.Request) (dto.FundPoolMoveRequestDTO, bool) {
	var req dto.FundPoolMoveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// Deposit godoc
//
//	@Summary		Deposit into the fund pool
//	@Description	Add capital to the shared lending pool and record a DEPOSIT ledger entry.
//	@Tags			FundPool
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FundPoolMoveRequestDTO	true	"Amount to add"
//	@Success		200		{object}	dto.FundPoolMoveResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/fund-pool/deposit [post]
func (h *FundPoolHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	req, ok := decodeMove(w, r)
	if !ok {
		return
	}

	pool, transaction, err := h.fundPoolService.Deposit(r.Context(), actor, req.Amount, req.Description)
	if err != nil {
		respondPoolError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundPoolMoveResponseDTO{
		Message:     "Deposit recorded",
		FundPool:    dto.NewFundPoolResponse(pool),
		Transaction: dto.NewTransactionResponse(transaction),
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw from the fund pool
//	@Description	Take capital out of the pool. Refused when the balance cannot cover the amount.
//	@Tags			FundPool
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FundPoolMoveRequestDTO	true	"Amount to remove"
//	@Success		200		{object}	dto.FundPoolMoveResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/fund-pool/withdraw [post]
func (h *FundPoolHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	req, ok := decodeMove(w, r)
	if !ok {
		return
	}

	pool, transaction, err := h.fundPoolService.Withdraw(r.Context(), actor, req.Amount, req.Description)
	if err != nil {
		respondPoolError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundPoolMoveResponseDTO{
		Message:     "Withdrawal recorded",
		FundPool:    dto.NewFundPoolResponse(pool),
		Transaction: dto.NewTransactionResponse(transaction),
	})
}

// Overview godoc
//
//	@Summary		Fund pool overview
//	@Description	Current balance together with the transaction ledger, newest first.
//	@Tags			FundPool
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FundPoolOverviewResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/fund-pool [get]
func (h *FundPoolHandler) Overview(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	pool, transactions, err := h.fundPoolService.Overview(r.Context(), actor)
	if err != nil {
		respondPoolError(w, err)
		return
	}

	list := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for i := range transactions {
		list = append(list, dto.NewTransactionResponse(&transactions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundPoolOverviewResponseDTO{
		FundPool:     dto.NewFundPoolResponse(pool),
		Transactions: list,
	})
}
