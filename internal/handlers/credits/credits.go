package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	"github.com/dialloibra/microcredit/internal/service/creditservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
	"github.com/dialloibra/microcredit/pkg/utils"
	"github.com/dialloibra/microcredit/pkg/validate"
)

type Service interface {
	Request(ctx context.Context, actor *domain.Principal, in creditservice.RequestInput) (*domain.Credit, error)
	List(ctx context.Context, actor *domain.Principal, ownerID int) ([]domain.Credit, error)
	Get(ctx context.Context, actor *domain.Principal, creditID int) (*domain.Credit, error)
	Approve(ctx context.Context, actor *domain.Principal, in creditservice.ApproveInput) (*domain.Credit, *domain.FundPool, *domain.Transaction, error)
	Reject(ctx context.Context, actor *domain.Principal, creditID int, reason string) (*domain.Credit, error)
	Delete(ctx context.Context, actor *domain.Principal, creditID int) error
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

func respondCreditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, authz.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, creditservice.ErrCreditNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, creditservice.ErrNotPending),
		errors.Is(err, creditservice.ErrInvalidAmount),
		errors.Is(err, creditservice.ErrPurposeTooShort),
		errors.Is(err, creditservice.ErrReasonTooShort),
		errors.Is(err, creditservice.ErrInvalidDuration),
		errors.Is(err, creditservice.ErrInvalidInterestRate),
		errors.Is(err, creditservice.ErrInsufficientFunds),
		errors.Is(err, creditservice.ErrNotDeletable):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func creditID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// Create godoc
//
//	@Summary		Request a credit
//	@Description	Create a credit request in PENDING state. Clients request for themselves, administrators may request on a client's behalf.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCreditRequestDTO	true	"Credit request payload"
//	@Success		201		{object}	dto.CreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Requesting for another user"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credits [post]
func (h *CreditHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	var req dto.CreateCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, err := h.creditService.Request(r.Context(), actor, creditservice.RequestInput{
		OwnerID:               req.UserID,
		Amount:                req.Amount,
		Purpose:               req.Purpose,
		DurationMonths:        req.Duration,
		ExpectedRepaymentDate: req.ExpectedRepaymentDate,
		Activity:              req.Activity,
		Guarantee:             req.Guarantee,
	})
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCreditResponse(credit))
}

// List godoc
//
//	@Summary		List credits
//	@Description	Clients get their own credits, supervisors and administrators get all of them. An optional user_id query narrows to one client.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		int	false	"Filter by owning client"
//	@Success		200		{array}		dto.CreditResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Filter not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credits [get]
func (h *CreditHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	var ownerID int
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id filter")
			return
		}
		ownerID = id
	}

	credits, err := h.creditService.List(r.Context(), actor, ownerID)
	if err != nil {
		respondCreditError(w, err)
		return
	}

	response := make([]dto.CreditResponseDTO, 0, len(credits))
	for i := range credits {
		response = append(response, dto.NewCreditResponse(&credits[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get one credit
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Credit id"
//	@Success		200	{object}	dto.CreditResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Credit not found"
//	@Router			/api/credits/{id} [get]
func (h *CreditHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := creditID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit id")
		return
	}

	credit, err := h.creditService.Get(r.Context(), actor, id)
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCreditResponse(credit))
}

// Approve godoc
//
//	@Summary		Approve a pending credit
//	@Description	Move a PENDING credit to APPROVED, debit the fund pool by the credit amount and record a CREDIT_APPROVAL transaction. Fails when the pool balance cannot cover the amount.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Credit id"
//	@Param			request	body		dto.ApproveCreditRequestDTO	true	"Approval payload"
//	@Success		200		{object}	dto.ApproveCreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Not pending or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a supervisor"
//	@Failure		404		{object}	utils.Response	"Credit not found"
//	@Router			/api/credits/{id}/approve [post]
func (h *CreditHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := creditID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit id")
		return
	}

	var req dto.ApproveCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, pool, transaction, err := h.creditService.Approve(r.Context(), actor, creditservice.ApproveInput{
		CreditID:     id,
		DueDate:      req.DueDate,
		InterestRate: req.InterestRate,
		Notes:        req.Notes,
	})
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveCreditResponseDTO{
		Credit:      dto.NewCreditResponse(credit),
		FundPool:    dto.NewFundPoolResponse(pool),
		Transaction: dto.NewTransactionResponse(transaction),
	})
}

// Reject godoc
//
//	@Summary		Reject a pending credit
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Credit id"
//	@Param			request	body		dto.RejectCreditRequestDTO	true	"Rejection payload"
//	@Success		200		{object}	dto.CreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Not pending or reason too short"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a supervisor"
//	@Failure		404		{object}	utils.Response	"Credit not found"
//	@Router			/api/credits/{id}/reject [post]
func (h *CreditHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := creditID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit id")
		return
	}

	var req dto.RejectCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, err := h.creditService.Reject(r.Context(), actor, id, req.Reason)
	if err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCreditResponse(credit))
}

// Delete godoc
//
//	@Summary		Delete a credit
//	@Description	Remove a PENDING or REJECTED credit together with its payments. Approved and repaid credits are refused, their pool debit is part of the ledger.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Credit id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Credit not deletable"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		404	{object}	utils.Response	"Credit not found"
//	@Router			/api/credits/{id} [delete]
func (h *CreditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := creditID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit id")
		return
	}

	if err := h.creditService.Delete(r.Context(), actor, id); err != nil {
		respondCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Credit and its payments deleted"})
}
