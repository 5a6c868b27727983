package payments

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
	"github.com/dialloibra/microcredit/internal/service/paymentservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
	"github.com/dialloibra/microcredit/pkg/utils"
	"github.com/dialloibra/microcredit/pkg/validate"
)

type Service interface {
	Record(ctx context.Context, actor *domain.Principal, in paymentservice.RecordInput) (*paymentservice.RecordResult, error)
	ListByCredit(ctx context.Context, actor *domain.Principal, creditID int) ([]domain.Payment, error)
	List(ctx context.Context, actor *domain.Principal) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, authz.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, paymentservice.ErrCreditNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrNotApproved),
		errors.Is(err, paymentservice.ErrInvalidAmount),
		errors.Is(err, paymentservice.ErrExceedsRemaining):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Record godoc
//
//	@Summary		Record a payment
//	@Description	Register a repayment against an approved credit. The amount may not exceed what remains, the credit flips to REPAID once the accumulated payments cover it, and the fund pool is credited back in the same transaction.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.RecordPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Credit not approved or amount out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Paying someone else's credit"
//	@Failure		404		{object}	utils.Response	"Credit not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.paymentService.Record(r.Context(), actor, paymentservice.RecordInput{
		CreditID: req.CreditID,
		Amount:   req.Amount,
		Method:   req.Method,
		Notes:    req.Notes,
	})
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RecordPaymentResponseDTO{
		Payment:     dto.NewPaymentResponse(result.Payment),
		IsFullyPaid: result.FullyPaid,
		Transaction: dto.NewTransactionResponse(result.Transaction),
	})
}

// ListByCredit godoc
//
//	@Summary		Payment history of one credit
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Credit id"
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Credit not found"
//	@Router			/api/credits/{id}/payments [get]
func (h *PaymentHandler) ListByCredit(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit id")
		return
	}

	list, err := h.paymentService.ListByCredit(r.Context(), actor, id)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, dto.NewPaymentResponse(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// List godoc
//
//	@Summary		List payments
//	@Description	Clients get the payments of their own credits, staff get all of them, newest first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	list, err := h.paymentService.List(r.Context(), actor)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, dto.NewPaymentResponse(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
