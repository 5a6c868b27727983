package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	"github.com/dialloibra/microcredit/internal/service/reportservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
	"github.com/dialloibra/microcredit/pkg/utils"
)

type Service interface {
	AdminSummary(ctx context.Context, actor *domain.Principal) (*reportservice.AdminSummary, error)
	SupervisorSummary(ctx context.Context, actor *domain.Principal) (*reportservice.SupervisorSummary, error)
	ClientPaymentSummary(ctx context.Context, actor *domain.Principal) (*reportservice.ClientPaymentSummary, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func respondReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, authz.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// AdminSummary godoc
//
//	@Summary		Administrator dashboard summary
//	@Description	User counts by role, credit counts by status, released and repaid totals, plus the five most recent users and credits.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/summary [get]
func (h *ReportHandler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	summary, err := h.reportService.AdminSummary(r.Context(), actor)
	if err != nil {
		respondReportError(w, err)
		return
	}

	response := dto.AdminSummaryResponseDTO{
		TotalUsers:        summary.TotalUsers,
		ClientsCount:      summary.ClientsCount,
		SupervisorsCount:  summary.SupervisorsCount,
		AdminsCount:       summary.AdminsCount,
		TotalCredits:      summary.TotalCredits,
		PendingCredits:    summary.PendingCredits,
		ApprovedCredits:   summary.ApprovedCredits,
		RejectedCredits:   summary.RejectedCredits,
		TotalCreditAmount: summary.TotalCreditAmount,
		TotalRepaidAmount: summary.TotalRepaidAmount,
		RecentUsers:       make([]dto.RecentUserDTO, 0, len(summary.RecentUsers)),
		RecentCredits:     make([]dto.RecentCreditDTO, 0, len(summary.RecentCredits)),
	}
	for _, u := range summary.RecentUsers {
		response.RecentUsers = append(response.RecentUsers, dto.RecentUserDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	for _, c := range summary.RecentCredits {
		response.RecentCredits = append(response.RecentCredits, dto.RecentCreditDTO{
			ID:          c.ID,
			Amount:      c.Amount,
			Status:      c.Status,
			ClientName:  c.ClientName,
			RequestDate: c.RequestDate,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SupervisorSummary godoc
//
//	@Summary		Supervisor dashboard summary
//	@Description	Credit counts by status with released and repaid totals and the active client count.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SupervisorSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not staff"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/supervisor/summary [get]
func (h *ReportHandler) SupervisorSummary(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	summary, err := h.reportService.SupervisorSummary(r.Context(), actor)
	if err != nil {
		respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SupervisorSummaryResponseDTO{
		Total:               summary.Total,
		Pending:             summary.Pending,
		Approved:            summary.Approved,
		Rejected:            summary.Rejected,
		Repaid:              summary.Repaid,
		TotalApprovedAmount: summary.TotalApprovedAmount,
		TotalRepaidAmount:   summary.TotalRepaidAmount,
		TotalClients:        summary.TotalClients,
	})
}

// PaymentSummary godoc
//
//	@Summary		Payment summary for the calling client
//	@Description	Count and total of the caller's payments with the date of the most recent one.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PaymentSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/summary [get]
func (h *ReportHandler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	summary, err := h.reportService.ClientPaymentSummary(r.Context(), actor)
	if err != nil {
		respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentSummaryResponseDTO{
		TotalPayments:   summary.TotalPayments,
		TotalAmount:     summary.TotalAmount,
		LastPaymentDate: summary.LastPaymentDate,
	})
}
