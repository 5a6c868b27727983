package dto

import (
	"time"

	"github.com/dialloibra/microcredit/internal/domain"
)

type CreateCreditRequestDTO struct {
	UserID                int       `json:"user_id" validate:"required,gt=0" example:"1"`
	Amount                float64   `json:"amount" validate:"required,gt=0" example:"400000"`
	Purpose               string    `json:"purpose" validate:"required,min=10" example:"Stock for the market stall"`
	Duration              int       `json:"duration" validate:"required,min=1,max=36" example:"12"`
	ExpectedRepaymentDate time.Time `json:"expected_repayment_date" validate:"required" example:"2026-12-01T00:00:00Z"`
	Activity              string    `json:"activity,omitempty" example:"retail trade"`
	Guarantee             string    `json:"guarantee,omitempty" example:"family guarantor"`
}

type ApproveCreditRequestDTO struct {
	DueDate      time.Time `json:"due_date" validate:"required" example:"2026-12-01T00:00:00Z"`
	InterestRate float64   `json:"interest_rate" validate:"gte=0,lte=100" example:"5.5"`
	Notes        string    `json:"notes,omitempty"`
}

type RejectCreditRequestDTO struct {
	Reason string `json:"reason" validate:"required,min=10" example:"Insufficient repayment capacity"`
}

type CreditResponseDTO struct {
	ID           int                   `json:"id" example:"1"`
	UserID       int                   `json:"user_id" example:"1"`
	SupervisorID *int                  `json:"supervisor_id,omitempty"`
	Amount       float64               `json:"amount" example:"400000"`
	Status       domain.CreditStatus   `json:"status" example:"PENDING"`
	RequestDate  time.Time             `json:"request_date"`
	ApprovalDate *time.Time            `json:"approval_date,omitempty"`
	DueDate      *time.Time            `json:"due_date,omitempty"`
	Metadata     domain.CreditMetadata `json:"metadata"`
}

func NewCreditResponse(c *domain.Credit) CreditResponseDTO {
	return CreditResponseDTO{
		ID:           c.ID,
		UserID:       c.UserID,
		SupervisorID: c.SupervisorID,
		Amount:       c.Amount,
		Status:       c.Status,
		RequestDate:  c.RequestDate,
		ApprovalDate: c.ApprovalDate,
		DueDate:      c.DueDate,
		Metadata:     c.Metadata,
	}
}

type ApproveCreditResponseDTO struct {
	Credit      CreditResponseDTO      `json:"credit"`
	FundPool    FundPoolResponseDTO    `json:"fund_pool"`
	Transaction TransactionResponseDTO `json:"transaction"`
}
