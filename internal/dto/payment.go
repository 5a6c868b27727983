package dto

import (
	"time"

	"github.com/dialloibra/microcredit/internal/domain"
)

type RecordPaymentRequestDTO struct {
	CreditID int     `json:"credit_id" validate:"required,gt=0" example:"1"`
	Amount   float64 `json:"amount" validate:"required,gt=0" example:"40000"`
	Method   string  `json:"method" validate:"required,oneof=CASH MOBILE_MONEY BANK_TRANSFER" example:"MOBILE_MONEY"`
	Notes    string  `json:"notes,omitempty"`
}

type PaymentResponseDTO struct {
	ID            int                    `json:"id" example:"1"`
	CreditID      int                    `json:"credit_id" example:"1"`
	Amount        float64                `json:"amount" example:"40000"`
	ReceiptNumber string                 `json:"receipt_number" example:"340329887615"`
	Date          time.Time              `json:"date"`
	Metadata      domain.PaymentMetadata `json:"metadata"`
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:            p.ID,
		CreditID:      p.CreditID,
		Amount:        p.Amount,
		ReceiptNumber: p.ReceiptNumber,
		Date:          p.Date,
		Metadata:      p.Metadata,
	}
}

type RecordPaymentResponseDTO struct {
	Payment     PaymentResponseDTO     `json:"payment"`
	IsFullyPaid bool                   `json:"is_fully_paid"`
	Transaction TransactionResponseDTO `json:"transaction"`
}

type PaymentSummaryResponseDTO struct {
	TotalPayments   int        `json:"total_payments" example:"3"`
	TotalAmount     float64    `json:"total_amount" example:"120000"`
	LastPaymentDate *time.Time `json:"last_payment_date,omitempty"`
}
