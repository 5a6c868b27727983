package dto

import (
	"time"

	"github.com/dialloibra/microcredit/internal/domain"
)

type FundPoolMoveRequestDTO struct {
	Amount      float64 `json:"amount" validate:"required,gt=0" example:"1000000"`
	Description string  `json:"description,omitempty" example:"Quarterly capital injection"`
}

type FundPoolResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Balance   float64   `json:"balance" example:"600000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFundPoolResponse(p *domain.FundPool) FundPoolResponseDTO {
	return FundPoolResponseDTO{
		ID:        p.ID,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type TransactionResponseDTO struct {
	ID          int                    `json:"id" example:"1"`
	FundPoolID  int                    `json:"fund_pool_id" example:"1"`
	UserID      *int                   `json:"user_id,omitempty"`
	CreditID    *int                   `json:"credit_id,omitempty"`
	PaymentID   *int                   `json:"payment_id,omitempty"`
	Type        domain.TransactionType `json:"type" example:"DEPOSIT"`
	Amount      float64                `json:"amount" example:"1000000"`
	Description string                 `json:"description"`
	Status      string                 `json:"status" example:"COMPLETED"`
	Date        time.Time              `json:"date"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		FundPoolID:  t.FundPoolID,
		UserID:      t.UserID,
		CreditID:    t.CreditID,
		PaymentID:   t.PaymentID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Status:      t.Status,
		Date:        t.Date,
	}
}

type FundPoolOverviewResponseDTO struct {
	FundPool     FundPoolResponseDTO      `json:"fund_pool"`
	Transactions []TransactionResponseDTO `json:"transactions"`
}

type FundPoolMoveResponseDTO struct {
	Message     string                 `json:"message"`
	FundPool    FundPoolResponseDTO    `json:"fund_pool"`
	Transaction TransactionResponseDTO `json:"transaction"`
}
