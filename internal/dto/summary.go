package dto

import (
	"time"

	"github.com/dialloibra/microcredit/internal/domain"
)

type RecentUserDTO struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type RecentCreditDTO struct {
	ID          int                 `json:"id"`
	Amount      float64             `json:"amount"`
	Status      domain.CreditStatus `json:"status"`
	ClientName  string              `json:"client_name"`
	RequestDate time.Time           `json:"request_date"`
}

type AdminSummaryResponseDTO struct {
	TotalUsers        int               `json:"total_users"`
	ClientsCount      int               `json:"clients_count"`
	SupervisorsCount  int               `json:"supervisors_count"`
	AdminsCount       int               `json:"admins_count"`
	TotalCredits      int               `json:"total_credits"`
	PendingCredits    int               `json:"pending_credits"`
	ApprovedCredits   int               `json:"approved_credits"`
	RejectedCredits   int               `json:"rejected_credits"`
	TotalCreditAmount float64           `json:"total_credit_amount"`
	TotalRepaidAmount float64           `json:"total_repaid_amount"`
	RecentUsers       []RecentUserDTO   `json:"recent_users"`
	RecentCredits     []RecentCreditDTO `json:"recent_credits"`
}

type SupervisorSummaryResponseDTO struct {
	Total               int     `json:"total"`
	Pending             int     `json:"pending"`
	Approved            int     `json:"approved"`
	Rejected            int     `json:"rejected"`
	Repaid              int     `json:"repaid"`
	TotalApprovedAmount float64 `json:"total_approved_amount"`
	TotalRepaidAmount   float64 `json:"total_repaid_amount"`
	TotalClients        int     `json:"total_clients"`
}
