package domain

import "time"

type Role string

const (
	RoleClient        Role = "CLIENT"
	RoleSupervisor    Role = "SUPERVISOR"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSupervisor, RoleAdministrator:
		return true
	}
	return false
}

// IsStaff reports whether the role may act on credits it does not own.
func (r Role) IsStaff() bool {
	return r == RoleSupervisor || r == RoleAdministrator
}

type CreditStatus string

const (
	// CreditStatusPending request awaiting supervisor review.
	CreditStatusPending CreditStatus = "PENDING"
	// CreditStatusApproved funds released from the pool, repayment in progress.
	CreditStatusApproved CreditStatus = "APPROVED"
	// CreditStatusRejected terminal, no funds were moved.
	CreditStatusRejected CreditStatus = "REJECTED"
	// CreditStatusRepaid terminal, payments covered the full amount.
	CreditStatusRepaid CreditStatus = "REPAID"
)

type TransactionType string

const (
	TransactionDeposit        TransactionType = "DEPOSIT"
	TransactionWithdrawal     TransactionType = "WITHDRAWAL"
	TransactionCreditApproval TransactionType = "CREDIT_APPROVAL"
	TransactionPayment        TransactionType = "PAYMENT"
)

const TransactionStatusCompleted = "COMPLETED"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Credit struct {
	ID           int            `db:"id"`
	UserID       int            `db:"user_id"`
	SupervisorID *int           `db:"supervisor_id"`
	Amount       float64        `db:"amount"`
	Status       CreditStatus   `db:"status"`
	RequestDate  time.Time      `db:"request_date"`
	ApprovalDate *time.Time     `db:"approval_date"`
	DueDate      *time.Time     `db:"due_date"`
	Metadata     CreditMetadata `db:"metadata"`
}

type Payment struct {
	ID            int             `db:"id"`
	CreditID      int             `db:"credit_id"`
	Amount        float64         `db:"amount"`
	ReceiptNumber string          `db:"receipt_number"`
	Date          time.Time       `db:"date"`
	Metadata      PaymentMetadata `db:"metadata"`
}

type FundPool struct {
	ID        int       `db:"id"`
	Balance   float64   `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Transaction struct {
	ID          int             `db:"id"`
	FundPoolID  int             `db:"fund_pool_id"`
	UserID      *int            `db:"user_id"`
	CreditID    *int            `db:"credit_id"`
	PaymentID   *int            `db:"payment_id"`
	Type        TransactionType `db:"type"`
	Amount      float64         `db:"amount"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	Date        time.Time       `db:"date"`
}
