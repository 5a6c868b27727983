package domain

import "time"

// CreditMetadata carries the per-stage annotations of a credit. Each lifecycle
// transition fills its own section and never touches the others, so merging on
// write is plain field assignment. The whole struct is stored as one JSONB
// column.
type CreditMetadata struct {
	Request   RequestMetadata    `json:"request"`
	Approval  *ApprovalMetadata  `json:"approval,omitempty"`
	Rejection *RejectionMetadata `json:"rejection,omitempty"`
}

type RequestMetadata struct {
	Purpose        string `json:"purpose"`
	DurationMonths int    `json:"duration_months"`
	Activity       string `json:"activity,omitempty"`
	Guarantee      string `json:"guarantee,omitempty"`
}

type ApprovalMetadata struct {
	InterestRate float64 `json:"interest_rate"`
	Notes        string  `json:"notes,omitempty"`
	ApprovedBy   int     `json:"approved_by"`
}

type RejectionMetadata struct {
	Reason     string    `json:"reason"`
	RejectedBy int       `json:"rejected_by"`
	RejectedAt time.Time `json:"rejected_at"`
}

type PaymentMetadata struct {
	Method     string `json:"method"`
	Notes      string `json:"notes,omitempty"`
	RecordedBy int    `json:"recorded_by"`
}
