package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplyInput struct {
	BorrowerID  string          `json:"borrower_id"`
	ProofType   string          `json:"proof_type"`
	ProofImages []string        `json:"proof_images"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type DecideInput struct {
	ApplicationID  string          `json:"application_id"`
	Approve        bool            `json:"approve"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	RejectReason   string          `json:"reject_reason"`
	DecidedBy      string          `json:"decided_by"`
}

type ApplicationDTO struct {
	ApplicationID  string          `json:"application_id"`
	BorrowerID     string          `json:"borrower_id"`
	ProofType      string          `json:"proof_type"`
	ApplyAmount    decimal.Decimal `json:"apply_amount"`
	Status         string          `json:"status"`
	ApprovedAmount decimal.Decimal `json:"approved_amount,omitempty"`
	RejectReason   string          `json:"reject_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type LimitDTO struct {
	BorrowerID     string          `json:"borrower_id"`
	TotalLimit     decimal.Decimal `json:"total_limit"`
	UsedLimit      decimal.Decimal `json:"used_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	LastUpdated    time.Time       `json:"last_updated"`
}
