package disbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisburseInput struct {
	ApplicationID string          `json:"application_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Remarks       string          `json:"remarks"`
}

type ParticipantDTO struct {
	BorrowerID     string          `json:"borrower_id"`
	ShareRatio     decimal.Decimal `json:"share_ratio"`
	ShareAmount    decimal.Decimal `json:"share_amount"`
	TotalRepayment decimal.Decimal `json:"total_repayment"`
}

type DisbursementDTO struct {
	DisbursementID    string           `json:"disbursement_id"`
	LoanID            string           `json:"loan_id"`
	ApplicationID     string           `json:"application_id"`
	Amount            decimal.Decimal  `json:"amount"`
	ApprovalRatio     decimal.Decimal  `json:"approval_ratio"`
	TotalRepayment    decimal.Decimal  `json:"total_repayment"`
	NextPaymentDate   time.Time        `json:"next_payment_date"`
	NextPaymentAmount decimal.Decimal  `json:"next_payment_amount"`
	Participants      []ParticipantDTO `json:"participants,omitempty"`
}
