package repayment

import (
	"time"

	"github.com/shopspring/decimal"

	"farmcredit-backend/pkg/amortize"
)

type RepayInput struct {
	LoanID  string          `json:"loan_id"`
	PayerID string          `json:"payer_id"`
	Amount  decimal.Decimal `json:"amount"` // zero means the scheduled payment
}

type RepaymentDTO struct {
	RepaymentID        string          `json:"repayment_id"`
	LoanID             string          `json:"loan_id"`
	PayerID            string          `json:"payer_id"`
	Amount             decimal.Decimal `json:"amount"`
	InterestPortion    decimal.Decimal `json:"interest_portion"`
	PrincipalPortion   decimal.Decimal `json:"principal_portion"`
	PenaltyAccrued     decimal.Decimal `json:"penalty_accrued"`
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	LoanStatus         string          `json:"loan_status"`
	NextPaymentDate    *time.Time      `json:"next_payment_date,omitempty"`
	NextPaymentAmount  decimal.Decimal `json:"next_payment_amount"`
}

type ScheduleDTO struct {
	LoanID             string           `json:"loan_id"`
	Status             string           `json:"status"`
	DisburseAmount     decimal.Decimal  `json:"disburse_amount"`
	InterestRate       decimal.Decimal  `json:"interest_rate"`
	TermMonths         int              `json:"term_months"`
	TotalRepayment     decimal.Decimal  `json:"total_repayment"`
	PaidAmount         decimal.Decimal  `json:"paid_amount"`
	RemainingPrincipal decimal.Decimal  `json:"remaining_principal"`
	CurrentPeriod      int              `json:"current_period"`
	NextPaymentDate    time.Time        `json:"next_payment_date"`
	NextPaymentAmount  decimal.Decimal  `json:"next_payment_amount"`
	OverdueDays        int              `json:"overdue_days"`
	OverdueAmount      decimal.Decimal  `json:"overdue_amount"`
	Entries            []amortize.Entry `json:"entries"`
}

type LoanSummaryDTO struct {
	LoanID             string          `json:"loan_id"`
	ProductID          string          `json:"product_id"`
	DisburseAmount     decimal.Decimal `json:"disburse_amount"`
	TotalRepayment     decimal.Decimal `json:"total_repayment"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	NextPaymentDate    time.Time       `json:"next_payment_date"`
	NextPaymentAmount  decimal.Decimal `json:"next_payment_amount"`
	Joint              bool            `json:"joint"`
	Status             string          `json:"status"`
}
