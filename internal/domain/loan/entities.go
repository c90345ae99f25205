package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusClosed  Status = "closed"
	StatusFrozen  Status = "frozen"
	StatusOverdue Status = "overdue"
)

var (
	ErrNotFound       = errors.New("loan not found")
	ErrAlreadySettled = errors.New("loan is already settled")
	ErrFrozen         = errors.New("loan is frozen, contact support")
	ErrNotParticipant = errors.New("borrower is not a participant of this loan")
)

// Loan is the funded sub-ledger opened at disbursement. Schedule state
// (current period, remaining principal, next payment) advances only through
// repayments; remaining_principal never goes below zero.
type Loan struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	ApplicationID      string          `gorm:"size:32;index:idx_loans_application" json:"application_id"`
	BorrowerID         string          `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	ProductID          string          `gorm:"size:32" json:"product_id"`
	DisburseAmount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"disburse_amount"`
	DisburseDate       time.Time       `json:"disburse_date"`
	DisburseMethod     string          `gorm:"size:32" json:"disburse_method"`
	Remarks            string          `gorm:"size:200" json:"remarks,omitempty"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths         int             `json:"term_months"`
	RepaymentMethod    string          `gorm:"size:32" json:"repayment_method"`
	Joint              bool            `json:"joint"`
	TotalRepayment     decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_repayment"`
	PaidAmount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_amount"`
	PaidPrincipal      decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_principal"`
	PaidInterest       decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_interest"`
	CurrentPeriod      int             `json:"current_period"`
	RemainingPrincipal decimal.Decimal `gorm:"type:decimal(18,2)" json:"remaining_principal"`
	FirstPaymentDate   time.Time       `json:"first_payment_date"`
	NextPaymentDate    time.Time       `json:"next_payment_date"`
	NextPaymentAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"next_payment_amount"`
	OverdueDays        int             `json:"overdue_days"`
	OverdueAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"overdue_amount"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty"`
	Status             Status          `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Participant is one borrower's slice of a joint loan. Each carries its own
// principal/interest/total at the shared rate and term; the slices sum to the
// loan-level figures.
type Participant struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string          `gorm:"size:32;index:idx_loan_participants_loan" json:"loan_id"`
	BorrowerID         string          `gorm:"size:32;index:idx_loan_participants_borrower" json:"borrower_id"`
	ShareRatio         decimal.Decimal `gorm:"type:decimal(6,2)" json:"share_ratio"`
	ShareAmount        decimal.Decimal `gorm:"type:decimal(18,2)" json:"share_amount"`
	Principal          decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	Interest           decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest"`
	TotalRepayment     decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_repayment"`
	PaidAmount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_amount"`
	RemainingPrincipal decimal.Decimal `gorm:"type:decimal(18,2)" json:"remaining_principal"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Participant) TableName() string { return "loan_participants" }
