package credit

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type LimitStatus string

const (
	LimitActive LimitStatus = "active"
	LimitNone   LimitStatus = "no_limit"
	LimitFrozen LimitStatus = "frozen"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

var (
	ErrInsufficientLimit   = errors.New("insufficient available credit limit")
	ErrNoActiveLimit       = errors.New("borrower has no active credit limit")
	ErrBelowProductMin     = errors.New("available credit limit is below the product minimum")
	ErrLimitConflict       = errors.New("credit limit update conflicted, retry")
	ErrLimitNotFound       = errors.New("credit limit not found")
	ErrApplicationNotFound = errors.New("credit application not found")
	ErrDuplicatePending    = errors.New("a pending credit application already exists")
	ErrInvalidTransition   = errors.New("credit application is not pending")
)

// Limit is the per-borrower credit ceiling. The ledger identity
// available_limit = total_limit - used_limit must hold after every mutation.
type Limit struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID     string          `gorm:"size:32;uniqueIndex:ux_credit_limits_borrower" json:"borrower_id"`
	TotalLimit     decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_limit"`
	UsedLimit      decimal.Decimal `gorm:"type:decimal(18,2)" json:"used_limit"`
	AvailableLimit decimal.Decimal `gorm:"type:decimal(18,2)" json:"available_limit"`
	Currency       string          `gorm:"size:8" json:"currency"`
	Status         LimitStatus     `gorm:"size:16" json:"status"`
	LastUpdated    time.Time       `json:"last_updated"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Limit) TableName() string { return "credit_limits" }

// Consistent reports whether the row still satisfies the ledger identity
// with all three balances non-negative.
func (l *Limit) Consistent() bool {
	return l.TotalLimit.Sub(l.UsedLimit).Equal(l.AvailableLimit) &&
		!l.TotalLimit.IsNegative() && !l.UsedLimit.IsNegative() && !l.AvailableLimit.IsNegative()
}

// ZeroLimit is what Query returns for a borrower without a granted limit.
func ZeroLimit(borrowerID string) *Limit {
	return &Limit{
		BorrowerID:     borrowerID,
		TotalLimit:     decimal.Zero,
		UsedLimit:      decimal.Zero,
		AvailableLimit: decimal.Zero,
		Currency:       "CNY",
		Status:         LimitNone,
	}
}

type Application struct {
	ID             uint64            `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID  string            `gorm:"size:32;uniqueIndex:ux_credit_applications_app_id" json:"application_id"`
	BorrowerID     string            `gorm:"size:32;index:idx_credit_applications_borrower" json:"borrower_id"`
	ProofType      string            `gorm:"size:32" json:"proof_type"`
	ProofImages    string            `gorm:"type:text" json:"proof_images"` // JSON array of URLs
	ApplyAmount    decimal.Decimal   `gorm:"type:decimal(18,2)" json:"apply_amount"`
	Description    string            `gorm:"type:text" json:"description"`
	Status         ApplicationStatus `gorm:"size:16;default:'pending'" json:"status"`
	ApprovedBy     string            `gorm:"size:32" json:"approved_by,omitempty"`
	ApprovedAmount decimal.Decimal   `gorm:"type:decimal(18,2)" json:"approved_amount"`
	RejectReason   string            `gorm:"size:200" json:"reject_reason,omitempty"`
	DecidedAt      *time.Time        `json:"decided_at,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "credit_applications" }
