package borrower

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("borrower not found")

type Borrower struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID  string          `gorm:"size:32;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	Phone       string          `gorm:"size:20" json:"phone"`
	Nickname    string          `gorm:"size:64" json:"nickname"`
	CashBalance decimal.Decimal `gorm:"type:decimal(18,2)" json:"cash_balance"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Borrower) TableName() string { return "borrowers" }

// Candidate is the joint-partner listing view: a borrower plus the slice of
// their credit limit they could carry.
type Candidate struct {
	BorrowerID     string          `json:"borrower_id"`
	Nickname       string          `json:"nickname"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
}
