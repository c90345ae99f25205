package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var (
	ErrNotFound      = errors.New("loan product not found or inactive")
	ErrDuplicateName = errors.New("loan product name already exists")
)

// Product is a bank-published loan offering. Rows are immutable once an
// application references them; pricing changes mean a new product.
type Product struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProductID       string          `gorm:"size:32;uniqueIndex:ux_loan_products_product_id" json:"product_id"`
	ProductCode     string          `gorm:"size:32" json:"product_code"`
	BankID          string          `gorm:"size:32;index:idx_loan_products_bank" json:"bank_id"`
	Name            string          `gorm:"size:64;uniqueIndex:ux_loan_products_name" json:"name"`
	MinCreditLimit  decimal.Decimal `gorm:"type:decimal(18,2)" json:"min_credit_limit"`
	MaxAmount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"max_amount"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"` // percent per year
	TermMonths      int             `json:"term_months"`
	RepaymentMethod string          `gorm:"size:32" json:"repayment_method"`
	Description     string          `gorm:"type:text" json:"description"`
	Status          Status          `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "loan_products" }
