package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (plain column types) ---

type creditLimitSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	BorrowerID     string          `gorm:"size:32;column:borrower_id"`
	TotalLimit     decimal.Decimal `gorm:"column:total_limit"`
	UsedLimit      decimal.Decimal `gorm:"column:used_limit"`
	AvailableLimit decimal.Decimal `gorm:"column:available_limit"`
	Currency       string          `gorm:"column:currency"`
	Status         string          `gorm:"type:text;column:status"`
	LastUpdated    time.Time       `gorm:"column:last_updated"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (creditLimitSQLite) TableName() string { return "credit_limits" }

type creditApplicationSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	ApplicationID  string          `gorm:"size:32;column:application_id"`
	BorrowerID     string          `gorm:"size:32;column:borrower_id"`
	ProofType      string          `gorm:"column:proof_type"`
	ProofImages    string          `gorm:"column:proof_images"`
	ApplyAmount    decimal.Decimal `gorm:"column:apply_amount"`
	Description    string          `gorm:"column:description"`
	Status         string          `gorm:"type:text;column:status"`
	ApprovedBy     string          `gorm:"column:approved_by"`
	ApprovedAmount decimal.Decimal `gorm:"column:approved_amount"`
	RejectReason   string          `gorm:"column:reject_reason"`
	DecidedAt      *time.Time      `gorm:"column:decided_at"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (creditApplicationSQLite) TableName() string { return "credit_applications" }

type productSQLite struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	ProductID       string          `gorm:"size:32;column:product_id"`
	ProductCode     string          `gorm:"column:product_code"`
	BankID          string          `gorm:"column:bank_id"`
	Name            string          `gorm:"column:name"`
	MinCreditLimit  decimal.Decimal `gorm:"column:min_credit_limit"`
	MaxAmount       decimal.Decimal `gorm:"column:max_amount"`
	InterestRate    decimal.Decimal `gorm:"column:interest_rate"`
	TermMonths      int             `gorm:"column:term_months"`
	RepaymentMethod string          `gorm:"column:repayment_method"`
	Description     string          `gorm:"column:description"`
	Status          string          `gorm:"type:text;column:status"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (productSQLite) TableName() string { return "loan_products" }

type loanApplicationSQLite struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	ApplicationID   string          `gorm:"size:32;column:application_id"`
	BorrowerID      string          `gorm:"size:32;column:borrower_id"`
	ProductID       string          `gorm:"column:product_id"`
	Type            string          `gorm:"type:text;column:type"`
	Amount          decimal.Decimal `gorm:"column:amount"`
	TermMonths      int             `gorm:"column:term_months"`
	Purpose         string          `gorm:"column:purpose"`
	RepaymentSource string          `gorm:"column:repayment_source"`
	Status          string          `gorm:"type:text;column:status"`
	ApprovedAmount  decimal.Decimal `gorm:"column:approved_amount"`
	ApprovedBy      string          `gorm:"column:approved_by"`
	RejectReason    string          `gorm:"column:reject_reason"`
	DecidedAt       *time.Time      `gorm:"column:decided_at"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (loanApplicationSQLite) TableName() string { return "loan_applications" }

type partnerShareSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	ApplicationID string          `gorm:"size:32;column:application_id"`
	PartnerID     string          `gorm:"size:32;column:partner_id"`
	ShareRatio    decimal.Decimal `gorm:"column:share_ratio"`
	ShareAmount   decimal.Decimal `gorm:"column:share_amount"`
	Status        string          `gorm:"type:text;column:status"`
	InvitedAt     time.Time       `gorm:"column:invited_at"`
	RespondedAt   *time.Time      `gorm:"column:responded_at"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (partnerShareSQLite) TableName() string { return "partner_shares" }

type loanSQLite struct {
	ID                 uint64          `gorm:"primaryKey;column:id"`
	LoanID             string          `gorm:"size:32;column:loan_id"`
	ApplicationID      string          `gorm:"size:32;column:application_id"`
	BorrowerID         string          `gorm:"size:32;column:borrower_id"`
	ProductID          string          `gorm:"column:product_id"`
	DisburseAmount     decimal.Decimal `gorm:"column:disburse_amount"`
	DisburseDate       time.Time       `gorm:"column:disburse_date"`
	DisburseMethod     string          `gorm:"column:disburse_method"`
	Remarks            string          `gorm:"column:remarks"`
	InterestRate       decimal.Decimal `gorm:"column:interest_rate"`
	TermMonths         int             `gorm:"column:term_months"`
	RepaymentMethod    string          `gorm:"column:repayment_method"`
	Joint              bool            `gorm:"column:joint"`
	TotalRepayment     decimal.Decimal `gorm:"column:total_repayment"`
	PaidAmount         decimal.Decimal `gorm:"column:paid_amount"`
	PaidPrincipal      decimal.Decimal `gorm:"column:paid_principal"`
	PaidInterest       decimal.Decimal `gorm:"column:paid_interest"`
	CurrentPeriod      int             `gorm:"column:current_period"`
	RemainingPrincipal decimal.Decimal `gorm:"column:remaining_principal"`
	FirstPaymentDate   time.Time       `gorm:"column:first_payment_date"`
	NextPaymentDate    time.Time       `gorm:"column:next_payment_date"`
	NextPaymentAmount  decimal.Decimal `gorm:"column:next_payment_amount"`
	OverdueDays        int             `gorm:"column:overdue_days"`
	OverdueAmount      decimal.Decimal `gorm:"column:overdue_amount"`
	ClosedAt           *time.Time      `gorm:"column:closed_at"`
	Status             string          `gorm:"type:text;column:status"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type loanParticipantSQLite struct {
	ID                 uint64          `gorm:"primaryKey;column:id"`
	LoanID             string          `gorm:"size:32;column:loan_id"`
	BorrowerID         string          `gorm:"size:32;column:borrower_id"`
	ShareRatio         decimal.Decimal `gorm:"column:share_ratio"`
	ShareAmount        decimal.Decimal `gorm:"column:share_amount"`
	Principal          decimal.Decimal `gorm:"column:principal"`
	Interest           decimal.Decimal `gorm:"column:interest"`
	TotalRepayment     decimal.Decimal `gorm:"column:total_repayment"`
	PaidAmount         decimal.Decimal `gorm:"column:paid_amount"`
	RemainingPrincipal decimal.Decimal `gorm:"column:remaining_principal"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
}

func (loanParticipantSQLite) TableName() string { return "loan_participants" }

type borrowerSQLite struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	BorrowerID  string          `gorm:"size:32;column:borrower_id"`
	Phone       string          `gorm:"column:phone"`
	Nickname    string          `gorm:"column:nickname"`
	CashBalance decimal.Decimal `gorm:"column:cash_balance"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (borrowerSQLite) TableName() string { return "borrowers" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&creditLimitSQLite{},
		&creditApplicationSQLite{},
		&productSQLite{},
		&loanApplicationSQLite{},
		&partnerShareSQLite{},
		&loanSQLite{},
		&loanParticipantSQLite{},
		&borrowerSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
