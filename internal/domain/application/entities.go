package application

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeSingle Type = "single"
	TypeJoint  Type = "joint"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusPendingPartners Status = "pending_partners"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusDisbursed       Status = "disbursed"
)

type PartnerStatus string

const (
	PartnerPendingInvitation PartnerStatus = "pending_invitation"
	PartnerAccepted          PartnerStatus = "accepted"
	PartnerRejected          PartnerStatus = "rejected"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrInvalidTransition = errors.New("loan application is not in a state that allows this operation")
	ErrAwaitingPartners  = errors.New("loan application is awaiting partner confirmation")
	ErrNotPartner        = errors.New("borrower is not an invited partner of this application")
	ErrPartnerResponded  = errors.New("partner has already responded to this invitation")
	ErrPartnerCount      = errors.New("joint application requires exactly one partner")
	ErrNoJointNeed       = errors.New("initiator limit already covers the amount, joint loan not needed")
	ErrAmountMismatch    = errors.New("disburse amount must equal the approved amount")
)

// LoanApplication is the workflow aggregate. Single applications prededuct the
// full amount at creation; joint applications prededuct share by share as
// partners confirm, so a row in pending_partners may hold partial reservations.
type LoanApplication struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string          `gorm:"size:32;uniqueIndex:ux_loan_applications_app_id" json:"application_id"`
	BorrowerID      string          `gorm:"size:32;index:idx_loan_applications_borrower" json:"borrower_id"`
	ProductID       string          `gorm:"size:32" json:"product_id"`
	Type            Type            `gorm:"size:16" json:"type"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	TermMonths      int             `json:"term_months"`
	Purpose         string          `gorm:"size:200" json:"purpose"`
	RepaymentSource string          `gorm:"size:200" json:"repayment_source"`
	Status          Status          `gorm:"size:24;default:'pending'" json:"status"`
	ApprovedAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"approved_amount"`
	ApprovedBy      string          `gorm:"size:32" json:"approved_by,omitempty"`
	RejectReason    string          `gorm:"size:200" json:"reject_reason,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// PartnerShare is one invited partner's slice of a joint application. The sum
// of accepted share amounts plus the initiator share equals the application
// amount by the time the application leaves pending_partners.
type PartnerShare struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string          `gorm:"size:32;index:idx_partner_shares_app" json:"application_id"`
	PartnerID     string          `gorm:"size:32;index:idx_partner_shares_partner" json:"partner_id"`
	ShareRatio    decimal.Decimal `gorm:"type:decimal(6,2)" json:"share_ratio"` // percent of amount
	ShareAmount   decimal.Decimal `gorm:"type:decimal(18,2)" json:"share_amount"`
	Status        PartnerStatus   `gorm:"size:24;default:'pending_invitation'" json:"status"`
	InvitedAt     time.Time       `json:"invited_at"`
	RespondedAt   *time.Time      `json:"responded_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PartnerShare) TableName() string { return "partner_shares" }

// ShareRatioOf computes a share's percentage of the application amount, ratio
// at 4 dp then expressed as a percent at 2 dp.
func ShareRatioOf(share, amount decimal.Decimal) decimal.Decimal {
	return share.DivRound(amount, 4).Mul(decimal.NewFromInt(100)).Round(2)
}
