package application

import (
	"time"

	"github.com/shopspring/decimal"
)

type PublishProductInput struct {
	BankID          string          `json:"bank_id"`
	Name            string          `json:"name"`
	ProductCode     string          `json:"product_code"`
	MinCreditLimit  decimal.Decimal `json:"min_credit_limit"`
	MaxAmount       decimal.Decimal `json:"max_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TermMonths      int             `json:"term_months"`
	RepaymentMethod string          `json:"repayment_method"`
	Description     string          `json:"description"`
}

type ProductDTO struct {
	ProductID       string          `json:"product_id"`
	ProductCode     string          `json:"product_code"`
	BankID          string          `json:"bank_id"`
	Name            string          `json:"name"`
	MinCreditLimit  decimal.Decimal `json:"min_credit_limit"`
	MaxAmount       decimal.Decimal `json:"max_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TermMonths      int             `json:"term_months"`
	RepaymentMethod string          `json:"repayment_method"`
	Description     string          `json:"description,omitempty"`
	// Per-borrower view against their available limit.
	CanApply       bool            `json:"can_apply"`
	MaxApplyAmount decimal.Decimal `json:"max_apply_amount"`
}

type ApplySingleInput struct {
	BorrowerID      string          `json:"borrower_id"`
	ProductID       string          `json:"product_id"`
	Amount          decimal.Decimal `json:"amount"`
	Purpose         string          `json:"purpose"`
	RepaymentSource string          `json:"repayment_source"`
}

type ApplyJointInput struct {
	BorrowerID      string          `json:"borrower_id"`
	ProductID       string          `json:"product_id"`
	Amount          decimal.Decimal `json:"amount"`
	PartnerIDs      []string        `json:"partner_ids"`
	Purpose         string          `json:"purpose"`
	RepaymentSource string          `json:"repayment_source"`
}

type DecideInput struct {
	ApplicationID  string          `json:"application_id"`
	Approve        bool            `json:"approve"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	RejectReason   string          `json:"reject_reason"`
	DecidedBy      string          `json:"decided_by"`
}

type PartnerShareDTO struct {
	PartnerID   string          `json:"partner_id"`
	ShareRatio  decimal.Decimal `json:"share_ratio"`
	ShareAmount decimal.Decimal `json:"share_amount"`
	Status      string          `json:"status"`
}

type ApplicationDTO struct {
	ApplicationID   string            `json:"application_id"`
	BorrowerID      string            `json:"borrower_id"`
	ProductID       string            `json:"product_id"`
	Type            string            `json:"type"`
	Amount          decimal.Decimal   `json:"amount"`
	TermMonths      int               `json:"term_months"`
	Status          string            `json:"status"`
	ApprovedAmount  decimal.Decimal   `json:"approved_amount,omitempty"`
	RejectReason    string            `json:"reject_reason,omitempty"`
	InitiatorShare  decimal.Decimal   `json:"initiator_share,omitempty"`
	Partners        []PartnerShareDTO `json:"partners,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type CandidateDTO struct {
	BorrowerID     string          `json:"borrower_id"`
	Nickname       string          `json:"nickname"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
}

type RecommendationDTO struct {
	Type           string          `json:"type"` // single or joint
	Amount         decimal.Decimal `json:"amount"`
	InitiatorShare decimal.Decimal `json:"initiator_share"`
	PartnerShare   decimal.Decimal `json:"partner_share"`
	Candidates     []CandidateDTO  `json:"candidates,omitempty"`
}
