package partner

import (
	"time"

	"github.com/shopspring/decimal"
)

type DecisionInput struct {
	ApplicationID string `json:"application_id"`
	PartnerID     string `json:"partner_id"`
	Accept        bool   `json:"accept"`
}

type DecisionDTO struct {
	ApplicationID     string          `json:"application_id"`
	PartnerID         string          `json:"partner_id"`
	ShareAmount       decimal.Decimal `json:"share_amount"`
	ShareStatus       string          `json:"share_status"`
	ApplicationStatus string          `json:"application_status"`
}

type InvitationDTO struct {
	ApplicationID string          `json:"application_id"`
	InitiatorID   string          `json:"initiator_id"`
	ProductID     string          `json:"product_id"`
	Amount        decimal.Decimal `json:"amount"`
	ShareAmount   decimal.Decimal `json:"share_amount"`
	ShareRatio    decimal.Decimal `json:"share_ratio"`
	InvitedAt     time.Time       `json:"invited_at"`
}
