package borrower

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	// CreditCash adds a disbursement to the borrower's cash balance in a
	// single unconditional update.
	CreditCash(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	// ListJointCandidates returns up to limit borrowers holding an active
	// credit limit, excluding the given borrower ids.
	ListJointCandidates(ctx context.Context, exclude []string, limit int) ([]Candidate, error)
}
