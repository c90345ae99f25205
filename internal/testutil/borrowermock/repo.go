package borrowermock

import (
	"context"

	domain "farmcredit-backend/internal/domain/borrower"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies borrower.Repository.
type Repo struct {
	GetByBorrowerIDFn     func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	CreditCashFn          func(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	ListJointCandidatesFn func(ctx context.Context, exclude []string, limit int) ([]domain.Candidate, error)
}

func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) CreditCash(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	if m.CreditCashFn != nil {
		return m.CreditCashFn(ctx, borrowerID, amount)
	}
	return nil
}
func (m *Repo) ListJointCandidates(ctx context.Context, exclude []string, limit int) ([]domain.Candidate, error) {
	if m.ListJointCandidatesFn != nil {
		return m.ListJointCandidatesFn(ctx, exclude, limit)
	}
	return nil, context.Canceled
}
