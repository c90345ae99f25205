package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction. Repayments serialize on this lock.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)

	CreateParticipants(ctx context.Context, ps []Participant) error
	GetParticipants(ctx context.Context, loanID string) ([]Participant, error)
	GetParticipant(ctx context.Context, loanID, borrowerID string) (*Participant, error)
	// AddParticipantPayment accrues a payment onto one participant's slice.
	AddParticipantPayment(ctx context.Context, loanID, borrowerID string, amount decimal.Decimal) error
}
