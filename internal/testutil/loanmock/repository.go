package loanmock

import (
	"context"

	domain "farmcredit-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn           func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                  func(ctx context.Context, l *domain.Loan) error
	ListByBorrowerIDFn      func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	CreateParticipantsFn    func(ctx context.Context, ps []domain.Participant) error
	GetParticipantsFn       func(ctx context.Context, loanID string) ([]domain.Participant, error)
	GetParticipantFn        func(ctx context.Context, loanID, borrowerID string) (*domain.Participant, error)
	AddParticipantPaymentFn func(ctx context.Context, loanID, borrowerID string, amount decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) CreateParticipants(ctx context.Context, ps []domain.Participant) error {
	if m.CreateParticipantsFn != nil {
		return m.CreateParticipantsFn(ctx, ps)
	}
	return nil
}
func (m *Repo) GetParticipants(ctx context.Context, loanID string) ([]domain.Participant, error) {
	if m.GetParticipantsFn != nil {
		return m.GetParticipantsFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetParticipant(ctx context.Context, loanID, borrowerID string) (*domain.Participant, error) {
	if m.GetParticipantFn != nil {
		return m.GetParticipantFn(ctx, loanID, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) AddParticipantPayment(ctx context.Context, loanID, borrowerID string, amount decimal.Decimal) error {
	if m.AddParticipantPaymentFn != nil {
		return m.AddParticipantPaymentFn(ctx, loanID, borrowerID, amount)
	}
	return nil
}
