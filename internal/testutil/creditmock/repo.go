package creditmock

import (
	"context"

	domain "farmcredit-backend/internal/domain/credit"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies credit.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	GetLimitFn                          func(ctx context.Context, borrowerID string) (*domain.Limit, error)
	SaveLimitFn                         func(ctx context.Context, l *domain.Limit) error
	PreDeductFn                         func(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	RestoreFn                           func(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	GrantFn                             func(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	CreateApplicationFn                 func(ctx context.Context, a *domain.Application) error
	GetApplicationByIDFn                func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetApplicationByIDForUpdateFn       func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetPendingApplicationByBorrowerIDFn func(ctx context.Context, borrowerID string) (*domain.Application, error)
	SaveApplicationFn                   func(ctx context.Context, a *domain.Application) error
	ListPendingApplicationsFn           func(ctx context.Context) ([]domain.Application, error)
	ListApplicationsByBorrowerIDFn      func(ctx context.Context, borrowerID string) ([]domain.Application, error)
}

func (m *Repo) GetLimit(ctx context.Context, borrowerID string) (*domain.Limit, error) {
	if m.GetLimitFn != nil {
		return m.GetLimitFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) SaveLimit(ctx context.Context, l *domain.Limit) error {
	if m.SaveLimitFn != nil {
		return m.SaveLimitFn(ctx, l)
	}
	return nil
}
func (m *Repo) PreDeduct(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	if m.PreDeductFn != nil {
		return m.PreDeductFn(ctx, borrowerID, amount)
	}
	return nil
}
func (m *Repo) Restore(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	if m.RestoreFn != nil {
		return m.RestoreFn(ctx, borrowerID, amount)
	}
	return nil
}
func (m *Repo) Grant(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	if m.GrantFn != nil {
		return m.GrantFn(ctx, borrowerID, amount)
	}
	return nil
}
func (m *Repo) CreateApplication(ctx context.Context, a *domain.Application) error {
	if m.CreateApplicationFn != nil {
		return m.CreateApplicationFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetApplicationByIDFn != nil {
		return m.GetApplicationByIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetApplicationByIDForUpdate(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetApplicationByIDForUpdateFn != nil {
		return m.GetApplicationByIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetPendingApplicationByBorrowerID(ctx context.Context, borrowerID string) (*domain.Application, error) {
	if m.GetPendingApplicationByBorrowerIDFn != nil {
		return m.GetPendingApplicationByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) SaveApplication(ctx context.Context, a *domain.Application) error {
	if m.SaveApplicationFn != nil {
		return m.SaveApplicationFn(ctx, a)
	}
	return nil
}
func (m *Repo) ListPendingApplications(ctx context.Context) ([]domain.Application, error) {
	if m.ListPendingApplicationsFn != nil {
		return m.ListPendingApplicationsFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Repo) ListApplicationsByBorrowerID(ctx context.Context, borrowerID string) ([]domain.Application, error) {
	if m.ListApplicationsByBorrowerIDFn != nil {
		return m.ListApplicationsByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
