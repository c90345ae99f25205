package appmock

import (
	"context"

	domain "farmcredit-backend/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.LoanApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	SaveFn                        func(ctx context.Context, a *domain.LoanApplication) error
	ListByStatusFn                func(ctx context.Context, status domain.Status) ([]domain.LoanApplication, error)
	ListByBorrowerIDFn            func(ctx context.Context, borrowerID string) ([]domain.LoanApplication, error)
	CreatePartnerSharesFn         func(ctx context.Context, shares []domain.PartnerShare) error
	GetPartnerSharesFn            func(ctx context.Context, applicationID string) ([]domain.PartnerShare, error)
	GetPartnerShareFn             func(ctx context.Context, applicationID, partnerID string) (*domain.PartnerShare, error)
	SavePartnerShareFn            func(ctx context.Context, s *domain.PartnerShare) error
	ListPendingInvitationsFn      func(ctx context.Context, partnerID string) ([]domain.PartnerShare, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.LoanApplication, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]domain.LoanApplication, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) CreatePartnerShares(ctx context.Context, shares []domain.PartnerShare) error {
	if m.CreatePartnerSharesFn != nil {
		return m.CreatePartnerSharesFn(ctx, shares)
	}
	return nil
}
func (m *Repo) GetPartnerShares(ctx context.Context, applicationID string) ([]domain.PartnerShare, error) {
	if m.GetPartnerSharesFn != nil {
		return m.GetPartnerSharesFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetPartnerShare(ctx context.Context, applicationID, partnerID string) (*domain.PartnerShare, error) {
	if m.GetPartnerShareFn != nil {
		return m.GetPartnerShareFn(ctx, applicationID, partnerID)
	}
	return nil, context.Canceled
}
func (m *Repo) SavePartnerShare(ctx context.Context, s *domain.PartnerShare) error {
	if m.SavePartnerShareFn != nil {
		return m.SavePartnerShareFn(ctx, s)
	}
	return nil
}
func (m *Repo) ListPendingInvitations(ctx context.Context, partnerID string) ([]domain.PartnerShare, error) {
	if m.ListPendingInvitationsFn != nil {
		return m.ListPendingInvitationsFn(ctx, partnerID)
	}
	return nil, context.Canceled
}
