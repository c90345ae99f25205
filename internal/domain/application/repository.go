package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate locks the application row for the duration
	// of the surrounding transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	ListByStatus(ctx context.Context, status Status) ([]LoanApplication, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]LoanApplication, error)

	CreatePartnerShares(ctx context.Context, shares []PartnerShare) error
	GetPartnerShares(ctx context.Context, applicationID string) ([]PartnerShare, error)
	GetPartnerShare(ctx context.Context, applicationID, partnerID string) (*PartnerShare, error)
	SavePartnerShare(ctx context.Context, s *PartnerShare) error
	// ListPendingInvitations returns shares still awaiting the partner's
	// response, across applications.
	ListPendingInvitations(ctx context.Context, partnerID string) ([]PartnerShare, error)
}
