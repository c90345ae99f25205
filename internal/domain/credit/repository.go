package credit

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetLimit(ctx context.Context, borrowerID string) (*Limit, error)
	SaveLimit(ctx context.Context, l *Limit) error
	// PreDeduct atomically reserves amount: used_limit += amount,
	// available_limit -= amount, guarded by available_limit >= amount in a
	// single conditional update. Returns ErrInsufficientLimit when the guard
	// fails against the current row and ErrLimitConflict when the row moved
	// under the caller (safe to retry).
	PreDeduct(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	// Restore is the inverse of PreDeduct, used on rejection paths.
	Restore(ctx context.Context, borrowerID string, amount decimal.Decimal) error
	// Grant raises total_limit and available_limit by amount, creating an
	// active row when the borrower has none yet.
	Grant(ctx context.Context, borrowerID string, amount decimal.Decimal) error

	CreateApplication(ctx context.Context, a *Application) error
	GetApplicationByID(ctx context.Context, applicationID string) (*Application, error)
	GetApplicationByIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	GetPendingApplicationByBorrowerID(ctx context.Context, borrowerID string) (*Application, error)
	SaveApplication(ctx context.Context, a *Application) error
	ListPendingApplications(ctx context.Context) ([]Application, error)
	ListApplicationsByBorrowerID(ctx context.Context, borrowerID string) ([]Application, error)
}
