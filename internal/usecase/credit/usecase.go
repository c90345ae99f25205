package credit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainCredit "farmcredit-backend/internal/domain/credit"
	"farmcredit-backend/internal/domain/uow"
	"farmcredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxApplyAmount = decimal.NewFromInt(1_000_000)

var validProofTypes = map[string]struct{}{
	"land_certificate":     {},
	"property_certificate": {},
	"income_proof":         {},
	"business_license":     {},
	"other":                {},
}

var ErrInvalidInput = errors.New("invalid credit application input")

type Usecase struct {
	repo domainCredit.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(credits domainCredit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: credits, uow: tx}
}

// PreDeduct reserves amount against the borrower's available limit, retrying
// once when the row moved underneath the first conditional update. Callers
// inside a transaction pass the transactional repo.
func PreDeduct(ctx context.Context, repo domainCredit.Repository, borrowerID string, amount decimal.Decimal) error {
	err := repo.PreDeduct(ctx, borrowerID, amount)
	if errors.Is(err, domainCredit.ErrLimitConflict) {
		err = repo.PreDeduct(ctx, borrowerID, amount)
	}
	return err
}

// Apply files a credit-limit application. One pending application per
// borrower at a time.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplicationDTO, error) {
	if in.BorrowerID == "" || in.Amount.LessThanOrEqual(decimal.Zero) || in.Amount.GreaterThan(maxApplyAmount) {
		return nil, ErrInvalidInput
	}
	if _, ok := validProofTypes[in.ProofType]; !ok {
		return nil, ErrInvalidInput
	}

	pending, err := u.repo.GetPendingApplicationByBorrowerID(ctx, in.BorrowerID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", domainCredit.ErrDuplicatePending, pending.ApplicationID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	images, err := json.Marshal(in.ProofImages)
	if err != nil {
		return nil, err
	}

	a := &domainCredit.Application{
		ApplicationID: id.New("APP"),
		BorrowerID:    in.BorrowerID,
		ProofType:     in.ProofType,
		ProofImages:   string(images),
		ApplyAmount:   in.Amount,
		Description:   in.Description,
		Status:        domainCredit.ApplicationPending,
	}
	if err := u.repo.CreateApplication(ctx, a); err != nil {
		return nil, err
	}
	return toApplicationDTO(a), nil
}

// Decide approves or rejects a pending application. Approval grants the
// amount onto the borrower's limit in the same transaction.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Credits.GetApplicationByIDForUpdate(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainCredit.ErrApplicationNotFound
			}
			return err
		}
		if a.Status != domainCredit.ApplicationPending {
			return domainCredit.ErrInvalidTransition
		}

		now := time.Now().UTC()
		if in.Approve {
			granted := in.ApprovedAmount
			if granted.IsZero() {
				granted = a.ApplyAmount
			}
			if granted.LessThanOrEqual(decimal.Zero) || granted.GreaterThan(a.ApplyAmount) {
				return ErrInvalidInput
			}
			a.Status = domainCredit.ApplicationApproved
			a.ApprovedAmount = granted
			a.ApprovedBy = in.DecidedBy
			a.DecidedAt = &now

			if err := r.Credits.Grant(ctx, a.BorrowerID, granted); err != nil {
				return err
			}
		} else {
			a.Status = domainCredit.ApplicationRejected
			a.RejectReason = in.RejectReason
			a.ApprovedBy = in.DecidedBy
			a.DecidedAt = &now
		}

		if err := r.Credits.SaveApplication(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// QueryLimit never errors on absence: borrowers without a granted limit get
// the zero row with status no_limit.
func (u *Usecase) QueryLimit(ctx context.Context, borrowerID string) (*LimitDTO, error) {
	l, err := u.repo.GetLimit(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l = domainCredit.ZeroLimit(borrowerID)
		} else {
			return nil, err
		}
	}
	return &LimitDTO{
		BorrowerID:     l.BorrowerID,
		TotalLimit:     l.TotalLimit,
		UsedLimit:      l.UsedLimit,
		AvailableLimit: l.AvailableLimit,
		Currency:       l.Currency,
		Status:         string(l.Status),
		LastUpdated:    l.LastUpdated,
	}, nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]ApplicationDTO, error) {
	apps, err := u.repo.ListPendingApplications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toApplicationDTO(&apps[i]))
	}
	return out, nil
}

func toApplicationDTO(a *domainCredit.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:  a.ApplicationID,
		BorrowerID:     a.BorrowerID,
		ProofType:      a.ProofType,
		ApplyAmount:    a.ApplyAmount,
		Status:         string(a.Status),
		ApprovedAmount: a.ApprovedAmount,
		RejectReason:   a.RejectReason,
		CreatedAt:      a.CreatedAt,
	}
}
