package application

import (
	"context"
	"errors"
	"time"

	domainApp "farmcredit-backend/internal/domain/application"
	domainBorrower "farmcredit-backend/internal/domain/borrower"
	domainCredit "farmcredit-backend/internal/domain/credit"
	domainProduct "farmcredit-backend/internal/domain/product"
	"farmcredit-backend/internal/domain/uow"
	usecaseCredit "farmcredit-backend/internal/usecase/credit"
	"farmcredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid loan application input")

const jointCandidateCap = 5

var validRepaymentMethods = map[string]struct{}{
	"equal_installment": {},
	"interest_first":    {},
	"bullet_repayment":  {},
}

type Usecase struct {
	products  domainProduct.Repository
	apps      domainApp.Repository
	credits   domainCredit.Repository
	borrowers domainBorrower.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(products domainProduct.Repository, apps domainApp.Repository, credits domainCredit.Repository, borrowers domainBorrower.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{products: products, apps: apps, credits: credits, borrowers: borrowers, uow: tx}
}

// PublishProduct creates a bank loan offering. Product names are unique.
func (u *Usecase) PublishProduct(ctx context.Context, in PublishProductInput) (*ProductDTO, error) {
	one, twenty := decimal.NewFromInt(1), decimal.NewFromInt(20)
	if in.BankID == "" || in.Name == "" ||
		in.MaxAmount.LessThanOrEqual(decimal.Zero) ||
		in.InterestRate.LessThan(one) || in.InterestRate.GreaterThan(twenty) ||
		in.TermMonths < 1 || in.TermMonths > 60 {
		return nil, ErrInvalidInput
	}
	if _, ok := validRepaymentMethods[in.RepaymentMethod]; !ok {
		return nil, ErrInvalidInput
	}

	existing, err := u.products.GetByName(ctx, in.Name)
	switch {
	case err == nil && existing != nil:
		return nil, domainProduct.ErrDuplicateName
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	p := &domainProduct.Product{
		ProductID:       id.New("PROD"),
		ProductCode:     in.ProductCode,
		BankID:          in.BankID,
		Name:            in.Name,
		MinCreditLimit:  in.MinCreditLimit,
		MaxAmount:       in.MaxAmount,
		InterestRate:    in.InterestRate,
		TermMonths:      in.TermMonths,
		RepaymentMethod: in.RepaymentMethod,
		Description:     in.Description,
		Status:          domainProduct.StatusActive,
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductDTO(p, decimal.Zero), nil
}

// ListProducts returns the active catalog annotated per borrower: whether
// their available limit clears the product floor and how much they could
// draw right now.
func (u *Usecase) ListProducts(ctx context.Context, borrowerID string) ([]ProductDTO, error) {
	products, err := u.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	available := decimal.Zero
	if borrowerID != "" {
		l, err := u.credits.GetLimit(ctx, borrowerID)
		switch {
		case err == nil:
			if l.Status == domainCredit.LimitActive {
				available = l.AvailableLimit
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, *toProductDTO(&products[i], available))
	}
	return out, nil
}

// ApplySingle prededucts the full amount up front; the reservation lives
// until the bank decides or the borrower's application is rejected. The
// borrower's available limit must clear the product floor before anything
// is reserved.
func (u *Usecase) ApplySingle(ctx context.Context, in ApplySingleInput) (*ApplicationDTO, error) {
	if in.BorrowerID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := activeProduct(ctx, r.Products, in.ProductID)
		if err != nil {
			return err
		}
		if in.Amount.GreaterThan(p.MaxAmount) {
			return ErrInvalidInput
		}

		l, err := activeLimit(ctx, r.Credits, in.BorrowerID)
		if err != nil {
			return err
		}
		if l.AvailableLimit.LessThan(p.MinCreditLimit) {
			return domainCredit.ErrBelowProductMin
		}

		if err := usecaseCredit.PreDeduct(ctx, r.Credits, in.BorrowerID, in.Amount); err != nil {
			return err
		}

		a := &domainApp.LoanApplication{
			ApplicationID:   id.New("LOAN"),
			BorrowerID:      in.BorrowerID,
			ProductID:       p.ProductID,
			Type:            domainApp.TypeSingle,
			Amount:          in.Amount,
			TermMonths:      p.TermMonths,
			Purpose:         in.Purpose,
			RepaymentSource: in.RepaymentSource,
			Status:          domainApp.StatusPending,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a, nil)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ApplyJoint splits the amount between the initiator's entire available
// limit and exactly one partner. The initiator must hold an active limit,
// and the two limits together must clear the product floor. Nothing is
// prededucted here; reservations happen share by share as partners confirm.
func (u *Usecase) ApplyJoint(ctx context.Context, in ApplyJointInput) (*ApplicationDTO, error) {
	if in.BorrowerID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	if len(in.PartnerIDs) != 1 {
		return nil, domainApp.ErrPartnerCount
	}
	partnerID := in.PartnerIDs[0]
	if partnerID == in.BorrowerID {
		return nil, ErrInvalidInput
	}
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := activeProduct(ctx, r.Products, in.ProductID)
		if err != nil {
			return err
		}
		if in.Amount.GreaterThan(p.MaxAmount) {
			return ErrInvalidInput
		}

		l, err := activeLimit(ctx, r.Credits, in.BorrowerID)
		if err != nil {
			return err
		}
		initiatorShare := l.AvailableLimit
		if initiatorShare.GreaterThanOrEqual(in.Amount) {
			return domainApp.ErrNoJointNeed
		}

		partnerShare := in.Amount.Sub(initiatorShare)
		pl, err := r.Credits.GetLimit(ctx, partnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainCredit.ErrInsufficientLimit
			}
			return err
		}
		if pl.Status != domainCredit.LimitActive {
			return domainCredit.ErrInsufficientLimit
		}
		if initiatorShare.Add(pl.AvailableLimit).LessThan(p.MinCreditLimit) {
			return domainCredit.ErrBelowProductMin
		}
		if pl.AvailableLimit.LessThan(partnerShare) {
			return domainCredit.ErrInsufficientLimit
		}

		a := &domainApp.LoanApplication{
			ApplicationID:   id.New("LOAN"),
			BorrowerID:      in.BorrowerID,
			ProductID:       p.ProductID,
			Type:            domainApp.TypeJoint,
			Amount:          in.Amount,
			TermMonths:      p.TermMonths,
			Purpose:         in.Purpose,
			RepaymentSource: in.RepaymentSource,
			Status:          domainApp.StatusPendingPartners,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}

		shares := []domainApp.PartnerShare{{
			ApplicationID: a.ApplicationID,
			PartnerID:     partnerID,
			ShareRatio:    domainApp.ShareRatioOf(partnerShare, in.Amount),
			ShareAmount:   partnerShare,
			Status:        domainApp.PartnerPendingInvitation,
			InvitedAt:     time.Now().UTC(),
		}}
		if err := r.Applications.CreatePartnerShares(ctx, shares); err != nil {
			return err
		}
		dto = toApplicationDTO(a, shares)
		dto.InitiatorShare = initiatorShare
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decide approves or rejects a loan application. An application still in
// pending_partners cannot be approved; rejection from any live state
// restores whatever was already prededucted.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.LoanApplication) error {
		now := time.Now().UTC()

		if in.Approve {
			switch a.Status {
			case domainApp.StatusPending:
			case domainApp.StatusPendingPartners:
				return domainApp.ErrAwaitingPartners
			default:
				return domainApp.ErrInvalidTransition
			}

			approved := in.ApprovedAmount
			if approved.IsZero() {
				approved = a.Amount
			}
			if approved.LessThanOrEqual(decimal.Zero) || approved.GreaterThan(a.Amount) {
				return ErrInvalidInput
			}
			a.Status = domainApp.StatusApproved
			a.ApprovedAmount = approved
			a.ApprovedBy = in.DecidedBy
			a.DecidedAt = &now
		} else {
			switch a.Status {
			case domainApp.StatusPending, domainApp.StatusPendingPartners, domainApp.StatusApproved:
			default:
				return domainApp.ErrInvalidTransition
			}
			if err := restoreReservations(ctx, r, a); err != nil {
				return err
			}
			a.Status = domainApp.StatusRejected
			a.RejectReason = in.RejectReason
			a.ApprovedBy = in.DecidedBy
			a.DecidedAt = &now
		}

		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a, nil)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// restoreReservations undoes every prededuction recorded against the
// application: accepted partner shares, plus the initiator's remainder once
// the application has left pending_partners.
func restoreReservations(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) error {
	if a.Type == domainApp.TypeSingle {
		return r.Credits.Restore(ctx, a.BorrowerID, a.Amount)
	}

	shares, err := r.Applications.GetPartnerShares(ctx, a.ApplicationID)
	if err != nil {
		return err
	}
	partnerTotal := decimal.Zero
	for i := range shares {
		partnerTotal = partnerTotal.Add(shares[i].ShareAmount)
		if shares[i].Status != domainApp.PartnerAccepted {
			continue
		}
		if err := r.Credits.Restore(ctx, shares[i].PartnerID, shares[i].ShareAmount); err != nil {
			return err
		}
	}
	if a.Status == domainApp.StatusPending || a.Status == domainApp.StatusApproved {
		// all partners had confirmed, so the initiator share was reserved too
		if err := r.Credits.Restore(ctx, a.BorrowerID, a.Amount.Sub(partnerTotal)); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApp.ErrNotFound
		}
		return nil, err
	}
	shares, err := u.apps.GetPartnerShares(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return toApplicationDTO(a, shares), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status domainApp.Status) ([]ApplicationDTO, error) {
	apps, err := u.apps.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toApplicationDTO(&apps[i], nil))
	}
	return out, nil
}

// ListJointCandidates returns up to five borrowers holding an active limit
// who could carry a share.
func (u *Usecase) ListJointCandidates(ctx context.Context, borrowerID string) ([]CandidateDTO, error) {
	cs, err := u.borrowers.ListJointCandidates(ctx, []string{borrowerID}, jointCandidateCap)
	if err != nil {
		return nil, err
	}
	out := make([]CandidateDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, CandidateDTO{BorrowerID: c.BorrowerID, Nickname: c.Nickname, AvailableLimit: c.AvailableLimit})
	}
	return out, nil
}

// Recommend suggests single when the borrower's own limit covers the
// amount, joint with candidate partners otherwise.
func (u *Usecase) Recommend(ctx context.Context, borrowerID string, amount decimal.Decimal) (*RecommendationDTO, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	available := decimal.Zero
	l, err := u.credits.GetLimit(ctx, borrowerID)
	switch {
	case err == nil:
		if l.Status == domainCredit.LimitActive {
			available = l.AvailableLimit
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if available.GreaterThanOrEqual(amount) {
		return &RecommendationDTO{
			Type:           string(domainApp.TypeSingle),
			Amount:         amount,
			InitiatorShare: amount,
			PartnerShare:   decimal.Zero,
		}, nil
	}

	candidates, err := u.ListJointCandidates(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return &RecommendationDTO{
		Type:           string(domainApp.TypeJoint),
		Amount:         amount,
		InitiatorShare: available,
		PartnerShare:   amount.Sub(available),
		Candidates:     candidates,
	}, nil
}

// activeLimit fetches the borrower's credit limit, treating absence and
// non-active rows the same way.
func activeLimit(ctx context.Context, repo domainCredit.Repository, borrowerID string) (*domainCredit.Limit, error) {
	l, err := repo.GetLimit(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainCredit.ErrNoActiveLimit
		}
		return nil, err
	}
	if l.Status != domainCredit.LimitActive {
		return nil, domainCredit.ErrNoActiveLimit
	}
	return l, nil
}

func activeProduct(ctx context.Context, repo domainProduct.Repository, productID string) (*domainProduct.Product, error) {
	p, err := repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProduct.ErrNotFound
		}
		return nil, err
	}
	if p.Status != domainProduct.StatusActive {
		return nil, domainProduct.ErrNotFound
	}
	return p, nil
}

func toProductDTO(p *domainProduct.Product, available decimal.Decimal) *ProductDTO {
	canApply := available.GreaterThanOrEqual(p.MinCreditLimit) && available.GreaterThan(decimal.Zero)
	maxApply := decimal.Min(p.MaxAmount, available)
	return &ProductDTO{
		ProductID:       p.ProductID,
		ProductCode:     p.ProductCode,
		BankID:          p.BankID,
		Name:            p.Name,
		MinCreditLimit:  p.MinCreditLimit,
		MaxAmount:       p.MaxAmount,
		InterestRate:    p.InterestRate,
		TermMonths:      p.TermMonths,
		RepaymentMethod: p.RepaymentMethod,
		Description:     p.Description,
		CanApply:        canApply,
		MaxApplyAmount:  maxApply,
	}
}

func toApplicationDTO(a *domainApp.LoanApplication, shares []domainApp.PartnerShare) *ApplicationDTO {
	dto := &ApplicationDTO{
		ApplicationID:  a.ApplicationID,
		BorrowerID:     a.BorrowerID,
		ProductID:      a.ProductID,
		Type:           string(a.Type),
		Amount:         a.Amount,
		TermMonths:     a.TermMonths,
		Status:         string(a.Status),
		ApprovedAmount: a.ApprovedAmount,
		RejectReason:   a.RejectReason,
		CreatedAt:      a.CreatedAt,
	}
	for i := range shares {
		dto.Partners = append(dto.Partners, PartnerShareDTO{
			PartnerID:   shares[i].PartnerID,
			ShareRatio:  shares[i].ShareRatio,
			ShareAmount: shares[i].ShareAmount,
			Status:      string(shares[i].Status),
		})
	}
	return dto
}
