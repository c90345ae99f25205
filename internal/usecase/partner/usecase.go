package partner

import (
	"context"
	"errors"
	"time"

	domainApp "farmcredit-backend/internal/domain/application"
	"farmcredit-backend/internal/domain/uow"
	usecaseCredit "farmcredit-backend/internal/usecase/credit"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	apps domainApp.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(apps domainApp.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, uow: tx}
}

// Decide records a partner's answer to a joint-loan invitation. Accepting
// prededucts the partner's recorded share; when the last partner has
// accepted, the initiator's remainder is prededucted too and the application
// moves to pending. Declining rejects the whole application and releases any
// shares already reserved by other partners.
func (u *Usecase) Decide(ctx context.Context, in DecisionInput) (*DecisionDTO, error) {
	var dto *DecisionDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if a.Status != domainApp.StatusPendingPartners {
			return domainApp.ErrInvalidTransition
		}

		share, err := r.Applications.GetPartnerShare(ctx, a.ApplicationID, in.PartnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainApp.ErrNotPartner
			}
			return err
		}
		if share.Status != domainApp.PartnerPendingInvitation {
			return domainApp.ErrPartnerResponded
		}

		now := time.Now().UTC()
		share.RespondedAt = &now

		if in.Accept {
			if err := usecaseCredit.PreDeduct(ctx, r.Credits, share.PartnerID, share.ShareAmount); err != nil {
				return err
			}
			share.Status = domainApp.PartnerAccepted
			if err := r.Applications.SavePartnerShare(ctx, share); err != nil {
				return err
			}

			shares, err := r.Applications.GetPartnerShares(ctx, a.ApplicationID)
			if err != nil {
				return err
			}
			if allAccepted(shares) {
				// last partner in: reserve the initiator's remainder and hand
				// the application to the bank
				initiatorShare := a.Amount.Sub(sumShares(shares))
				if initiatorShare.IsPositive() {
					if err := usecaseCredit.PreDeduct(ctx, r.Credits, a.BorrowerID, initiatorShare); err != nil {
						return err
					}
				}
				a.Status = domainApp.StatusPending
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
			}
		} else {
			share.Status = domainApp.PartnerRejected
			if err := r.Applications.SavePartnerShare(ctx, share); err != nil {
				return err
			}

			// release shares other partners had already reserved
			shares, err := r.Applications.GetPartnerShares(ctx, a.ApplicationID)
			if err != nil {
				return err
			}
			for i := range shares {
				if shares[i].Status != domainApp.PartnerAccepted {
					continue
				}
				if err := r.Credits.Restore(ctx, shares[i].PartnerID, shares[i].ShareAmount); err != nil {
					return err
				}
			}

			a.Status = domainApp.StatusRejected
			a.RejectReason = "partner declined the invitation"
			a.DecidedAt = &now
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
		}

		dto = &DecisionDTO{
			ApplicationID:     a.ApplicationID,
			PartnerID:         share.PartnerID,
			ShareAmount:       share.ShareAmount,
			ShareStatus:       string(share.Status),
			ApplicationStatus: string(a.Status),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListInvitations returns the joint-loan invitations still waiting on the
// partner's answer.
func (u *Usecase) ListInvitations(ctx context.Context, partnerID string) ([]InvitationDTO, error) {
	shares, err := u.apps.ListPendingInvitations(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	out := make([]InvitationDTO, 0, len(shares))
	for i := range shares {
		a, err := u.apps.GetByApplicationID(ctx, shares[i].ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if a.Status != domainApp.StatusPendingPartners {
			continue
		}
		out = append(out, InvitationDTO{
			ApplicationID: a.ApplicationID,
			InitiatorID:   a.BorrowerID,
			ProductID:     a.ProductID,
			Amount:        a.Amount,
			ShareAmount:   shares[i].ShareAmount,
			ShareRatio:    shares[i].ShareRatio,
			InvitedAt:     shares[i].InvitedAt,
		})
	}
	return out, nil
}

func allAccepted(shares []domainApp.PartnerShare) bool {
	for i := range shares {
		if shares[i].Status != domainApp.PartnerAccepted {
			return false
		}
	}
	return len(shares) > 0
}

func sumShares(shares []domainApp.PartnerShare) decimal.Decimal {
	total := decimal.Zero
	for i := range shares {
		total = total.Add(shares[i].ShareAmount)
	}
	return total
}
