package disbursement

import (
	"context"
	"errors"
	"time"

	domainApp "farmcredit-backend/internal/domain/application"
	domainLoan "farmcredit-backend/internal/domain/loan"
	domainProduct "farmcredit-backend/internal/domain/product"
	"farmcredit-backend/internal/domain/uow"
	"farmcredit-backend/pkg/amortize"
	"farmcredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid disbursement input")

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx}
}

// Disburse pays out an approved application and opens the loan. The paid
// amount must equal the approved amount; there is no staged disbursement.
// Joint applications get one participant sub-ledger per confirmed borrower,
// with shares scaled by the approval ratio so they sum to the paid amount
// exactly.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*DisbursementDTO, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	var dto *DisbursementDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if a.Status != domainApp.StatusApproved {
			return domainApp.ErrInvalidTransition
		}
		if !in.Amount.Equal(a.ApprovedAmount) {
			return domainApp.ErrAmountMismatch
		}

		p, err := r.Products.GetByProductID(ctx, a.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainProduct.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		approvalRatio := in.Amount.DivRound(a.Amount, 4)
		terms := amortize.Terms{Principal: in.Amount, AnnualRate: p.InterestRate, Months: a.TermMonths}
		firstPayment := now.AddDate(0, 1, 0)

		l := &domainLoan.Loan{
			LoanID:             id.New("LOAN"),
			ApplicationID:      a.ApplicationID,
			BorrowerID:         a.BorrowerID,
			ProductID:          p.ProductID,
			DisburseAmount:     in.Amount,
			DisburseDate:       now,
			DisburseMethod:     in.Method,
			Remarks:            in.Remarks,
			InterestRate:       p.InterestRate,
			TermMonths:         a.TermMonths,
			RepaymentMethod:    p.RepaymentMethod,
			Joint:              a.Type == domainApp.TypeJoint,
			TotalRepayment:     amortize.TotalRepayment(terms),
			CurrentPeriod:      1,
			RemainingPrincipal: in.Amount,
			FirstPaymentDate:   firstPayment,
			NextPaymentDate:    firstPayment,
			NextPaymentAmount:  amortize.MonthlyPayment(terms),
			Status:             domainLoan.StatusActive,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		var participants []ParticipantDTO
		if l.Joint {
			participants, err = u.openParticipants(ctx, r, a, l, approvalRatio)
			if err != nil {
				return err
			}
		} else {
			if err := r.Borrowers.CreditCash(ctx, a.BorrowerID, in.Amount); err != nil {
				return err
			}
		}

		a.Status = domainApp.StatusDisbursed
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = &DisbursementDTO{
			DisbursementID:    id.New("DIS"),
			LoanID:            l.LoanID,
			ApplicationID:     a.ApplicationID,
			Amount:            in.Amount,
			ApprovalRatio:     approvalRatio,
			TotalRepayment:    l.TotalRepayment,
			NextPaymentDate:   l.NextPaymentDate,
			NextPaymentAmount: l.NextPaymentAmount,
			Participants:      participants,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// openParticipants scales every confirmed share by the approval ratio and
// opens one sub-ledger per participant. The initiator's slice is the
// remainder after scaled partner shares, so the slices always sum to the
// disbursed amount.
func (u *Usecase) openParticipants(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication, l *domainLoan.Loan, ratio decimal.Decimal) ([]ParticipantDTO, error) {
	shares, err := r.Applications.GetPartnerShares(ctx, a.ApplicationID)
	if err != nil {
		return nil, err
	}

	type slice struct {
		borrowerID string
		amount     decimal.Decimal
	}
	slices := make([]slice, 0, len(shares)+1)
	partnerTotal := decimal.Zero
	for i := range shares {
		if shares[i].Status != domainApp.PartnerAccepted {
			continue
		}
		scaled := shares[i].ShareAmount.Mul(ratio).Round(2)
		partnerTotal = partnerTotal.Add(scaled)
		slices = append(slices, slice{borrowerID: shares[i].PartnerID, amount: scaled})
	}
	// initiator absorbs the rounding remainder
	slices = append(slices, slice{borrowerID: a.BorrowerID, amount: l.DisburseAmount.Sub(partnerTotal)})

	ps := make([]domainLoan.Participant, 0, len(slices))
	dtos := make([]ParticipantDTO, 0, len(slices))
	for _, s := range slices {
		terms := amortize.Terms{Principal: s.amount, AnnualRate: l.InterestRate, Months: l.TermMonths}
		interest := amortize.TotalInterest(terms)
		ps = append(ps, domainLoan.Participant{
			LoanID:             l.LoanID,
			BorrowerID:         s.borrowerID,
			ShareRatio:         domainApp.ShareRatioOf(s.amount, l.DisburseAmount),
			ShareAmount:        s.amount,
			Principal:          s.amount,
			Interest:           interest,
			TotalRepayment:     s.amount.Add(interest),
			RemainingPrincipal: s.amount,
		})
		dtos = append(dtos, ParticipantDTO{
			BorrowerID:     s.borrowerID,
			ShareRatio:     domainApp.ShareRatioOf(s.amount, l.DisburseAmount),
			ShareAmount:    s.amount,
			TotalRepayment: s.amount.Add(interest),
		})
		if err := r.Borrowers.CreditCash(ctx, s.borrowerID, s.amount); err != nil {
			return nil, err
		}
	}
	if err := r.Loans.CreateParticipants(ctx, ps); err != nil {
		return nil, err
	}
	return dtos, nil
}
