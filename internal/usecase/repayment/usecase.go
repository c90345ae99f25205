package repayment

import (
	"context"
	"errors"
	"time"

	domainLoan "farmcredit-backend/internal/domain/loan"
	"farmcredit-backend/internal/domain/uow"
	"farmcredit-backend/pkg/amortize"
	"farmcredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid repayment input")

// dailyPenalty accrues per day the next payment date is missed.
var dailyPenalty = decimal.NewFromInt(100)

type Usecase struct {
	loans domainLoan.Repository
	uow   uow.UnitOfWork

	// now is swappable in tests
	now func() time.Time
}

func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// Repay applies a payment to the loan inside one loan-locked transaction.
// Overdue penalty accrues first, then the payment is split interest-first
// against the current monthly interest on the remaining principal.
func (u *Usecase) Repay(ctx context.Context, in RepayInput) (*RepaymentDTO, error) {
	if in.Amount.IsNegative() {
		return nil, ErrInvalidInput
	}
	var dto *RepaymentDTO

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		switch l.Status {
		case domainLoan.StatusClosed:
			return domainLoan.ErrAlreadySettled
		case domainLoan.StatusFrozen:
			return domainLoan.ErrFrozen
		}

		isParticipant, err := u.payerAllowed(ctx, r, l, in.PayerID)
		if err != nil {
			return err
		}

		now := u.now()
		penalty := decimal.Zero
		if now.After(l.NextPaymentDate) {
			days := int(now.Sub(l.NextPaymentDate).Hours() / 24)
			if days > 0 {
				penalty = dailyPenalty.Mul(decimal.NewFromInt(int64(days)))
				l.OverdueDays += days
				l.OverdueAmount = l.OverdueAmount.Add(penalty)
				l.TotalRepayment = l.TotalRepayment.Add(penalty)
			}
		}

		amount := in.Amount
		if amount.IsZero() {
			amount = l.NextPaymentAmount
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidInput
		}

		monthlyInterest := amortize.MonthlyInterest(l.RemainingPrincipal, l.InterestRate)
		interestPortion := decimal.Min(amount, monthlyInterest)
		principalPortion := amount.Sub(interestPortion)

		l.RemainingPrincipal = l.RemainingPrincipal.Sub(principalPortion)
		if l.RemainingPrincipal.IsNegative() {
			l.RemainingPrincipal = decimal.Zero
		}
		l.PaidAmount = l.PaidAmount.Add(amount)
		l.PaidInterest = l.PaidInterest.Add(interestPortion)
		l.PaidPrincipal = l.PaidPrincipal.Add(principalPortion)

		if l.PaidAmount.GreaterThanOrEqual(l.TotalRepayment) {
			l.Status = domainLoan.StatusClosed
			l.ClosedAt = &now
			l.RemainingPrincipal = decimal.Zero
			l.NextPaymentAmount = decimal.Zero
		} else {
			l.NextPaymentDate = l.NextPaymentDate.AddDate(0, 0, 30)
			l.CurrentPeriod++
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if isParticipant {
			if err := r.Loans.AddParticipantPayment(ctx, l.LoanID, in.PayerID, amount); err != nil {
				return err
			}
		}

		dto = &RepaymentDTO{
			RepaymentID:        id.New("REP"),
			LoanID:             l.LoanID,
			PayerID:            in.PayerID,
			Amount:             amount,
			InterestPortion:    interestPortion,
			PrincipalPortion:   principalPortion,
			PenaltyAccrued:     penalty,
			RemainingPrincipal: l.RemainingPrincipal,
			LoanStatus:         string(l.Status),
			NextPaymentAmount:  l.NextPaymentAmount,
		}
		if l.Status != domainLoan.StatusClosed {
			next := l.NextPaymentDate
			dto.NextPaymentDate = &next
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// payerAllowed reports whether the payer may touch this loan and whether
// their payment should also accrue on a participant sub-ledger. The
// principal borrower pays against the loan directly, never a sub-ledger,
// even on joint loans where they hold a participant row.
func (u *Usecase) payerAllowed(ctx context.Context, r uow.Repos, l *domainLoan.Loan, payerID string) (isParticipant bool, err error) {
	if payerID == l.BorrowerID {
		return false, nil
	}
	if !l.Joint {
		return false, domainLoan.ErrNotParticipant
	}
	if _, err := r.Loans.GetParticipant(ctx, l.LoanID, payerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domainLoan.ErrNotParticipant
		}
		return false, err
	}
	return true, nil
}

// GetSchedule projects the repayment plan plus the loan's live state. Only
// the borrower or a joint participant may look.
func (u *Usecase) GetSchedule(ctx context.Context, loanID, requesterID string) (*ScheduleDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	if requesterID != l.BorrowerID {
		if !l.Joint {
			return nil, domainLoan.ErrNotParticipant
		}
		if _, err := u.loans.GetParticipant(ctx, loanID, requesterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainLoan.ErrNotParticipant
			}
			return nil, err
		}
	}

	terms := amortize.Terms{Principal: l.DisburseAmount, AnnualRate: l.InterestRate, Months: l.TermMonths}
	entries := amortize.Schedule(terms, l.FirstPaymentDate, l.CurrentPeriod, u.now())

	return &ScheduleDTO{
		LoanID:             l.LoanID,
		Status:             string(l.Status),
		DisburseAmount:     l.DisburseAmount,
		InterestRate:       l.InterestRate,
		TermMonths:         l.TermMonths,
		TotalRepayment:     l.TotalRepayment,
		PaidAmount:         l.PaidAmount,
		RemainingPrincipal: l.RemainingPrincipal,
		CurrentPeriod:      l.CurrentPeriod,
		NextPaymentDate:    l.NextPaymentDate,
		NextPaymentAmount:  l.NextPaymentAmount,
		OverdueDays:        l.OverdueDays,
		OverdueAmount:      l.OverdueAmount,
		Entries:            entries,
	}, nil
}

// ListLoans returns the borrower's loans, newest first.
func (u *Usecase) ListLoans(ctx context.Context, borrowerID string) ([]LoanSummaryDTO, error) {
	loans, err := u.loans.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanSummaryDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		out = append(out, LoanSummaryDTO{
			LoanID:             l.LoanID,
			ProductID:          l.ProductID,
			DisburseAmount:     l.DisburseAmount,
			TotalRepayment:     l.TotalRepayment,
			PaidAmount:         l.PaidAmount,
			RemainingPrincipal: l.RemainingPrincipal,
			NextPaymentDate:    l.NextPaymentDate,
			NextPaymentAmount:  l.NextPaymentAmount,
			Joint:              l.Joint,
			Status:             string(l.Status),
		})
	}
	return out, nil
}
