// Package amortize holds the loan arithmetic: simple non-compounding interest
// over the whole term, split into equal monthly payments. All money is
// decimal at 2 dp; intermediate rates carry 4 dp (annual fraction) or 6 dp
// (monthly fraction) before the final rounding.
package amortize

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Terms are the inputs every calculation shares. AnnualRate is a percentage,
// e.g. 8.5 for 8.5 %/yr.
type Terms struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	Months     int
}

// TotalInterest is principal * rate% for one year, rounded, then scaled by
// the term in months. Interest does not compound.
func TotalInterest(t Terms) decimal.Decimal {
	annual := t.Principal.Mul(t.AnnualRate).Div(hundred).Round(2)
	return annual.Mul(decimal.NewFromInt(int64(t.Months))).Div(twelve).Round(2)
}

// TotalRepayment is principal plus total interest.
func TotalRepayment(t Terms) decimal.Decimal {
	return t.Principal.Add(TotalInterest(t))
}

// MonthlyPayment spreads the total repayment evenly across the term.
func MonthlyPayment(t Terms) decimal.Decimal {
	return TotalRepayment(t).DivRound(decimal.NewFromInt(int64(t.Months)), 2)
}

// MonthlyInterest is one month's interest on the remaining principal.
func MonthlyInterest(remaining, annualRate decimal.Decimal) decimal.Decimal {
	return remaining.Mul(annualRate.DivRound(hundred, 4)).DivRound(twelve, 2)
}

type EntryStatus string

const (
	EntryPaid    EntryStatus = "paid"
	EntryPending EntryStatus = "pending"
	EntryOverdue EntryStatus = "overdue"
)

type Entry struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           EntryStatus     `json:"status"`
}

// Schedule projects the full repayment plan. Each period's interest accrues
// on the balance entering the period at the 6 dp monthly rate; the final
// period's principal force-balances so the schedule closes at exactly zero.
// Periods before currentPeriod are paid; the current period is overdue once
// its due date is behind now.
func Schedule(t Terms, firstPayment time.Time, currentPeriod int, now time.Time) []Entry {
	monthlyRate := t.AnnualRate.Div(hundred.Mul(twelve)).Round(6)
	payment := MonthlyPayment(t)

	entries := make([]Entry, 0, t.Months)
	remaining := t.Principal
	for period := 1; period <= t.Months; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		pay := payment
		principal := pay.Sub(interest)
		if period == t.Months {
			principal = remaining
			pay = principal.Add(interest)
		}
		remaining = remaining.Sub(principal)

		due := firstPayment.AddDate(0, period-1, 0)
		status := EntryPending
		switch {
		case period < currentPeriod:
			status = EntryPaid
		case period == currentPeriod && due.Before(now):
			status = EntryOverdue
		}

		entries = append(entries, Entry{
			Period:           period,
			DueDate:          due,
			Payment:          pay,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
			Status:           status,
		})
	}
	return entries
}
