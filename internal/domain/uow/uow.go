package uow

import (
	"context"

	"farmcredit-backend/internal/domain/application"
	"farmcredit-backend/internal/domain/borrower"
	"farmcredit-backend/internal/domain/credit"
	"farmcredit-backend/internal/domain/loan"
	"farmcredit-backend/internal/domain/product"
)

type Repos struct {
	Credits      credit.Repository
	Products     product.Repository
	Applications application.Repository
	Loans        loan.Repository
	Borrowers    borrower.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
	// convenience: lock the loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
