package mysql

import (
	"context"

	loanDomain "farmcredit-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByBorrowerID(ctx context.Context, borrowerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CreateParticipants(ctx context.Context, ps []loanDomain.Participant) error {
	return r.db.WithContext(ctx).Create(&ps).Error
}

func (r *LoanRepository) GetParticipants(ctx context.Context, loanID string) ([]loanDomain.Participant, error) {
	var out []loanDomain.Participant
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetParticipant(ctx context.Context, loanID, borrowerID string) (*loanDomain.Participant, error) {
	var out loanDomain.Participant
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND borrower_id = ?", loanID, borrowerID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) AddParticipantPayment(ctx context.Context, loanID, borrowerID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Participant{}).
		Where("loan_id = ? AND borrower_id = ?", loanID, borrowerID).
		Update("paid_amount", gorm.Expr("paid_amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
