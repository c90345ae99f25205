package mysql

import (
	"context"

	borrowerDomain "farmcredit-backend/internal/domain/borrower"
	creditDomain "farmcredit-backend/internal/domain/credit"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) CreditCash(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&borrowerDomain.Borrower{}).
		Where("borrower_id = ?", borrowerID).
		Update("cash_balance", gorm.Expr("cash_balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return borrowerDomain.ErrNotFound
	}
	return nil
}

// ListJointCandidates joins borrowers against active credit limits, skipping
// the excluded ids, largest available limit first.
func (r *BorrowerRepository) ListJointCandidates(ctx context.Context, exclude []string, limit int) ([]borrowerDomain.Candidate, error) {
	var out []borrowerDomain.Candidate
	q := r.db.WithContext(ctx).Model(&borrowerDomain.Borrower{}).
		Select("borrowers.borrower_id, borrowers.nickname, credit_limits.available_limit").
		Joins("JOIN credit_limits ON credit_limits.borrower_id = borrowers.borrower_id").
		Where("credit_limits.status = ? AND credit_limits.available_limit > 0", creditDomain.LimitActive).
		Order("credit_limits.available_limit DESC").
		Limit(limit)
	if len(exclude) > 0 {
		q = q.Where("borrowers.borrower_id NOT IN ?", exclude)
	}
	res := q.Scan(&out)
	return out, res.Error
}
