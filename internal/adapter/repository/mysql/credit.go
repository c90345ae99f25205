package mysql

import (
	"context"
	"errors"
	"time"

	creditDomain "farmcredit-backend/internal/domain/credit"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditRepository struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) *CreditRepository { return &CreditRepository{db: db} }

func (r *CreditRepository) GetLimit(ctx context.Context, borrowerID string) (*creditDomain.Limit, error) {
	var out creditDomain.Limit
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}

func (r *CreditRepository) SaveLimit(ctx context.Context, l *creditDomain.Limit) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// PreDeduct is a single conditional UPDATE guarded by the available balance,
// so two concurrent reservations can never both win the same credit. When no
// row was touched we re-read to tell "not enough" apart from "row moved".
func (r *CreditRepository) PreDeduct(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&creditDomain.Limit{}).
		Where("borrower_id = ? AND status = ? AND available_limit >= ?", borrowerID, creditDomain.LimitActive, amount).
		Updates(map[string]interface{}{
			"used_limit":      gorm.Expr("used_limit + ?", amount),
			"available_limit": gorm.Expr("available_limit - ?", amount),
			"last_updated":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var l creditDomain.Limit
	err := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&l).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return creditDomain.ErrInsufficientLimit
	case err != nil:
		return err
	case l.Status == creditDomain.LimitActive && l.AvailableLimit.GreaterThanOrEqual(amount):
		// the guard would pass against what we just read: the row moved
		// between our update and this read
		return creditDomain.ErrLimitConflict
	default:
		return creditDomain.ErrInsufficientLimit
	}
}

// Restore is the inverse of PreDeduct. Unconditional: the reservation being
// undone was made by us, so the balance always covers it.
func (r *CreditRepository) Restore(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&creditDomain.Limit{}).
		Where("borrower_id = ?", borrowerID).
		Updates(map[string]interface{}{
			"used_limit":      gorm.Expr("used_limit - ?", amount),
			"available_limit": gorm.Expr("available_limit + ?", amount),
			"last_updated":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return creditDomain.ErrLimitNotFound
	}
	return nil
}

func (r *CreditRepository) Grant(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&creditDomain.Limit{}).
		Where("borrower_id = ?", borrowerID).
		Updates(map[string]interface{}{
			"total_limit":     gorm.Expr("total_limit + ?", amount),
			"available_limit": gorm.Expr("available_limit + ?", amount),
			"status":          creditDomain.LimitActive,
			"last_updated":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	l := &creditDomain.Limit{
		BorrowerID:     borrowerID,
		TotalLimit:     amount,
		UsedLimit:      decimal.Zero,
		AvailableLimit: amount,
		Currency:       "CNY",
		Status:         creditDomain.LimitActive,
		LastUpdated:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *CreditRepository) CreateApplication(ctx context.Context, a *creditDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *CreditRepository) GetApplicationByID(ctx context.Context, applicationID string) (*creditDomain.Application, error) {
	var out creditDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *CreditRepository) GetApplicationByIDForUpdate(ctx context.Context, applicationID string) (*creditDomain.Application, error) {
	var out creditDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *CreditRepository) GetPendingApplicationByBorrowerID(ctx context.Context, borrowerID string) (*creditDomain.Application, error) {
	var out creditDomain.Application
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND status = ?", borrowerID, creditDomain.ApplicationPending).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *CreditRepository) SaveApplication(ctx context.Context, a *creditDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *CreditRepository) ListPendingApplications(ctx context.Context) ([]creditDomain.Application, error) {
	var out []creditDomain.Application
	res := r.db.WithContext(ctx).
		Where("status = ?", creditDomain.ApplicationPending).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CreditRepository) ListApplicationsByBorrowerID(ctx context.Context, borrowerID string) ([]creditDomain.Application, error) {
	var out []creditDomain.Application
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
