package mysql

import (
	"context"

	appDomain "farmcredit-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status appDomain.Status) ([]appDomain.LoanApplication, error) {
	var out []appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByBorrowerID(ctx context.Context, borrowerID string) ([]appDomain.LoanApplication, error) {
	var out []appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) CreatePartnerShares(ctx context.Context, shares []appDomain.PartnerShare) error {
	return r.db.WithContext(ctx).Create(&shares).Error
}

func (r *ApplicationRepository) GetPartnerShares(ctx context.Context, applicationID string) ([]appDomain.PartnerShare, error) {
	var out []appDomain.PartnerShare
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) GetPartnerShare(ctx context.Context, applicationID, partnerID string) (*appDomain.PartnerShare, error) {
	var out appDomain.PartnerShare
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND partner_id = ?", applicationID, partnerID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) SavePartnerShare(ctx context.Context, s *appDomain.PartnerShare) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ApplicationRepository) ListPendingInvitations(ctx context.Context, partnerID string) ([]appDomain.PartnerShare, error) {
	var out []appDomain.PartnerShare
	res := r.db.WithContext(ctx).
		Where("partner_id = ? AND status = ?", partnerID, appDomain.PartnerPendingInvitation).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
