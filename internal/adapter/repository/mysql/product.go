package mysql

import (
	"context"

	productDomain "farmcredit-backend/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByProductID(ctx context.Context, productID string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out)
	return &out, res.Error
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]productDomain.Product, error) {
	var out []productDomain.Product
	res := r.db.WithContext(ctx).
		Where("status = ?", productDomain.StatusActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
