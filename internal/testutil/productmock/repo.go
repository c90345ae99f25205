package productmock

import (
	"context"

	domain "farmcredit-backend/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies product.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Product) error
	GetByProductIDFn func(ctx context.Context, productID string) (*domain.Product, error)
	GetByNameFn      func(ctx context.Context, name string) (*domain.Product, error)
	ListActiveFn     func(ctx context.Context) ([]domain.Product, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	if m.GetByProductIDFn != nil {
		return m.GetByProductIDFn(ctx, productID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}
func (m *Repo) ListActive(ctx context.Context) ([]domain.Product, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}
