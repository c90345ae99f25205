package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByProductID(ctx context.Context, productID string) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	ListActive(ctx context.Context) ([]Product, error)
}
