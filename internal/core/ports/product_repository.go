package ports

import (
	"context"

	"github.com/furnishop/storefront/internal/core/domain"
)

// ProductRepository defines persistence operations on the product catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Replace(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
