package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/furnishop/storefront/internal/core/domain"
)

// productCollection keeps the upstream store's historical resource name;
// the misspelling is part of its API.
const productCollection = "productes"

// ProductRepository stores catalog entries in the remote JSON store.
type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.client.do(ctx, http.MethodGet, "/"+productCollection+"/"+id, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	var all []domain.Product
	if err := r.client.do(ctx, http.MethodGet, "/"+productCollection, nil, nil, &all); err != nil {
		return nil, err
	}
	products := make([]*domain.Product, len(all))
	for i := range all {
		products[i] = &all[i]
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := *p
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	var created domain.Product
	if err := r.client.do(ctx, http.MethodPost, "/"+productCollection, nil, doc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ProductRepository) Replace(ctx context.Context, p *domain.Product) error {
	return r.client.do(ctx, http.MethodPut, "/"+productCollection+"/"+p.ID, nil, p, nil)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/"+productCollection+"/"+id, nil, nil, nil)
}
