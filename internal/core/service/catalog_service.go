package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// CatalogService serves product browsing. The document store has no query
// surface beyond whole-collection reads, so search, category filtering, and
// paging happen here.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// ListProducts returns one page of the catalog matching the filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ListProductsFilter) (*ports.ListProductsResult, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Product, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, p := range all {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		matched = append(matched, p)
	}

	// Stable page boundaries regardless of store iteration order.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ports.ListProductsResult{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetProduct fetches one product; a miss is domain.ErrNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}
