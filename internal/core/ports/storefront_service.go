package ports

import (
	"context"

	"github.com/furnishop/storefront/internal/core/domain"
)

// CartView is the cart as rendered to the user.
type CartView struct {
	Items []domain.CartLine
	Count int
	Total domain.Amount
}

// CartService keeps the active user's cart consistent between memory and
// the remote document.
type CartService interface {
	View(ctx context.Context, userID string) (*CartView, error)
	Add(ctx context.Context, userID, productID string) error
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

// WishlistService keeps the active user's wishlist consistent between
// memory and the remote document.
type WishlistService interface {
	Items(ctx context.Context, userID string) ([]domain.ProductRef, error)
	// Toggle adds the product when absent and removes it when present.
	// It reports whether the product ended up on the list.
	Toggle(ctx context.Context, userID, productID string) (added bool, err error)
	Remove(ctx context.Context, userID, productID string) error
}

// PlaceOrderInput carries the shipping details supplied at checkout.
type PlaceOrderInput struct {
	UserID  string
	Name    string
	Address string
}

// CheckoutService converts the current cart into a durable, immutable order
// and empties the cart.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

// ListProductsFilter carries the catalog browse parameters.
type ListProductsFilter struct {
	Search   string // optional: substring match on name or category
	Category string // optional: exact category
	Page     int    // 1-based
	Limit    int    // rows per page, capped by the service
}

// ListProductsResult is one page of the catalog.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService serves product browsing.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ListProductsFilter) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}
