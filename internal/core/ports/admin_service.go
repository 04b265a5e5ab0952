package ports

import (
	"context"

	"github.com/furnishop/storefront/internal/core/domain"
)

// AdminOrder is an order flattened out of its owning user document, with
// the customer attached for the admin views.
type AdminOrder struct {
	domain.Order
	UserID        string
	CustomerEmail string
}

// MonthlySales is one month of the dashboard sales series.
type MonthlySales struct {
	Month  string // "2006-01"
	Sales  domain.Amount
	Orders int
}

// DashboardStats is the aggregate view behind the admin dashboard.
type DashboardStats struct {
	TotalUsers    int
	TotalProducts int
	TotalOrders   int
	TotalRevenue  domain.Amount
	MonthlySales  []MonthlySales // oldest first, at most the last six months
	RecentOrders  []AdminOrder   // newest first, at most five
}

// AdminService implements the admin panel operations: user management,
// catalog mutations, order oversight, and the dashboard.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListAllOrders(ctx context.Context) ([]AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID string) error

	Dashboard(ctx context.Context) (*DashboardStats, error)
}
