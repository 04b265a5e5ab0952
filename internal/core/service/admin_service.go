package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// AdminService implements the admin panel: user management, catalog
// mutations, order oversight, and the dashboard aggregates. Orders live
// embedded in user documents, so the order views flatten them out on read.
type AdminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	sessions *SessionRegistry
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, products ports.ProductRepository, sessions *SessionRegistry, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, products: products, sessions: sessions, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// SetBlocked flips the block flag via read-modify-write of the whole
// document. A blocked user can no longer log in; an existing session is
// not revoked.
func (s *AdminService) SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsBlocked = blocked
	if err := s.users.Replace(ctx, user); err != nil {
		return nil, fmt.Errorf("set blocked: %w", err)
	}

	s.log.Info().Str("user_id", userID).Bool("blocked", blocked).Msg("user block flag updated")
	return user, nil
}

// DeleteUser removes the user document and ends any live session it has.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.sessions.Clear(ctx, userID)
	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

func (s *AdminService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" || p.Price < 0 {
		return nil, domain.ErrValidation
	}
	created, err := s.products.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if _, err := s.products.FindByID(ctx, p.ID); err != nil {
		return nil, err
	}
	if err := s.products.Replace(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// ListAllOrders flattens every non-admin user's order history, newest
// first, with the customer attached.
func (s *AdminService) ListAllOrders(ctx context.Context) ([]ports.AdminOrder, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	var orders []ports.AdminOrder
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			continue
		}
		for _, o := range u.Orders {
			ao := ports.AdminOrder{Order: o, UserID: u.ID, CustomerEmail: u.Email}
			if ao.CustomerName == "" {
				ao.CustomerName = u.Name
			}
			orders = append(orders, ao)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date.Time)
	})
	return orders, nil
}

// UpdateOrderStatus applies one transition of the order status machine and
// persists the owning user's order list.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, userID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Orders {
		if user.Orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	current := user.Orders[idx].Status
	if !current.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current, status)
	}

	user.Orders[idx].Status = status
	if err := s.users.Patch(ctx, userID, ports.UserPatch{Orders: &user.Orders}); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("order_id", orderID).
		Str("status", string(status)).
		Msg("order status updated")

	updated := user.Orders[idx]
	return &updated, nil
}

// DeleteOrder removes one order from the owning user's history.
func (s *AdminService) DeleteOrder(ctx context.Context, userID, orderID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := user.Orders[:0]
	for _, o := range user.Orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(user.Orders) {
		return domain.ErrNotFound
	}

	orders := append([]domain.Order{}, kept...)
	if err := s.users.Patch(ctx, userID, ports.UserPatch{Orders: &orders}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// Dashboard computes the admin landing page aggregates: totals, the
// last-six-months sales series, and the five most recent orders.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		TotalUsers:    len(users),
		TotalProducts: len(products),
	}

	monthly := make(map[string]*ports.MonthlySales)
	var revenue float64
	var all []ports.AdminOrder

	for _, u := range users {
		for _, o := range u.Orders {
			stats.TotalOrders++
			revenue += float64(o.Total)

			month := o.Date.Format("2006-01")
			m, ok := monthly[month]
			if !ok {
				m = &ports.MonthlySales{Month: month}
				monthly[month] = m
			}
			m.Sales += o.Total
			m.Orders++

			all = append(all, ports.AdminOrder{Order: o, UserID: u.ID, CustomerEmail: u.Email})
		}
	}
	stats.TotalRevenue = domain.Amount(revenue).Round2()

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > 6 {
		months = months[len(months)-6:]
	}
	for _, m := range months {
		stats.MonthlySales = append(stats.MonthlySales, *monthly[m])
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date.Time)
	})
	if len(all) > 5 {
		all = all[:5]
	}
	stats.RecentOrders = all

	return stats, nil
}
