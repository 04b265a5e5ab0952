package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
)

func day(s string) domain.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return domain.Date{Time: t}
}

func newAdminFixture() (*AdminService, *stubUserRepo, *stubProductRepo, *SessionRegistry) {
	repo := newStubUserRepo()
	products := newStubProductRepo()
	registry := NewSessionRegistry(repo, newStubSessionStore(), zerolog.Nop())
	svc := NewAdminService(repo, products, registry, zerolog.Nop())
	return svc, repo, products, registry
}

func TestAdminService_SetBlocked(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{ID: "u1", Email: "a@example.com"})

	user, err := svc.SetBlocked(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("SetBlocked returned error: %v", err)
	}
	if !user.IsBlocked {
		t.Fatalf("expected returned document blocked")
	}
	if !repo.get("u1").IsBlocked {
		t.Fatalf("expected stored document blocked")
	}

	user, err = svc.SetBlocked(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("unblock returned error: %v", err)
	}
	if user.IsBlocked {
		t.Fatalf("expected document unblocked")
	}
}

func TestAdminService_DeleteUser_EndsSession(t *testing.T) {
	svc, repo, _, registry := newAdminFixture()
	repo.seed(&domain.User{ID: "u1", Email: "a@example.com"})
	user, _ := repo.FindByID(context.Background(), "u1")
	if _, err := registry.Establish(context.Background(), user); err != nil {
		t.Fatalf("establish: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected document gone, got %v", err)
	}
	if _, ok := registry.Get("u1"); ok {
		t.Fatalf("expected session ended with the account")
	}
}

func TestAdminService_CreateProduct_Validation(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	if _, err := svc.CreateProduct(context.Background(), &domain.Product{Name: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for a blank name, got %v", err)
	}

	created, err := svc.CreateProduct(context.Background(), &domain.Product{Name: "Oak Table", Price: 100})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an id assigned")
	}
}

func TestAdminService_ListAllOrders_FlattensAndSorts(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{
		ID: "u1", Name: "Alice", Email: "a@example.com",
		Orders: []domain.Order{
			{ID: "o1", Date: day("2026-08-01"), Total: 10, Status: domain.StatusPending},
			{ID: "o2", Date: day("2026-08-20"), Total: 20, Status: domain.StatusPending},
		},
	})
	repo.seed(&domain.User{
		ID: "u2", Name: "Bob", Email: "b@example.com",
		Orders: []domain.Order{
			{ID: "o3", Date: day("2026-08-10"), Total: 30, Status: domain.StatusShipped},
		},
	})
	repo.seed(&domain.User{
		ID: "admin", Email: "admin@example.com", Role: domain.RoleAdmin,
		Orders: []domain.Order{{ID: "hidden", Date: day("2026-08-25")}},
	})

	orders, err := svc.ListAllOrders(context.Background())
	if err != nil {
		t.Fatalf("ListAllOrders returned error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders (admin's excluded), got %d", len(orders))
	}
	if orders[0].ID != "o2" || orders[1].ID != "o3" || orders[2].ID != "o1" {
		t.Fatalf("expected newest first, got %s %s %s", orders[0].ID, orders[1].ID, orders[2].ID)
	}
	if orders[0].CustomerEmail != "a@example.com" || orders[0].UserID != "u1" {
		t.Fatalf("expected customer attached: %+v", orders[0])
	}
	if orders[0].CustomerName != "Alice" {
		t.Fatalf("expected owner name filled in when the order has none: %+v", orders[0])
	}
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{
		ID: "u1", Email: "a@example.com",
		Orders: []domain.Order{{ID: "o1", Status: domain.StatusPending}},
	})

	order, err := svc.UpdateOrderStatus(context.Background(), "u1", "o1", domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if order.Status != domain.StatusConfirmed {
		t.Fatalf("expected Confirmed, got %s", order.Status)
	}
	if repo.get("u1").Orders[0].Status != domain.StatusConfirmed {
		t.Fatalf("expected the stored order updated")
	}
}

func TestAdminService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{
		ID: "u1", Email: "a@example.com",
		Orders: []domain.Order{{ID: "o1", Status: domain.StatusDelivered}},
	})

	_, err := svc.UpdateOrderStatus(context.Background(), "u1", "o1", domain.StatusPending)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from a terminal state, got %v", err)
	}
	if repo.get("u1").Orders[0].Status != domain.StatusDelivered {
		t.Fatalf("expected the stored order untouched")
	}
}

func TestAdminService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{ID: "u1", Orders: []domain.Order{{ID: "o1", Status: domain.StatusPending}}})

	if _, err := svc.UpdateOrderStatus(context.Background(), "u1", "o1", "Teleported"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for an unknown status, got %v", err)
	}
}

func TestAdminService_DeleteOrder(t *testing.T) {
	svc, repo, _, _ := newAdminFixture()
	repo.seed(&domain.User{
		ID: "u1", Email: "a@example.com",
		Orders: []domain.Order{{ID: "o1"}, {ID: "o2"}},
	})

	if err := svc.DeleteOrder(context.Background(), "u1", "o1"); err != nil {
		t.Fatalf("DeleteOrder returned error: %v", err)
	}
	stored := repo.get("u1")
	if len(stored.Orders) != 1 || stored.Orders[0].ID != "o2" {
		t.Fatalf("unexpected orders after delete: %+v", stored.Orders)
	}

	if err := svc.DeleteOrder(context.Background(), "u1", "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unknown order, got %v", err)
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, repo, products, _ := newAdminFixture()
	products.seed(domain.Product{ID: "p1", Name: "Oak Table", Price: 100})
	products.seed(domain.Product{ID: "p2", Name: "Velvet Chair", Price: 50})
	repo.seed(&domain.User{
		ID: "u1", Email: "a@example.com",
		Orders: []domain.Order{
			{ID: "o1", Date: day("2026-07-03"), Total: 100.50},
			{ID: "o2", Date: day("2026-08-15"), Total: 49.50},
		},
	})
	repo.seed(&domain.User{
		ID: "u2", Email: "b@example.com",
		Orders: []domain.Order{{ID: "o3", Date: day("2026-08-20"), Total: 200}},
	})

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalProducts != 2 || stats.TotalOrders != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.TotalRevenue != 350.00 {
		t.Fatalf("expected revenue 350.00, got %v", stats.TotalRevenue)
	}

	if len(stats.MonthlySales) != 2 {
		t.Fatalf("expected 2 months, got %+v", stats.MonthlySales)
	}
	if stats.MonthlySales[0].Month != "2026-07" || stats.MonthlySales[1].Month != "2026-08" {
		t.Fatalf("expected months oldest first, got %+v", stats.MonthlySales)
	}
	if stats.MonthlySales[1].Orders != 2 || stats.MonthlySales[1].Sales != 249.50 {
		t.Fatalf("unexpected August aggregate: %+v", stats.MonthlySales[1])
	}

	if len(stats.RecentOrders) != 3 || stats.RecentOrders[0].ID != "o3" {
		t.Fatalf("expected recent orders newest first, got %+v", stats.RecentOrders)
	}
}
