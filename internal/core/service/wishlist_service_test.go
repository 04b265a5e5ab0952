package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
)

func newWishlistFixture(t *testing.T) (*WishlistService, *stubUserRepo, *SessionRegistry) {
	t.Helper()
	repo := newStubUserRepo()
	products := newStubProductRepo()
	registry := NewSessionRegistry(repo, newStubSessionStore(), zerolog.Nop())
	svc := NewWishlistService(registry, products, &stubNotifier{}, zerolog.Nop())

	repo.seed(&domain.User{ID: "u1", Email: "a@example.com", Wishlist: []domain.ProductRef{}})
	products.seed(domain.Product{ID: "p1", Name: "Oak Table", Price: 100, Img: "oak.jpg"})

	user, _ := repo.FindByID(context.Background(), "u1")
	if _, err := registry.Establish(context.Background(), user); err != nil {
		t.Fatalf("establish session: %v", err)
	}
	return svc, repo, registry
}

func TestWishlistService_Toggle_AddsSnapshot(t *testing.T) {
	svc, repo, _ := newWishlistFixture(t)

	added, err := svc.Toggle(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !added {
		t.Fatalf("expected product reported as added")
	}

	items, _ := svc.Items(context.Background(), "u1")
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	ref := items[0]
	if ref.ID != "p1" || ref.Name != "Oak Table" || ref.Price != 100 || ref.Img != "oak.jpg" {
		t.Fatalf("unexpected snapshot: %+v", ref)
	}

	stored := repo.get("u1")
	if len(stored.Wishlist) != 1 {
		t.Fatalf("remote wishlist not synced: %+v", stored.Wishlist)
	}
}

func TestWishlistService_Toggle_TwiceRestoresAbsence(t *testing.T) {
	svc, repo, _ := newWishlistFixture(t)

	if _, err := svc.Toggle(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	added, err := svc.Toggle(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if added {
		t.Fatalf("expected product reported as removed")
	}

	items, _ := svc.Items(context.Background(), "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", items)
	}
	stored := repo.get("u1")
	if len(stored.Wishlist) != 0 {
		t.Fatalf("expected remote wishlist emptied, got %+v", stored.Wishlist)
	}
}

func TestWishlistService_Toggle_RollsBackOnFailedWrite(t *testing.T) {
	svc, repo, _ := newWishlistFixture(t)

	repo.failReplace = true
	if _, err := svc.Toggle(context.Background(), "u1", "p1"); !errors.Is(err, domain.ErrSyncFailed) {
		t.Fatalf("expected ErrSyncFailed, got %v", err)
	}

	repo.failReplace = false
	items, _ := svc.Items(context.Background(), "u1")
	if len(items) != 0 {
		t.Fatalf("expected wishlist rolled back to empty, got %+v", items)
	}
}

func TestWishlistService_Remove(t *testing.T) {
	svc, _, _ := newWishlistFixture(t)

	if _, err := svc.Toggle(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Remove(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	items, _ := svc.Items(context.Background(), "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", items)
	}
}

func TestWishlistService_NoSession(t *testing.T) {
	svc, _, _ := newWishlistFixture(t)

	if _, err := svc.Items(context.Background(), "stranger"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
