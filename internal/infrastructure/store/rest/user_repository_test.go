package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) *UserRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewUserRepository(NewClient(srv.URL, time.Second))
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users/u1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"id":"u1","name":"Alice","email":"a@example.com","password":"hash","cart":[{"productId":"p1","quantity":2}]}`)
	})

	user, err := repo.FindByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if user.Name != "Alice" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(user.Cart) != 1 || user.Cart[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", user.Cart)
	}
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := repo.FindByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_FindByEmail_FilterQuery(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "a@example.com" {
			t.Fatalf("expected an email filter, got %q", got)
		}
		io.WriteString(w, `[{"id":"u1","email":"a@example.com","password":"hash"}]`)
	})

	user, err := repo.FindByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserRepository_FindByEmail_NoMatch(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an empty match array, got %v", err)
	}
}

func TestUserRepository_Create_CarriesPasswordOnWire(t *testing.T) {
	var received map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	})

	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Alice",
		Email:        "a@example.com",
		PasswordHash: "hash",
		Cart:         []domain.CartLine{},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an id assigned before the write")
	}
	if received["password"] != "hash" {
		t.Fatalf("expected the hash on the wire, got %v", received["password"])
	}
	if _, ok := received["cart"]; !ok {
		t.Fatalf("expected the cart field serialized")
	}
}

func TestUserRepository_Patch_SendsOnlyCarriedFields(t *testing.T) {
	var received map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/users/u1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
	})

	orders := []domain.Order{{ID: "o1", Status: domain.StatusPending}}
	cart := []domain.CartLine{}
	err := repo.Patch(context.Background(), "u1", ports.UserPatch{Orders: &orders, Cart: &cart})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}

	if len(received) != 2 {
		t.Fatalf("expected exactly orders and cart in the body, got %v", received)
	}
	if _, ok := received["orders"]; !ok {
		t.Fatalf("orders missing from patch body: %v", received)
	}
	if got, ok := received["cart"].([]any); !ok || len(got) != 0 {
		t.Fatalf("expected an empty cart array, got %v", received["cart"])
	}
}

func TestUserRepository_Patch_EmptyIsNoRequest(t *testing.T) {
	called := false
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if err := repo.Patch(context.Background(), "u1", ports.UserPatch{}); err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if called {
		t.Fatalf("expected no request for an empty patch")
	}
}

func TestUserRepository_Replace_PutsWholeDocument(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/users/u1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var doc map[string]any
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		for _, field := range []string{"name", "email", "password", "cart", "wishlist", "orders"} {
			if _, ok := doc[field]; !ok {
				t.Fatalf("field %q missing from the full document write", field)
			}
		}
	})

	err := repo.Replace(context.Background(), &domain.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "a@example.com",
		PasswordHash: "hash",
		Cart:         []domain.CartLine{},
		Wishlist:     []domain.ProductRef{},
		Orders:       []domain.Order{},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
}

func TestUserRepository_ServerError(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.FindByID(context.Background(), "u1")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected an opaque error for a 500, got %v", err)
	}
}
