package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository with switchable write
// failures for exercising the rollback paths.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int

	failReplace bool
	failPatch   bool

	replaceCalls int
	patchCalls   []ports.UserPatch
}

var errStoreDown = errors.New("store unavailable")

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Cart = domain.CloneCart(u.Cart)
	clone.Wishlist = append([]domain.ProductRef{}, u.Wishlist...)
	clone.Orders = append([]domain.Order{}, u.Orders...)
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "u" + strconv.Itoa(r.nextID)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Replace(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceCalls++
	if r.failReplace {
		return errStoreDown
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Patch(_ context.Context, id string, patch ports.UserPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patchCalls = append(r.patchCalls, patch)
	if r.failPatch {
		return errStoreDown
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.IsBlocked != nil {
		u.IsBlocked = *patch.IsBlocked
	}
	if patch.Cart != nil {
		u.Cart = domain.CloneCart(*patch.Cart)
	}
	if patch.Wishlist != nil {
		u.Wishlist = append([]domain.ProductRef{}, *patch.Wishlist...)
	}
	if patch.Orders != nil {
		u.Orders = append([]domain.Order{}, *patch.Orders...)
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// seed inserts a user directly, bypassing duplicate checks.
func (r *stubUserRepo) seed(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = cloneUser(u)
}

// get returns the stored document without copying guards, for assertions.
func (r *stubUserRepo) get(id string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneUser(r.users[id])
}

type stubProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *p
	if clone.ID == "" {
		r.nextID++
		clone.ID = "p" + strconv.Itoa(r.nextID)
	}
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Replace(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) seed(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = &p
}

type stubSessionStore struct {
	mu    sync.Mutex
	snaps map[string]ports.SessionSnapshot
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{snaps: make(map[string]ports.SessionSnapshot)}
}

func (s *stubSessionStore) Save(_ context.Context, snap ports.SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.UserID] = snap
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, userID string) (*ports.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &snap, nil
}

func (s *stubSessionStore) LoadAll(_ context.Context) ([]ports.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.SessionSnapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		out = append(out, snap)
	}
	return out, nil
}

func (s *stubSessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, userID)
	return nil
}

func (s *stubSessionStore) has(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.snaps[userID]
	return ok
}

type stubNotifier struct {
	mu     sync.Mutex
	events []ports.Notification
}

func (n *stubNotifier) Notify(notification ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification)
}

func (n *stubNotifier) byEvent(event string) []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []ports.Notification
	for _, e := range n.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
