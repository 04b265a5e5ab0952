package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/api/metrics"
	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// listField describes one list-valued field of the user document: its wire
// name and how to read and write it on a fetched document.
type listField[E any] struct {
	name string
	get  func(u *domain.User) []E
	set  func(u *domain.User, items []E)
}

var cartField = listField[domain.CartLine]{
	name: "cart",
	get:  func(u *domain.User) []domain.CartLine { return u.Cart },
	set:  func(u *domain.User, items []domain.CartLine) { u.Cart = items },
}

var wishlistField = listField[domain.ProductRef]{
	name: "wishlist",
	get:  func(u *domain.User) []domain.ProductRef { return u.Wishlist },
	set:  func(u *domain.User, items []domain.ProductRef) { u.Wishlist = items },
}

// synchronizer owns the in-memory copy of one list-valued field of a user's
// document and reconciles it with the remote store. Mutations update memory
// first for instant feedback, then persist by re-reading the full remote
// document, overlaying this one field, and writing the merged document back.
// A failed write rolls memory back to its pre-mutation value.
//
// The persist step is last-writer-wins at the document level: there is no
// version check, so concurrent edits from elsewhere can race.
type synchronizer[E any] struct {
	mu     sync.Mutex
	userID string
	items  []E

	field listField[E]
	users ports.UserRepository
	log   zerolog.Logger
}

func newSynchronizer[E any](field listField[E], users ports.UserRepository, log zerolog.Logger) *synchronizer[E] {
	return &synchronizer[E]{field: field, users: users, log: log}
}

// adopt fetches the user's document and takes its field as the new baseline,
// replacing whatever a previous session left behind.
func (s *synchronizer[E]) adopt(ctx context.Context, userID string) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("adopt %s: %w", s.field.name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.items = cloneItems(s.field.get(u))
	return nil
}

// attach starts tracking a user without fetching a baseline. Used at
// rehydration when the store is briefly unreachable: the next successful
// operation re-reads the document anyway.
func (s *synchronizer[E]) attach(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

// reset empties the list and stops tracking. Called when the session ends.
func (s *synchronizer[E]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.items = nil
}

// rebase replaces the in-memory baseline without a remote write. Used when
// the remote side is already up to date, e.g. after checkout cleared the
// cart as part of the order write.
func (s *synchronizer[E]) rebase(items []E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneItems(items)
}

// snapshot returns an independent copy of the current list.
func (s *synchronizer[E]) snapshot() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// apply runs one mutation through the sync protocol: mutate memory, persist
// the field remotely, roll back on failure. The mutation receives its own
// copy of the list and returns the desired new value.
func (s *synchronizer[E]) apply(ctx context.Context, mutate func(items []E) []E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return domain.ErrNoSession
	}

	prior := s.items
	next := mutate(cloneItems(prior))
	s.items = next

	start := time.Now()
	err := s.persist(ctx, next)
	metrics.SyncDuration.WithLabelValues(s.field.name).Observe(time.Since(start).Seconds())

	if err != nil {
		s.items = prior
		metrics.SyncsTotal.WithLabelValues(s.field.name, "rolled_back").Inc()
		s.log.Error().Err(err).
			Str("field", s.field.name).
			Str("user_id", s.userID).
			Msg("sync failed, local state rolled back")
		return fmt.Errorf("%w: %s", domain.ErrSyncFailed, err)
	}

	metrics.SyncsTotal.WithLabelValues(s.field.name, "committed").Inc()
	return nil
}

// persist re-reads the full remote document so fields this synchronizer
// does not own (the other list, the order history) are not clobbered, then
// overlays the field and writes the merged document back in full.
func (s *synchronizer[E]) persist(ctx context.Context, items []E) error {
	u, err := s.users.FindByID(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("read %s document: %w", s.field.name, err)
	}
	s.field.set(u, cloneItems(items))
	if err := s.users.Replace(ctx, u); err != nil {
		return fmt.Errorf("write %s document: %w", s.field.name, err)
	}
	return nil
}

func cloneItems[E any](items []E) []E {
	out := make([]E, len(items))
	copy(out, items)
	return out
}
