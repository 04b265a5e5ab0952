package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/api/metrics"
	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// Session is one live authenticated identity together with its synchronized
// cart and wishlist. The synchronizers are created when the session is
// established and discarded when it ends, so one session's lists never leak
// into the next.
type Session struct {
	snap     ports.SessionSnapshot
	cart     *synchronizer[domain.CartLine]
	wishlist *synchronizer[domain.ProductRef]
}

// Snapshot returns the session's durable identity.
func (s *Session) Snapshot() ports.SessionSnapshot {
	return s.snap
}

// SessionRegistry tracks live sessions and mirrors every change into the
// durable session store so a restart reconstructs the same sessions.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	users ports.UserRepository
	store ports.SessionStore
	log   zerolog.Logger
}

func NewSessionRegistry(users ports.UserRepository, store ports.SessionStore, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		users:    users,
		store:    store,
		log:      log,
	}
}

// Establish creates a session for the given user, adopts the user's cart
// and wishlist as the synchronizers' baselines, and writes the durable
// snapshot.
func (r *SessionRegistry) Establish(ctx context.Context, u *domain.User) (*Session, error) {
	sess := &Session{
		snap: ports.SessionSnapshot{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   u.Role,
		},
		cart:     newSynchronizer(cartField, r.users, r.log),
		wishlist: newSynchronizer(wishlistField, r.users, r.log),
	}

	if err := sess.cart.adopt(ctx, u.ID); err != nil {
		return nil, err
	}
	if err := sess.wishlist.adopt(ctx, u.ID); err != nil {
		return nil, err
	}

	r.saveSnapshot(ctx, sess.snap)

	r.mu.Lock()
	r.sessions[u.ID] = sess
	r.mu.Unlock()

	return sess, nil
}

// Clear ends the user's session: lists reset to empty, tracking stops, and
// the durable snapshot is removed. No remote store call is made.
func (r *SessionRegistry) Clear(ctx context.Context, userID string) {
	r.mu.Lock()
	sess, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		sess.cart.reset()
		sess.wishlist.reset()
	}

	if err := r.store.Delete(ctx, userID); err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("failed to remove session snapshot")
	}
}

// Get returns the live session for the user, if any.
func (r *SessionRegistry) Get(userID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[userID]
	return sess, ok
}

// Rehydrate rebuilds sessions from durable snapshots at process start. The
// snapshots are trusted as-is (rehydration cache, not a trust boundary);
// list baselines are re-fetched best effort. Returns the number of sessions
// restored.
func (r *SessionRegistry) Rehydrate(ctx context.Context) int {
	snaps, err := r.store.LoadAll(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to load session snapshots")
		return 0
	}

	restored := 0
	for _, snap := range snaps {
		sess := &Session{
			snap:     snap,
			cart:     newSynchronizer(cartField, r.users, r.log),
			wishlist: newSynchronizer(wishlistField, r.users, r.log),
		}
		if err := sess.cart.adopt(ctx, snap.UserID); err != nil {
			r.log.Warn().Err(err).Str("user_id", snap.UserID).Msg("cart baseline unavailable at rehydration")
			sess.cart.attach(snap.UserID)
		}
		if err := sess.wishlist.adopt(ctx, snap.UserID); err != nil {
			r.log.Warn().Err(err).Str("user_id", snap.UserID).Msg("wishlist baseline unavailable at rehydration")
			sess.wishlist.attach(snap.UserID)
		}

		r.mu.Lock()
		r.sessions[snap.UserID] = sess
		r.mu.Unlock()

		metrics.SessionEventsTotal.WithLabelValues("rehydrated").Inc()
		restored++
	}

	if restored > 0 {
		r.log.Info().Int("sessions", restored).Msg("sessions rehydrated from snapshots")
	}
	return restored
}

// Refresh updates the identity fields of a live session and rewrites its
// durable snapshot. Used after profile edits.
func (r *SessionRegistry) Refresh(ctx context.Context, userID, name, email string) {
	r.mu.Lock()
	sess, ok := r.sessions[userID]
	if ok {
		sess.snap.Name = name
		sess.snap.Email = email
	}
	r.mu.Unlock()

	if ok {
		r.saveSnapshot(ctx, sess.snap)
	}
}

func (r *SessionRegistry) saveSnapshot(ctx context.Context, snap ports.SessionSnapshot) {
	if err := r.store.Save(ctx, snap); err != nil {
		r.log.Warn().Err(err).Str("user_id", snap.UserID).Msg("failed to write session snapshot")
	}
}
