package ports

import "context"

// SessionSnapshot is the minimal identity written to the durable session
// slot on every session change. It is a rehydration cache, not a trust
// boundary: a rebuilt session is not re-validated against the remote store.
type SessionSnapshot struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// SessionStore persists session snapshots across restarts.
type SessionStore interface {
	Save(ctx context.Context, snap SessionSnapshot) error
	Load(ctx context.Context, userID string) (*SessionSnapshot, error)
	LoadAll(ctx context.Context) ([]SessionSnapshot, error)
	Delete(ctx context.Context, userID string) error
}
