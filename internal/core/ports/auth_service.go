package ports

import (
	"context"

	"github.com/furnishop/storefront/internal/core/domain"
)

// SignUpInput carries the fields collected by the registration form.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned after a successful signup or login. Token is the
// bearer credential for the HTTP surface.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements session state: who is logged in, across the
// process lifetime and across restarts.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
}
