package ports

import (
	"context"

	"github.com/furnishop/storefront/internal/core/domain"
)

// UserPatch is a partial-field update of a user document. Nil fields are
// left untouched by the store.
type UserPatch struct {
	Name      *string
	Email     *string
	IsBlocked *bool
	Cart      *[]domain.CartLine
	Wishlist  *[]domain.ProductRef
	Orders    *[]domain.Order
}

// UserRepository defines persistence operations on user documents. Replace
// rewrites the whole document (last writer wins); Patch updates only the
// fields carried by the patch.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	Patch(ctx context.Context, id string, patch UserPatch) error
	Delete(ctx context.Context, id string) error
}
