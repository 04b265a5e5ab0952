package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

const userCollection = "users"

// UserRepository stores user documents in the remote JSON store.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// restUser is the wire shape of a user document. It exists because the
// password hash is excluded from the domain type's JSON but must travel to
// the store.
type restUser struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Password  string              `json:"password"`
	Role      string              `json:"role"`
	IsBlocked bool                `json:"isBlocked"`
	Cart      []domain.CartLine   `json:"cart"`
	Wishlist  []domain.ProductRef `json:"wishlist"`
	Orders    []domain.Order      `json:"orders"`
}

func toRestUser(u *domain.User) restUser {
	return restUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		Cart:      u.Cart,
		Wishlist:  u.Wishlist,
		Orders:    u.Orders,
	}
}

func (ru restUser) toDomain() *domain.User {
	return &domain.User{
		ID:           ru.ID,
		Name:         ru.Name,
		Email:        ru.Email,
		PasswordHash: ru.Password,
		Role:         ru.Role,
		IsBlocked:    ru.IsBlocked,
		Cart:         ru.Cart,
		Wishlist:     ru.Wishlist,
		Orders:       ru.Orders,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var ru restUser
	if err := r.client.do(ctx, http.MethodGet, "/"+userCollection+"/"+id, nil, nil, &ru); err != nil {
		return nil, err
	}
	return ru.toDomain(), nil
}

// FindByEmail runs a filter query; the store returns an array with zero or
// one matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var matches []restUser
	query := url.Values{"email": {email}}
	if err := r.client.do(ctx, http.MethodGet, "/"+userCollection, query, nil, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	return matches[0].toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var all []restUser
	if err := r.client.do(ctx, http.MethodGet, "/"+userCollection, nil, nil, &all); err != nil {
		return nil, err
	}
	users := make([]*domain.User, len(all))
	for i, ru := range all {
		users[i] = ru.toDomain()
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toRestUser(user)
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	var created restUser
	if err := r.client.do(ctx, http.MethodPost, "/"+userCollection, nil, doc, &created); err != nil {
		return nil, err
	}
	return created.toDomain(), nil
}

// Replace rewrites the whole document: last writer wins.
func (r *UserRepository) Replace(ctx context.Context, user *domain.User) error {
	return r.client.do(ctx, http.MethodPut, "/"+userCollection+"/"+user.ID, nil, toRestUser(user), nil)
}

// Patch sends only the fields carried by the patch.
func (r *UserRepository) Patch(ctx context.Context, id string, patch ports.UserPatch) error {
	fields := make(map[string]any)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.IsBlocked != nil {
		fields["isBlocked"] = *patch.IsBlocked
	}
	if patch.Cart != nil {
		fields["cart"] = *patch.Cart
	}
	if patch.Wishlist != nil {
		fields["wishlist"] = *patch.Wishlist
	}
	if patch.Orders != nil {
		fields["orders"] = *patch.Orders
	}
	if len(fields) == 0 {
		return nil
	}
	return r.client.do(ctx, http.MethodPatch, "/"+userCollection+"/"+id, nil, fields, nil)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/"+userCollection+"/"+id, nil, nil, nil)
}
