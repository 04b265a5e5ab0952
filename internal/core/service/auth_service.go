package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/furnishop/storefront/internal/api/metrics"
	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// AuthService implements signup, login, logout, and profile edits. Every
// session change is mirrored into the durable snapshot store by the
// registry.
type AuthService struct {
	users     ports.UserRepository
	sessions  *SessionRegistry
	notifier  ports.Notifier
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *SessionRegistry, notifier ports.Notifier, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		notifier:  notifier,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SignUp creates a new user with empty cart, wishlist, and order history,
// establishes a session for it, and returns the created record. Fails with
// ErrDuplicateEmail when the email is already registered; in that case no
// document is created and no session is established.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("duplicate email check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Cart:         []domain.CartLine{},
		Wishlist:     []domain.ProductRef{},
		Orders:       []domain.Order{},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if _, err := s.sessions.Establish(ctx, created); err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	metrics.SessionEventsTotal.WithLabelValues("signup").Inc()
	s.notifier.Notify(ports.Notification{
		UserID:  created.ID,
		Event:   "signup",
		Message: "Account created successfully",
	})
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller. A blocked account fails
// with ErrAccountBlocked and no session is established.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}

	if _, err := s.sessions.Establish(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	s.notifier.Notify(ports.Notification{
		UserID:  user.ID,
		Event:   "login",
		Message: fmt.Sprintf("Welcome back, %s", user.Name),
	})
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user}, nil
}

// Logout clears the session and its durable snapshot. The remote store is
// not contacted.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	s.sessions.Clear(ctx, userID)
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	s.log.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

// Profile returns the user's current remote document.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile patches the user's name and email on the remote document
// and refreshes the session snapshot.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, domain.ErrValidation
	}

	if err := s.users.Patch(ctx, userID, ports.UserPatch{Name: &name, Email: &email}); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.sessions.Refresh(ctx, userID, name, email)
	s.notifier.Notify(ports.Notification{
		UserID:  userID,
		Event:   "profile_updated",
		Message: "Profile updated successfully",
	})

	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
