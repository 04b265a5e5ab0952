package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

type stubAuthService struct {
	signUpFn        func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error)
	loginFn         func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	logoutFn        func(ctx context.Context, userID string) error
	profileFn       func(ctx context.Context, userID string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, userID, name, email string) (*domain.User, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, name, email)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			if in.Name != "Alice" || in.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleUser, PasswordHash: "hash"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"a@example.com","password":"secret1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The password hash never crosses the API boundary.
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"Bob","email":"taken@example.com","password":"secret1"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail returned for the central handler, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := []string{
		"not-json",
		`{"name":"Bob","email":"not-an-email","password":"secret1"}`,
		`{"name":"Bob","email":"b@example.com","password":"tiny"}`,
	}
	for _, body := range cases {
		c, _ := newJSONContext(t, http.MethodPost, "/auth/register", body)
		err := handler.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "a@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{Token: "token123", User: &domain.User{ID: "u1", Name: "Alice"}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@example.com","password":"secret1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BlockedPropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrAccountBlocked
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"blocked@example.com","password":"secret1"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var got string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, userID string) error {
			got = userID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "u1")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got != "u1" {
		t.Fatalf("expected logout for u1, got %q", got)
	}
}

func TestAuthHandler_Logout_NoClaims(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	err := handler.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
