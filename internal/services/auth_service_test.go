package services

import (
	"errors"
	"testing"
	"time"

	"github.com/localsearch/backend/internal/config"
	"github.com/localsearch/backend/internal/dto"
	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/repository/repotest"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (*AuthService, *TokenService, *repotest.MemoryUserRepo) {
	users := repotest.NewMemoryUserRepo()
	tokens := NewTokenService(&config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
	return NewAuthService(users, tokens), tokens, users
}

func registerUser(t *testing.T, svc *AuthService, username, email string) uint {
	t.Helper()
	id, err := svc.Register(&dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret123",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	return id
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "ramesh",
		Email:    "other@example.com",
		Password: "secret123",
		Role:     models.RoleUser,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "suresh",
		Email:    "ramesh@example.com",
		Password: "secret123",
		Role:     models.RoleUser,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, err := svc.Register(&dto.RegisterRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "secret123",
		Role:     models.Role("SUPERUSER"),
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _, users := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	stored, err := users.FindByUsername("ramesh")
	if err != nil {
		t.Fatalf("FindByUsername failed: %v", err)
	}
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if !stored.Enabled {
		t.Error("new user should be enabled")
	}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	svc, tokens, _ := newTestAuthService()
	id, err := svc.Register(&dto.RegisterRequest{
		Username: "provider",
		Email:    "provider@example.com",
		Password: "secret123",
		Role:     models.RoleServiceProvider,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(&dto.LoginRequest{Username: "provider", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.UserID != id || resp.Username != "provider" || resp.Email != "provider@example.com" {
		t.Errorf("unexpected profile in response: %+v", resp)
	}
	if resp.Role != models.RoleServiceProvider {
		t.Errorf("expected role SERVICE_PROVIDER, got %q", resp.Role)
	}

	claims, err := tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "provider" || claims.UserID != id || claims.Role != models.RoleServiceProvider {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	_, err := svc.Login(&dto.LoginRequest{Username: "ramesh", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// Must be indistinguishable from a wrong password, never a not-found.
	_, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	err := svc.ChangePassword("ramesh", &dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret456",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Username: "ramesh", Password: "newsecret456"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Username: "ramesh", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login with old password should fail, got %v", err)
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerUser(t, svc, "ramesh", "ramesh@example.com")

	err := svc.ChangePassword("ramesh", &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret456",
	})
	if !errors.Is(err, ErrInvalidOldPassword) {
		t.Errorf("expected ErrInvalidOldPassword, got %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	svc, _, _ := newTestAuthService()
	id := registerUser(t, svc, "ramesh", "ramesh@example.com")

	info, err := svc.CurrentUser("ramesh")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if info.ID != id || info.Username != "ramesh" || info.Email != "ramesh@example.com" || !info.Enabled {
		t.Errorf("unexpected profile: %+v", info)
	}

	if _, err := svc.CurrentUser("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
