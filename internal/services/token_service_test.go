package services

import (
	"errors"
	"testing"
	"time"

	"github.com/localsearch/backend/internal/config"
	"github.com/localsearch/backend/internal/models"
)

func testTokenService(expiry time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	})
}

func TestIssueAndParse(t *testing.T) {
	svc := testTokenService(time.Hour)
	user := &models.User{ID: 42, Username: "priya", Role: models.RoleServiceProvider}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Subject != "priya" {
		t.Errorf("expected subject priya, got %q", claims.Subject)
	}
	if claims.UserID != 42 {
		t.Errorf("expected userId 42, got %d", claims.UserID)
	}
	if claims.Role != models.RoleServiceProvider {
		t.Errorf("expected role SERVICE_PROVIDER, got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestParseExpiredToken(t *testing.T) {
	svc := testTokenService(-time.Minute)
	token, err := svc.Issue(&models.User{ID: 1, Username: "old", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	issuer := testTokenService(time.Hour)
	token, err := issuer.Issue(&models.User{ID: 1, Username: "alice", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	verifier := NewTokenService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseGarbage(t *testing.T) {
	svc := testTokenService(time.Hour)
	if _, err := svc.Parse("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
