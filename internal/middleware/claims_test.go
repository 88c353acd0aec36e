package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localsearch/backend/internal/config"
	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/services"
)

func newProtectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTProtected(cfg), func(c *fiber.Ctx) error {
		username, err := Username(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		id, err := UserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"username": username, "id": id})
	})
	return app
}

func TestClaimsFromValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	app := newProtectedApp(cfg)

	token, err := services.NewTokenService(cfg).Issue(&models.User{
		ID: 7, Username: "meena", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: -time.Minute}
	app := newProtectedApp(cfg)

	token, err := services.NewTokenService(cfg).Issue(&models.User{
		ID: 7, Username: "meena", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	app := newProtectedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
