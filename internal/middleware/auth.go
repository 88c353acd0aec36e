package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/localsearch/backend/internal/config"
	"github.com/localsearch/backend/internal/dto"
)

// JWTProtected guards a route with bearer-token auth. Missing, invalid and
// expired tokens all answer 401 with a message body.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Unauthorized: invalid or missing token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Unauthorized: token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: message,
			})
		},
	})
}
