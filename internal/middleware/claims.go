package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Username extracts the token subject from the validated JWT that
// JWTProtected stored in the request locals.
func Username(c *fiber.Ctx) (string, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return "", err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}

// UserID extracts the numeric user id claim.
func UserID(c *fiber.Ctx) (uint, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return 0, err
	}

	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, errors.New("missing userId claim")
	}
	return uint(id), nil
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
