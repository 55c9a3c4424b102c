package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/config"
	"github.com/lunahq/accounts-api/internal/response"
)

// JWTProtected guards a route with bearer-token authentication.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Envelope{
				StatusCode: fiber.StatusUnauthorized,
				Code:       "E002",
				Message:    "Unauthorized: invalid or expired token",
			})
		},
	})
}

// CurrentUserID extracts the user id from the verified JWT in context.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing id claim")
	}
	return uuid.Parse(id)
}

// CurrentRole extracts the role claim from the verified JWT in context.
func CurrentRole(c *fiber.Ctx) (string, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return "", err
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("missing role claim")
	}
	return role, nil
}

func currentClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
