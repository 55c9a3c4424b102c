package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/response"
)

// AdminRequired checks the role claim and falls back to the stored user
// row, so a demoted admin loses access before the token expires.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := CurrentRole(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Envelope{
				StatusCode: fiber.StatusUnauthorized,
				Code:       "E002",
				Message:    "Unauthorized",
			})
		}

		if role == models.RoleAdmin {
			userID, err := CurrentUserID(c)
			if err == nil {
				var user models.User
				if err := db.First(&user, "id = ?", userID).Error; err == nil && user.Role == models.RoleAdmin {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(response.Envelope{
			StatusCode: fiber.StatusForbidden,
			Code:       "E002",
			Message:    "Admin access required",
		})
	}
}
