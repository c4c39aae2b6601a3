package middleware

import (
	"speakup/database"
	"speakup/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that admits the request only when the
// authenticated user's stored role equals the required one. A user record
// missing entirely counts as holding no role.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the decoded email from context (set by JWTMiddleware)
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		var user models.User
		err := database.Database.Db.Where("email = ?", email).First(&user).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
			}
			// Other DB error
			return ErrorResponse(c, fiber.StatusInternalServerError, "Server error while checking permissions!")
		}

		if !user.Role.HasRole(required) {
			return ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
		}

		// Role matched, proceed
		return c.Next()
	}
}
