package userController

import (
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllUsers lists every registered user. Admin only.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch users!")
	}
	return c.JSON(users)
}

// CheckAdmin reports whether the authenticated user holds the admin role.
// The path email must match the token identity.
func CheckAdmin(c *fiber.Ctx) error {
	return checkRole(c, models.RoleAdmin, "admin")
}

// CheckInstructor reports whether the authenticated user holds the instructor role.
func CheckInstructor(c *fiber.Ctx) error {
	return checkRole(c, models.RoleInstructor, "instructor")
}

func checkRole(c *fiber.Ctx, role models.Role, field string) error {
	email := c.Params("email")

	decodedEmail, ok := c.Locals("email").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	if email != decodedEmail {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
	}

	// A missing user record counts as holding no role
	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(fiber.Map{field: false})
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user!")
	}

	return c.JSON(fiber.Map{field: user.Role.HasRole(role)})
}

// PromoteAdmin sets the admin role on a user.
func PromoteAdmin(c *fiber.Ctx) error {
	return promote(c, models.RoleAdmin)
}

// PromoteInstructor sets the instructor role on a user.
func PromoteInstructor(c *fiber.Ctx) error {
	return promote(c, models.RoleInstructor)
}

func promote(c *fiber.Ctx, role models.Role) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update role!")
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}
