package authController

import (
	"log"
	"speakup/database"
	"speakup/middleware"
	"speakup/models"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a JWT for the claimed identity. Mirrors the legacy
// contract: any email in the body gets a token, no credential is checked.
func IssueToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToken").(*struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to issue token!")
	}

	return c.JSON(fiber.Map{"token": token})
}

// CreateUser registers a user on first sign-in. Inserting the same email
// twice is a no-op reported in the response body.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Photo string `json:"photo"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}

	newUser := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Photo: reqData.Photo,
		Role:  models.RoleNone,
	}

	if err := db.Create(&newUser).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user!")
	}

	return c.JSON(fiber.Map{"insertedId": newUser.ID})
}
