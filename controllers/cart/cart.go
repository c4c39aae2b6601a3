package cartController

import (
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSelectedClasses lists the authenticated user's cart.
func GetSelectedClasses(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.SelectedClass{})
	}

	decodedEmail, ok := c.Locals("email").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	if email != decodedEmail {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
	}

	var selected []models.SelectedClass
	if err := database.Database.Db.
		Where("email = ?", email).
		Find(&selected).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch selected classes!")
	}

	return c.JSON(selected)
}

// AddSelectedClass puts a class into a user's cart.
func AddSelectedClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSelection").(*struct {
		Email           string  `json:"email"`
		ClassID         uint    `json:"classId"`
		ClassName       string  `json:"className"`
		Image           string  `json:"image"`
		Price           float64 `json:"price"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	selected := models.SelectedClass{
		Email:           reqData.Email,
		ClassID:         reqData.ClassID,
		ClassName:       reqData.ClassName,
		Image:           reqData.Image,
		Price:           reqData.Price,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
	}

	if err := database.Database.Db.Create(&selected).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add selected class!")
	}

	return c.JSON(fiber.Map{"insertedId": selected.ID})
}

// DeleteSelectedClass removes a cart entry by id.
func DeleteSelectedClass(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid selection id!")
	}

	result := database.Database.Db.Delete(&models.SelectedClass{}, id)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete selected class!")
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}
