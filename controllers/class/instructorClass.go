package classController

import (
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateClass inserts a new class pending admin review.
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*struct {
		Name            string  `json:"name"`
		Image           string  `json:"image"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail"`
		Price           float64 `json:"price"`
		AvailableSeats  int     `json:"availableSeats"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	class := models.Class{
		Name:            reqData.Name,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		TotalSeats:      reqData.AvailableSeats,
		AvailableSeats:  reqData.AvailableSeats,
		Enrolled:        0,
		Status:          models.StatusPending,
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create class!")
	}

	return c.JSON(fiber.Map{"insertedId": class.ID})
}

// GetMyClasses lists the classes owned by the authenticated instructor.
func GetMyClasses(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.Class{})
	}

	decodedEmail, ok := c.Locals("email").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	if email != decodedEmail {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
	}

	var classes []models.Class
	if err := database.Database.Db.
		Where("instructor_email = ?", email).
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch classes!")
	}

	return c.JSON(classes)
}

// UpdateClass applies a field-set patch to a class.
func UpdateClass(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid class id!")
	}

	reqData, ok := c.Locals("validatedClassUpdate").(*struct {
		Name           *string  `json:"name"`
		Image          *string  `json:"image"`
		Price          *float64 `json:"price"`
		AvailableSeats *int     `json:"availableSeats"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Image != nil {
		updates["image"] = *reqData.Image
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.AvailableSeats != nil {
		updates["available_seats"] = *reqData.AvailableSeats
	}

	result := database.Database.Db.Model(&models.Class{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update class!")
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}
