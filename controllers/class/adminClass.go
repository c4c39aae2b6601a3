package classController

import (
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllClasses lists every class regardless of status. This is the admin
// review queue, so pending and denied entries are included.
func GetAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch classes!")
	}
	return c.JSON(classes)
}

// ApproveClass transitions a class to approved.
func ApproveClass(c *fiber.Ctx) error {
	return setStatus(c, models.StatusApproved)
}

// DenyClass transitions a class to denied.
func DenyClass(c *fiber.Ctx) error {
	return setStatus(c, models.StatusDenied)
}

func setStatus(c *fiber.Ctx, status models.ClassStatus) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid class id!")
	}

	result := database.Database.Db.Model(&models.Class{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update class status!")
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}

// SetFeedback attaches admin feedback text to a class.
func SetFeedback(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid class id!")
	}

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Feedback string `json:"feedback"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	result := database.Database.Db.Model(&models.Class{}).
		Where("id = ?", id).
		Update("feedback", reqData.Feedback)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update feedback!")
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}

// DeleteClass removes a class by id.
func DeleteClass(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid class id!")
	}

	result := database.Database.Db.Delete(&models.Class{}, id)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete class!")
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}
