package cartValidator

import (
	"speakup/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AddSelectedClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string  `json:"email"`
			ClassID         uint    `json:"classId"`
			ClassName       string  `json:"className"`
			Image           string  `json:"image"`
			Price           float64 `json:"price"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}

		// Validate ClassID
		if reqData.ClassID == 0 {
			errors["classId"] = "Class id is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelection", reqData)
		return c.Next()
	}
}
