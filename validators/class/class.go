package classValidator

import (
	"speakup/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string  `json:"name"`
			Image           string  `json:"image"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail"`
			Price           float64 `json:"price"`
			AvailableSeats  int     `json:"availableSeats"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		}

		// Validate InstructorEmail
		if strings.TrimSpace(reqData.InstructorEmail) == "" {
			errors["instructorEmail"] = "Instructor email is required!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		// Validate AvailableSeats
		if reqData.AvailableSeats < 1 {
			errors["availableSeats"] = "Available seats must be greater than 0!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           *string  `json:"name"`
			Image          *string  `json:"image"`
			Price          *float64 `json:"price"`
			AvailableSeats *int     `json:"availableSeats"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.AvailableSeats != nil && *reqData.AvailableSeats < 0 {
			errors["availableSeats"] = "Available seats must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClassUpdate", reqData)
		return c.Next()
	}
}

func SetFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Feedback string `json:"feedback"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Feedback
		if strings.TrimSpace(reqData.Feedback) == "" {
			errors["feedback"] = "Feedback is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
