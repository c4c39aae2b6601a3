package authValidator

import (
	"speakup/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func IssueToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email must be valid!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Photo string `json:"photo"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email must be valid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
