package paymentValidator

import (
	"speakup/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Price
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func RecordPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email         string    `json:"email"`
			TransactionID string    `json:"transactionId"`
			Price         float64   `json:"price"`
			Date          time.Time `json:"date"`
			CartID        uint      `json:"cartId"`
			ClassID       uint      `json:"classId"`
			ClassName     string    `json:"className"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}

		// Validate CartID
		if reqData.CartID == 0 {
			errors["cartId"] = "Cart id is required!"
		}

		// Validate ClassID
		if reqData.ClassID == 0 {
			errors["classId"] = "Class id is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
