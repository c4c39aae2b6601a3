package paymentController

import (
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/processor"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intents is the processor client used for payment-intent creation. Set at
// startup; tests swap in a client pointed at a stub server.
var Intents *processor.Client

// CreatePaymentIntent asks the processor for a client secret covering the
// requested price.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Processor amounts are integral cents
	amount := int64(reqData.Price * 100)

	clientSecret, err := Intents.CreateIntent(amount)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create payment intent!")
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// RecordPayment runs the enrollment workflow: record the payment, clear the
// cart entry, and move one seat from available to enrolled. All three writes
// commit or roll back together, and the seat decrement only applies while
// seats remain, so concurrent last-seat purchases cannot oversell.
func RecordPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*struct {
		Email         string    `json:"email"`
		TransactionID string    `json:"transactionId"`
		Price         float64   `json:"price"`
		Date          time.Time `json:"date"`
		CartID        uint      `json:"cartId"`
		ClassID       uint      `json:"classId"`
		ClassName     string    `json:"className"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Fast path: a cart entry is purchased at most once. The unique index
	// on cart_id backs this up inside the transaction below.
	var existing models.Payment
	if err := db.Where("cart_id = ?", reqData.CartID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Payment already recorded for this cart entry!")
	}

	date := reqData.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := db.Begin()

	// A missing class and a sold-out class are different failures
	var class models.Class
	if err := tx.First(&class, reqData.ClassID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Class not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record payment!")
	}

	// Take a seat only while seats remain
	seatUpdate := tx.Model(&models.Class{}).
		Where("id = ? AND available_seats > 0", reqData.ClassID).
		Updates(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats - 1"),
			"enrolled":        gorm.Expr("enrolled + 1"),
		})
	if seatUpdate.Error != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record payment!")
	}
	if seatUpdate.RowsAffected == 0 {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusConflict, "No seats available!")
	}

	payment := models.Payment{
		Email:         reqData.Email,
		TransactionID: reqData.TransactionID,
		Price:         reqData.Price,
		Date:          date,
		CartID:        reqData.CartID,
		ClassID:       reqData.ClassID,
		ClassName:     reqData.ClassName,
		ReceiptID:     uuid.NewString(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()

		// The unique cart_id index rejects a concurrent purchase of the
		// same cart entry that slipped past the fast-path check
		if err := db.Where("cart_id = ?", reqData.CartID).First(&models.Payment{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Payment already recorded for this cart entry!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record payment!")
	}

	// Clearing an already-absent cart entry is a no-op
	deleteResult := tx.Delete(&models.SelectedClass{}, reqData.CartID)
	if deleteResult.Error != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record payment!")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record payment!")
	}

	return c.JSON(fiber.Map{
		"insertResult": payment,
		"deleteResult": fiber.Map{"deletedCount": deleteResult.RowsAffected},
	})
}

// GetPaymentHistory lists the authenticated user's payments, newest first.
func GetPaymentHistory(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.Payment{})
	}

	decodedEmail, ok := c.Locals("email").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	if email != decodedEmail {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "forbidden access")
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("email = ?", email).
		Order("date desc").
		Find(&payments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch payments!")
	}

	return c.JSON(payments)
}

// GetEnrolledClasses lists the classes the authenticated user has paid for.
func GetEnrolledClasses(c *fiber.Ctx) error {
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

	db := database.Database.Db

	var classes []models.Class
	paidClassIDs := db.Model(&models.Payment{}).
		Select("class_id").
		Where("email = ?", email)
	if err := db.Where("id IN (?)", paidClassIDs).Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrolled classes!")
	}

	return c.JSON(classes)
}
