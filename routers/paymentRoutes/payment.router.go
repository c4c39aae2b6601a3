package paymentRoutes

import (
	paymentControllers "speakup/controllers/payment"
	"speakup/middleware"
	paymentValidators "speakup/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidators.CreateIntent(), paymentControllers.CreatePaymentIntent)
	app.Post("/payments", middleware.JWTMiddleware, paymentValidators.RecordPayment(), paymentControllers.RecordPayment)
	app.Get("/payments-history", middleware.JWTMiddleware, paymentControllers.GetPaymentHistory)
	app.Get("/enrolledClasses", middleware.JWTMiddleware, paymentControllers.GetEnrolledClasses)
}
