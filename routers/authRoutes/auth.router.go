package authRoutes

import (
	authControllers "speakup/controllers/auth"
	authValidators "speakup/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidators.IssueToken(), authControllers.IssueToken)
	app.Post("/users", authValidators.CreateUser(), authControllers.CreateUser)
}
