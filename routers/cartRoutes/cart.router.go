package cartRoutes

import (
	"speakup/config"
	cartControllers "speakup/controllers/cart"
	"speakup/middleware"
	cartValidators "speakup/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	app.Get("/selectedClasses", middleware.JWTMiddleware, cartControllers.GetSelectedClasses)

	// Cart mutation. Open in the legacy deployment; strict mode requires a
	// valid token.
	if config.AppConfig.StrictGuards {
		app.Post("/selectedClasses", middleware.JWTMiddleware, cartValidators.AddSelectedClass(), cartControllers.AddSelectedClass)
		app.Delete("/selectedClasses/:id", middleware.JWTMiddleware, cartControllers.DeleteSelectedClass)
	} else {
		app.Post("/selectedClasses", cartValidators.AddSelectedClass(), cartControllers.AddSelectedClass)
		app.Delete("/selectedClasses/:id", cartControllers.DeleteSelectedClass)
	}
}
