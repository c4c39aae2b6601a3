package userRoutes

import (
	"speakup/config"
	userControllers "speakup/controllers/user"
	"speakup/middleware"
	"speakup/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/users", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.GetAllUsers)

	// Role checks for the authenticated identity
	app.Get("/users/admin/:email", middleware.JWTMiddleware, userControllers.CheckAdmin)
	app.Get("/users/instructor/:email", middleware.JWTMiddleware, userControllers.CheckInstructor)

	// Role promotion. The legacy deployment left these open; strict mode
	// gates them behind the admin role.
	if config.AppConfig.StrictGuards {
		app.Patch("/users/admin/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.PromoteAdmin)
		app.Patch("/users/instructor/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.PromoteInstructor)
	} else {
		app.Patch("/users/admin/:id", userControllers.PromoteAdmin)
		app.Patch("/users/instructor/:id", userControllers.PromoteInstructor)
	}
}
