package classRoutes

import (
	"speakup/config"
	classControllers "speakup/controllers/class"
	"speakup/middleware"
	"speakup/models"
	classValidators "speakup/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	// Public browsing
	app.Get("/classes", classControllers.GetApprovedClasses)
	app.Get("/popular/classes", classControllers.GetPopularClasses)
	app.Get("/instructors", classControllers.GetInstructors)
	app.Get("/popular/instructors", classControllers.GetPopularInstructors)

	// Instructor workflows
	app.Post("/classes", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), classValidators.CreateClass(), classControllers.CreateClass)
	app.Get("/my-classes", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), classControllers.GetMyClasses)

	// Admin review queue and feedback
	app.Get("/classes/all", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classControllers.GetAllClasses)
	app.Patch("/classes/feedback/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classValidators.SetFeedback(), classControllers.SetFeedback)

	// Status transitions. Open in the legacy deployment; admin-gated in
	// strict mode.
	if config.AppConfig.StrictGuards {
		app.Patch("/classes/approved/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classControllers.ApproveClass)
		app.Patch("/classes/denied/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classControllers.DenyClass)
	} else {
		app.Patch("/classes/approved/:id", classControllers.ApproveClass)
		app.Patch("/classes/denied/:id", classControllers.DenyClass)
	}

	// Single-class CRUD. Registered after the named /classes/* routes so
	// the :id wildcard does not shadow them.
	app.Get("/classes/:id", classControllers.GetClassByID)
	app.Patch("/classes/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), classValidators.UpdateClass(), classControllers.UpdateClass)
	app.Delete("/classes/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classControllers.DeleteClass)
}
