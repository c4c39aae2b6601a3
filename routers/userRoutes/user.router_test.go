package userRoutes

import (
	"net/http"
	"path/filepath"
	"testing"

	"speakup/config"
	"speakup/database"
	"speakup/middleware"
	"speakup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T, strict bool) {
	config.AppConfig = &config.Config{
		DBDriver:     "sqlite",
		DBName:       filepath.Join(t.TempDir(), "test.db"),
		JWTKey:       "test-secret",
		StrictGuards: strict,
	}
	database.ConnectDb()
}

func promote(t *testing.T, app *fiber.App, token string) *http.Response {
	req, _ := http.NewRequest("PATCH", "/users/admin/1", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestRolePromotionCompatMode(t *testing.T) {
	setupTestDB(t, false)
	app := fiber.New()
	SetupUserRoutes(app)

	user := models.User{Email: "student@example.com", Role: models.RoleNone}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	// Legacy behavior: no guard on role promotion
	resp := promote(t, app, "")
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRolePromotionStrictMode(t *testing.T) {
	setupTestDB(t, true)
	app := fiber.New()
	SetupUserRoutes(app)

	admin := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	assert.NoError(t, database.Database.Db.Create(&admin).Error)
	student := models.User{Email: "student@example.com", Role: models.RoleNone}
	assert.NoError(t, database.Database.Db.Create(&student).Error)

	// No token
	resp := promote(t, app, "")
	assert.Equal(t, 401, resp.StatusCode)

	// Wrong role
	token, err := middleware.GenerateJWT("student@example.com", "Student")
	assert.NoError(t, err)
	resp = promote(t, app, "Bearer "+token)
	assert.Equal(t, 403, resp.StatusCode)

	// Admin is admitted
	token, err = middleware.GenerateJWT("admin@example.com", "Admin")
	assert.NoError(t, err)
	resp = promote(t, app, "Bearer "+token)
	assert.Equal(t, 200, resp.StatusCode)
}
