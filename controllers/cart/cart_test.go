package cartController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"speakup/config"
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	cartValidators "speakup/validators/cart"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	config.AppConfig = &config.Config{
		DBDriver: "sqlite",
		DBName:   filepath.Join(t.TempDir(), "test.db"),
		JWTKey:   "test-secret",
	}
	database.ConnectDb()
}

func setupApp() *fiber.App {
	app := fiber.New()
	app.Get("/selectedClasses", middleware.JWTMiddleware, GetSelectedClasses)
	app.Post("/selectedClasses", cartValidators.AddSelectedClass(), AddSelectedClass)
	app.Delete("/selectedClasses/:id", DeleteSelectedClass)
	return app
}

func bearer(t *testing.T, email string) string {
	token, err := middleware.GenerateJWT(email, "Test User")
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestGetSelectedClassesGuards(t *testing.T) {
	setupTestDB(t)
	app := setupApp()

	// Missing bearer credential
	req, _ := http.NewRequest("GET", "/selectedClasses?email=student@example.com", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Identity mismatch leaks nothing
	req, _ = http.NewRequest("GET", "/selectedClasses?email=other@example.com", nil)
	req.Header.Set("Authorization", bearer(t, "student@example.com"))
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "forbidden access", body["message"])
}

func TestCartLifecycle(t *testing.T) {
	setupTestDB(t)
	app := setupApp()

	// Add a class to the cart
	raw, _ := json.Marshal(fiber.Map{
		"email":     "student@example.com",
		"classId":   7,
		"className": "Spanish",
		"price":     80,
	})
	req, _ := http.NewRequest("POST", "/selectedClasses", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Another user's entry must not show up in the listing
	other := models.SelectedClass{Email: "other@example.com", ClassID: 9, ClassName: "French"}
	assert.NoError(t, database.Database.Db.Create(&other).Error)

	req, _ = http.NewRequest("GET", "/selectedClasses?email=student@example.com", nil)
	req.Header.Set("Authorization", bearer(t, "student@example.com"))
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var selected []models.SelectedClass
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&selected))
	assert.Len(t, selected, 1)
	assert.Equal(t, "Spanish", selected[0].ClassName)

	// Remove it again
	req, _ = http.NewRequest("DELETE", "/selectedClasses/1", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	err = database.Database.Db.First(&models.SelectedClass{}, 1).Error
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestDeleteSelectedClassBadID(t *testing.T) {
	setupTestDB(t)
	app := setupApp()

	req, _ := http.NewRequest("DELETE", "/selectedClasses/not-a-number", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
