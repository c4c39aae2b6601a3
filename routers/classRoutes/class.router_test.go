package classRoutes

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func bearer(t *testing.T, email string) string {
	token, err := middleware.GenerateJWT(email, "Test User")
	assert.NoError(t, err)
	return "Bearer " + token
}

func seedUser(t *testing.T, email string, role models.Role) models.User {
	user := models.User{Name: "Test User", Email: email, Role: role}
	assert.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func seedPendingClass(t *testing.T) models.Class {
	class := models.Class{
		Name:            "under-review",
		InstructorName:  "Instructor",
		InstructorEmail: "teacher@example.com",
		Price:           50,
		TotalSeats:      10,
		AvailableSeats:  10,
		Status:          models.StatusPending,
	}
	assert.NoError(t, database.Database.Db.Create(&class).Error)
	return class
}

func patch(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req, _ = http.NewRequest("PATCH", path, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest("PATCH", path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

// In compatibility mode the status transitions stay open, matching the
// legacy deployment. Strict mode gates them behind the admin role.
func TestClassStatusCompatMode(t *testing.T) {
	setupTestDB(t, false)
	app := fiber.New()
	SetupClassRoutes(app)

	approved := seedPendingClass(t)
	denied := seedPendingClass(t)

	resp := patch(t, app, fmt.Sprintf("/classes/approved/%d", approved.ID), "", nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp = patch(t, app, fmt.Sprintf("/classes/denied/%d", denied.ID), "", nil)
	assert.Equal(t, 200, resp.StatusCode)

	var got models.Class
	assert.NoError(t, database.Database.Db.First(&got, approved.ID).Error)
	assert.Equal(t, models.StatusApproved, got.Status)
	var gotDenied models.Class
	assert.NoError(t, database.Database.Db.First(&gotDenied, denied.ID).Error)
	assert.Equal(t, models.StatusDenied, gotDenied.Status)
}

func TestClassStatusStrictMode(t *testing.T) {
	setupTestDB(t, true)
	app := fiber.New()
	SetupClassRoutes(app)

	seedUser(t, "admin@example.com", models.RoleAdmin)
	seedUser(t, "student@example.com", models.RoleNone)
	class := seedPendingClass(t)
	path := fmt.Sprintf("/classes/approved/%d", class.ID)

	// No token
	resp := patch(t, app, path, "", nil)
	assert.Equal(t, 401, resp.StatusCode)

	// Wrong role
	resp = patch(t, app, path, bearer(t, "student@example.com"), nil)
	assert.Equal(t, 403, resp.StatusCode)

	var unchanged models.Class
	assert.NoError(t, database.Database.Db.First(&unchanged, class.ID).Error)
	assert.Equal(t, models.StatusPending, unchanged.Status)

	// Admin is admitted and the transition lands
	resp = patch(t, app, path, bearer(t, "admin@example.com"), nil)
	assert.Equal(t, 200, resp.StatusCode)

	var got models.Class
	assert.NoError(t, database.Database.Db.First(&got, class.ID).Error)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestSetFeedback(t *testing.T) {
	setupTestDB(t, false)
	app := fiber.New()
	SetupClassRoutes(app)

	seedUser(t, "admin@example.com", models.RoleAdmin)
	seedUser(t, "student@example.com", models.RoleNone)
	class := seedPendingClass(t)
	path := fmt.Sprintf("/classes/feedback/%d", class.ID)
	body := fiber.Map{"feedback": "Needs a syllabus before approval."}

	// Feedback is admin-gated in every mode
	resp := patch(t, app, path, "", body)
	assert.Equal(t, 401, resp.StatusCode)

	resp = patch(t, app, path, bearer(t, "student@example.com"), body)
	assert.Equal(t, 403, resp.StatusCode)

	resp = patch(t, app, path, bearer(t, "admin@example.com"), body)
	assert.Equal(t, 200, resp.StatusCode)

	var got models.Class
	assert.NoError(t, database.Database.Db.First(&got, class.ID).Error)
	assert.Equal(t, "Needs a syllabus before approval.", got.Feedback)
}
