package utils

import (
	"path/filepath"
	"testing"
	"time"

	"speakup/config"
	"speakup/database"
	"speakup/models"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) {
	config.AppConfig = &config.Config{
		DBDriver: "sqlite",
		DBName:   filepath.Join(t.TempDir(), "test.db"),
		JWTKey:   "test-secret",
	}
	database.ConnectDb()
}

func TestReconcileEnrollmentsRepairsDrift(t *testing.T) {
	setupTestDB(t)
	db := database.Database.Db

	// Counters drifted: the class claims 5 enrollments but only 2 payments exist
	class := models.Class{
		Name:            "drifted",
		InstructorEmail: "teacher@example.com",
		TotalSeats:      10,
		AvailableSeats:  5,
		Enrolled:        5,
		Status:          models.StatusApproved,
	}
	assert.NoError(t, db.Create(&class).Error)

	for i, email := range []string{"a@example.com", "b@example.com"} {
		payment := models.Payment{
			Email:     email,
			ClassID:   class.ID,
			CartID:    uint(i + 1),
			Date:      time.Now(),
			ReceiptID: email,
		}
		assert.NoError(t, db.Create(&payment).Error)
	}

	ReconcileEnrollments()

	var repaired models.Class
	assert.NoError(t, db.First(&repaired, class.ID).Error)
	assert.Equal(t, 2, repaired.Enrolled)
	assert.Equal(t, 8, repaired.AvailableSeats)
}

func TestReconcileEnrollmentsLeavesConsistentRows(t *testing.T) {
	setupTestDB(t)
	db := database.Database.Db

	class := models.Class{
		Name:            "consistent",
		InstructorEmail: "teacher@example.com",
		TotalSeats:      10,
		AvailableSeats:  10,
		Enrolled:        0,
		Status:          models.StatusApproved,
	}
	assert.NoError(t, db.Create(&class).Error)

	ReconcileEnrollments()

	var after models.Class
	assert.NoError(t, db.First(&after, class.ID).Error)
	assert.Equal(t, 0, after.Enrolled)
	assert.Equal(t, 10, after.AvailableSeats)
}
