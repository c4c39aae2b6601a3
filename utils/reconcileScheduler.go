package utils

import (
	"fmt"
	"log"
	"speakup/config"
	"speakup/database"
	"speakup/models"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[RECONCILE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileEnrollments re-derives each class's enrolled count from the
// payments table and rewrites any class whose counters drifted. Payments are
// the source of truth: enrolled must equal the number of payments for the
// class and available seats must equal total seats minus that number.
func ReconcileEnrollments() {
	db := database.Database.Db

	type paymentCount struct {
		ClassID uint
		Count   int
	}
	var counts []paymentCount
	if err := db.Model(&models.Payment{}).
		Select("class_id, count(*) as count").
		Group("class_id").
		Scan(&counts).Error; err != nil {
		logScheduler("Error counting payments: " + err.Error())
		return
	}

	countByClass := make(map[uint]int, len(counts))
	for _, pc := range counts {
		countByClass[pc.ClassID] = pc.Count
	}

	var classes []models.Class
	if err := db.Find(&classes).Error; err != nil {
		logScheduler("Error fetching classes: " + err.Error())
		return
	}

	repaired := 0
	for _, class := range classes {
		enrolled := countByClass[class.ID]
		available := class.TotalSeats - enrolled
		if available < 0 {
			available = 0
		}

		if class.Enrolled == enrolled && class.AvailableSeats == available {
			continue
		}

		if err := db.Model(&models.Class{}).
			Where("id = ?", class.ID).
			Updates(map[string]interface{}{
				"enrolled":        enrolled,
				"available_seats": available,
			}).Error; err != nil {
			logScheduler(fmt.Sprintf("Error repairing class %d: %v", class.ID, err))
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logScheduler(fmt.Sprintf("Repaired counters on %d classes", repaired))
	}
}

// StartReconcileScheduler runs the counter reconciliation on the configured
// cron schedule. The returned cron is stopped on shutdown.
func StartReconcileScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReconcileCron, ReconcileEnrollments)
	if err != nil {
		log.Fatalf("Failed to schedule reconciliation job: %v", err)
	}

	c.Start()
	logScheduler("Reconciliation scheduler started (" + config.AppConfig.ReconcileCron + ")")
	return c
}
