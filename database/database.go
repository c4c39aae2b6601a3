package database

import (
	"fmt"
	"log"
	"speakup/config"
	"speakup/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection and runs migrations.
// The driver is selected from config: postgres in deployments, sqlite in tests.
func ConnectDb() {
	var dialector gorm.Dialector

	switch config.AppConfig.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(config.AppConfig.DBName)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPass,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// CloseDb releases the connection pool. Called once on shutdown.
func CloseDb() {
	if Database.Db == nil {
		return
	}
	sqlDB, err := Database.Db.DB()
	if err != nil {
		log.Printf("Failed to get database instance on close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.SelectedClass{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
