package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string // postgres or sqlite
	DBHost   string
	DBUser   string
	DBPass   string
	DBName   string
	DBPort   string

	JWTKey string

	PaymentSecretKey string
	PaymentApiURL    string

	// StrictGuards applies auth/role middleware uniformly, including the
	// routes the legacy deployment left open (role promotion, class status
	// transitions, cart mutation).
	StrictGuards bool

	ReconcileCron string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "5000"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBUser:   getEnv("DB_USER", "postgres"),
		DBPass:   getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "speakup"),
		DBPort:   getEnv("DB_PORT", "5432"),

		JWTKey: getEnv("ACCESS_TOKEN_SECRET", "defaultSecret"),

		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentApiURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),

		StrictGuards: getEnvBool("STRICT_GUARDS", false),

		ReconcileCron: getEnv("RECONCILE_CRON", "@every 15m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_TOKEN_SECRET. Update it in your environment.")
	}
	if AppConfig.PaymentSecretKey == "" {
		log.Println("Warning: PAYMENT_SECRET_KEY is not set. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves an environment variable as a bool or returns the default bool value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
