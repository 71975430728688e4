package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DatabasePath string

	// Admin identity checked by the login handler. There is exactly one
	// admin account and it never lives in the employees table.
	AdminEmail    string
	AdminPassword string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		log.Fatalf("MAIL_PORT must be a number: %v", err)
	}

	return &AppConfig{
		Port:          getEnv("PORT", "5000"),
		DatabasePath:  getEnv("DATABASE_PATH", "hrms.db"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD_RAW", "123"),
		MailHost:      getEnv("MAIL_SERVER", "smtp.gmail.com"),
		MailPort:      mailPort,
		MailUsername:  getEnv("MAIL_USERNAME", ""),
		MailPassword:  getEnv("MAIL_PASSWORD", ""),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
