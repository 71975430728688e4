package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"hrms-backend/config"
	_ "hrms-backend/docs"
	"hrms-backend/pkg/mailer"
	"hrms-backend/router"
	"hrms-backend/seeder"
)

// @title HRMS Backend API
// @version 1.0
// @description Human resources management backend: registration, profiles, attendance, leave and comp-off workflows, notifications and admin reporting.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Auth
// @tag.description Registration, login and password management
//
// @tag.name Profile
// @tag.description Employee profile endpoints
//
// @tag.name Notifications
// @tag.description Per-employee notification feed
//
// @tag.name Attendance
// @tag.description Clock-in / clock-out sessions
//
// @tag.name Leave
// @tag.description Leave applications and balances
//
// @tag.name Compoff
// @tag.description Comp-off requests
//
// @tag.name Admin
// @tag.description Review queues, password resets and reporting
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	db, err := config.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	if err := config.InitDatabase(db); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := seeder.SeedHolidays(db); err != nil {
		log.Fatalf("Failed to seed holidays: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, db, cfg, mail)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
