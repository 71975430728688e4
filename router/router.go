package router

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"hrms-backend/config"
	_ "hrms-backend/docs"
	"hrms-backend/handlers"
	"hrms-backend/pkg/mailer"
	"hrms-backend/repository"
)

func SetupRoutes(app *fiber.App, db *sql.DB, cfg *config.AppConfig, mail mailer.Mailer) {
	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	compoffRepo := repository.NewCompoffRepository(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(employeeRepo, mail, cfg)
	profileHandler := handlers.NewProfileHandler(employeeRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo)
	compoffHandler := handlers.NewCompoffHandler(compoffRepo)
	adminHandler := handlers.NewAdminHandler(employeeRepo, leaveRepo, compoffRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HRMS Backend API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// Identity & auth
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Put("/force-change-password", authHandler.ForceChangePassword)
	app.Post("/forgot-password", authHandler.ForgotPassword)
	app.Put("/profile/change-password/:employee_id", authHandler.ChangePassword)

	// Profile
	app.Get("/profile/:employee_id", profileHandler.GetProfile)
	app.Put("/profile/:employee_id", profileHandler.UpdateProfile)

	// Notifications
	app.Get("/notifications/:employee_id", notificationHandler.GetNotifications)
	app.Put("/notifications/mark-read/:employee_id", notificationHandler.MarkNotificationsRead)

	// Attendance
	app.Post("/attendance/login", attendanceHandler.AttendanceLogin)
	app.Put("/attendance/logout/:record_id", attendanceHandler.AttendanceLogout)
	app.Get("/attendance/:employee_id", attendanceHandler.GetAttendanceHistory)

	// Leave workflow
	app.Post("/leave-application", leaveHandler.SubmitLeaveApplication)
	app.Get("/leave-applications/:employee_id", leaveHandler.GetLeaveApplications)
	app.Get("/leave-balance/:employee_id", leaveHandler.GetLeaveBalance)

	// Comp-off workflow
	app.Post("/compoff-request", compoffHandler.SubmitCompoffRequest)

	// Admin (authorization is enforced by the caller, not at this layer)
	app.Get("/admin/leave-requests", leaveHandler.GetPendingLeaveRequests)
	app.Put("/admin/leave-action/:record_id", leaveHandler.ProcessLeaveAction)
	app.Get("/admin/compoff-requests", compoffHandler.GetPendingCompoffRequests)
	app.Put("/admin/compoff-action/:record_id", compoffHandler.ProcessCompoffAction)
	app.Put("/admin/reset-employee-password", adminHandler.ResetEmployeePassword)
	app.Get("/admin/dashboard-stats", adminHandler.GetDashboardStats)

	log.Println("All application routes registered.")
}
