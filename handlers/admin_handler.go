package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/models"
	"hrms-backend/pkg/password"
	util "hrms-backend/pkg/utils"
	"hrms-backend/repository"
)

type AdminHandler struct {
	employeeRepo *repository.EmployeeRepository
	leaveRepo    *repository.LeaveRepository
	compoffRepo  *repository.CompoffRepository
}

func NewAdminHandler(employeeRepo *repository.EmployeeRepository, leaveRepo *repository.LeaveRepository, compoffRepo *repository.CompoffRepository) *AdminHandler {
	return &AdminHandler{
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		compoffRepo:  compoffRepo,
	}
}

// ResetEmployeePassword godoc
// @Summary Reset an employee's password
// @Description Sets the given password, forces a change on next login and notifies the employee
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.AdminResetPasswordPayload true "Email and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse "Employee not found with that email"
// @Router /admin/reset-employee-password [put]
func (h *AdminHandler) ResetEmployeePassword(c *fiber.Ctx) error {
	var payload models.AdminResetPasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and new password are required"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and new password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Employee not found with that email"})
	}

	hashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	err = h.employeeRepo.ResetPassword(ctx, employee.ID, hashedPassword, true,
		"Your password was reset by an administrator.")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Password for %s has been reset successfully.", payload.Email),
	})
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Total employees plus pending leave and comp-off counts
// @Tags Admin
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /admin/dashboard-stats [get]
func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employeeCount, err := h.employeeRepo.Count(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	pendingLeaves, err := h.leaveRepo.CountPending(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	pendingCompoffs, err := h.compoffRepo.CountPending(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(models.DashboardStats{
		EmployeeCount:   employeeCount,
		PendingLeaves:   pendingLeaves,
		PendingCompoffs: pendingCompoffs,
	})
}
