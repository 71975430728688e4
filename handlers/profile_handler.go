package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/repository"
)

type ProfileHandler struct {
	employeeRepo *repository.EmployeeRepository
}

func NewProfileHandler(employeeRepo *repository.EmployeeRepository) *ProfileHandler {
	return &ProfileHandler{employeeRepo: employeeRepo}
}

// GetProfile godoc
// @Summary Get employee profile
// @Tags Profile
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.MessageResponse "Employee not found"
// @Router /profile/{employee_id} [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByID(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(employee)
}

// UpdateProfile godoc
// @Summary Update employee profile
// @Description Applies the allow-listed fields present in the body; anything else is ignored
// @Tags Profile
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee id"
// @Param fields body object true "Partial profile fields"
// @Success 200 {object} models.UpdateProfileSuccessResponse
// @Failure 400 {object} models.MessageResponse "No valid fields to update"
// @Failure 404 {object} models.MessageResponse "Employee not found"
// @Router /profile/{employee_id} [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No valid fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.UpdateProfile(ctx, c.Params("employee_id"), data)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Employee not found"})
		case repository.ErrNoFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No valid fields to update"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully!",
		"user":    employee,
	})
}
