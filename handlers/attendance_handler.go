package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/models"
	util "hrms-backend/pkg/utils"
	"hrms-backend/repository"
)

type AttendanceHandler struct {
	attendanceRepo *repository.AttendanceRepository
}

func NewAttendanceHandler(attendanceRepo *repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendanceRepo: attendanceRepo}
}

// AttendanceLogin godoc
// @Summary Record clock-in
// @Description Inserts a new attendance session stamped with the current wall-clock time
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body models.AttendanceLoginPayload true "Clock-in data"
// @Success 201 {object} models.AttendanceLoginResponse
// @Failure 400 {object} models.MessageResponse
// @Router /attendance/login [post]
func (h *AttendanceHandler) AttendanceLogin(c *fiber.Ctx) error {
	var payload models.AttendanceLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required attendance login fields"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required attendance login fields"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	record, err := h.attendanceRepo.RecordLogin(ctx, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error recording login: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Login recorded successfully!",
		"record": fiber.Map{
			"record_id":     record.RecordID,
			"employee_id":   record.EmployeeID,
			"date":          record.Date,
			"login_time":    record.LoginTime,
			"employee_name": payload.EmployeeName,
			"work_location": record.WorkLocation,
			"logout_time":   nil,
		},
	})
}

// AttendanceLogout godoc
// @Summary Record clock-out
// @Description Closes an open session; a missing or already closed record is 404
// @Tags Attendance
// @Produce json
// @Param record_id path string true "Attendance record id"
// @Success 200 {object} models.AttendanceLogoutResponse
// @Failure 404 {object} models.MessageResponse "Attendance record not found or already logged out"
// @Router /attendance/logout/{record_id} [put]
func (h *AttendanceHandler) AttendanceLogout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	logoutTime, err := h.attendanceRepo.RecordLogout(ctx, c.Params("record_id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Attendance record not found or already logged out"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error recording logout: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Logout recorded successfully!",
		"logout_time": logoutTime,
	})
}

// GetAttendanceHistory godoc
// @Summary List attendance history
// @Tags Attendance
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {array} models.AttendanceHistoryEntry
// @Router /attendance/{employee_id} [get]
func (h *AttendanceHandler) GetAttendanceHistory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	history, err := h.attendanceRepo.HistoryByEmployee(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(history)
}
