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

type LeaveHandler struct {
	leaveRepo *repository.LeaveRepository
}

func NewLeaveHandler(leaveRepo *repository.LeaveRepository) *LeaveHandler {
	return &LeaveHandler{leaveRepo: leaveRepo}
}

// SubmitLeaveApplication godoc
// @Summary Submit leave application
// @Description Inserts a pending application. leave_days may be zero but must be present; leave_type must be a known type.
// @Tags Leave
// @Accept json
// @Produce json
// @Param payload body models.LeaveApplicationPayload true "Application data"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse "Missing required fields for leave application"
// @Router /leave-application [post]
func (h *LeaveHandler) SubmitLeaveApplication(c *fiber.Ctx) error {
	var payload models.LeaveApplicationPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields for leave application"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields for leave application", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.leaveRepo.Submit(ctx, &payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d days of %s application submitted successfully!", *payload.LeaveDays, payload.LeaveType),
	})
}

// GetLeaveApplications godoc
// @Summary List own leave applications
// @Tags Leave
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {array} models.LeaveApplication
// @Router /leave-applications/{employee_id} [get]
func (h *LeaveHandler) GetLeaveApplications(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	applications, err := h.leaveRepo.ListByEmployee(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(applications)
}

// GetLeaveBalance godoc
// @Summary Leave balance breakdown
// @Description Returns {allotted, availed, balance} per leave type. Availed is the sum of approved applications for the type.
// @Tags Leave
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {object} map[string]models.BalanceDetail
// @Router /leave-balance/{employee_id} [get]
func (h *LeaveHandler) GetLeaveBalance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	balances, err := h.leaveRepo.Balance(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(balances)
}

// GetPendingLeaveRequests godoc
// @Summary Pending leave review queue
// @Description Pending applications joined with requester and manager fields, oldest first
// @Tags Admin
// @Produce json
// @Success 200 {array} models.PendingLeaveRequest
// @Router /admin/leave-requests [get]
func (h *LeaveHandler) GetPendingLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.leaveRepo.PendingRequests(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// ProcessLeaveAction godoc
// @Summary Approve or reject a leave application
// @Tags Admin
// @Accept json
// @Produce json
// @Param record_id path string true "Application record id"
// @Param payload body models.LeaveActionPayload true "Action and optional comment"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse "Invalid action"
// @Failure 404 {object} models.MessageResponse "Leave request not found"
// @Router /admin/leave-action/{record_id} [put]
func (h *LeaveHandler) ProcessLeaveAction(c *fiber.Ctx) error {
	var payload models.LeaveActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid action"})
	}
	if payload.Action != "Approved" && payload.Action != "Rejected" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid action"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.leaveRepo.ProcessAction(ctx, c.Params("record_id"), payload.Action, payload.Comment)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Leave request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Leave request processed successfully!"})
}
