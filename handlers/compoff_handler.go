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

type CompoffHandler struct {
	compoffRepo *repository.CompoffRepository
}

func NewCompoffHandler(compoffRepo *repository.CompoffRepository) *CompoffHandler {
	return &CompoffHandler{compoffRepo: compoffRepo}
}

// SubmitCompoffRequest godoc
// @Summary Submit comp-off request
// @Tags Compoff
// @Accept json
// @Produce json
// @Param payload body models.CompoffRequestPayload true "Request data"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse "Missing required fields for comp-off request"
// @Router /compoff-request [post]
func (h *CompoffHandler) SubmitCompoffRequest(c *fiber.Ctx) error {
	var payload models.CompoffRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields for comp-off request"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields for comp-off request"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.compoffRepo.Submit(ctx, &payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Comp-off request submitted successfully!"})
}

// GetPendingCompoffRequests godoc
// @Summary Pending comp-off review queue
// @Tags Admin
// @Produce json
// @Success 200 {array} models.PendingCompoffRequest
// @Router /admin/compoff-requests [get]
func (h *CompoffHandler) GetPendingCompoffRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.compoffRepo.PendingRequests(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// ProcessCompoffAction godoc
// @Summary Approve or reject a comp-off request
// @Description Approval credits the employee one comp-off day
// @Tags Admin
// @Accept json
// @Produce json
// @Param record_id path string true "Request record id"
// @Param payload body models.CompoffActionPayload true "Action and optional comment"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse "Invalid action"
// @Failure 404 {object} models.MessageResponse "Comp-off request not found"
// @Router /admin/compoff-action/{record_id} [put]
func (h *CompoffHandler) ProcessCompoffAction(c *fiber.Ctx) error {
	var payload models.CompoffActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid action"})
	}
	if payload.Action != "Approved" && payload.Action != "Rejected" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid action"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.compoffRepo.ProcessAction(ctx, c.Params("record_id"), payload.Action, payload.Comment)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Comp-off request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Comp-off request processed successfully!"})
}
