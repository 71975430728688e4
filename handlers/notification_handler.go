package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/repository"
)

type NotificationHandler struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationHandler(notificationRepo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// GetNotifications godoc
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {array} models.NotificationView
// @Router /notifications/{employee_id} [get]
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	notifications, err := h.notificationRepo.ListByEmployee(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

// MarkNotificationsRead godoc
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Param employee_id path string true "Employee id"
// @Success 200 {object} models.MessageResponse
// @Router /notifications/mark-read/{employee_id} [put]
func (h *NotificationHandler) MarkNotificationsRead(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	count, err := h.notificationRepo.MarkAllRead(ctx, c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fmt.Sprintf("Database error: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("%d notifications marked as read.", count),
	})
}
