package repository

import (
	"context"
	"database/sql"

	"hrms-backend/models"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByEmployee returns the employee's notifications, newest first.
func (r *NotificationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.NotificationView, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT message, is_read FROM notifications WHERE employee_id = ? ORDER BY timestamp DESC",
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.NotificationView{}
	for rows.Next() {
		var n models.NotificationView
		if err := rows.Scan(&n.Message, &n.IsRead); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkAllRead flips every unread notification for the employee and returns
// how many were affected.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE employee_id = ? AND is_read = 0",
		employeeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
