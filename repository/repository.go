package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
)

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound    = errors.New("record not found")
	ErrEmailExists = errors.New("email already exists")
	ErrNoFields    = errors.New("no valid fields to update")
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so statements can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// createNotification appends a notification row for an employee. It is a
// best-effort side effect: a failure is logged and never aborts the
// enclosing transaction.
func createNotification(ctx context.Context, q DBTX, employeeID, message string) {
	_, err := q.ExecContext(ctx,
		"INSERT INTO notifications (notification_id, employee_id, message) VALUES (?, ?, ?)",
		uuid.New().String(), employeeID, message,
	)
	if err != nil {
		log.Printf("Database error creating notification: %v", err)
	}
}
