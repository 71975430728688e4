package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"hrms-backend/models"
)

type CompoffRepository struct {
	db *sql.DB
}

func NewCompoffRepository(db *sql.DB) *CompoffRepository {
	return &CompoffRepository{db: db}
}

// Submit inserts a pending comp-off request and notifies the submitter.
func (r *CompoffRepository) Submit(ctx context.Context, p *models.CompoffRequestPayload) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO compoff_requests (record_id, employee_id, work_date, description) VALUES (?, ?, ?, ?)",
		uuid.New().String(), p.EmployeeID, p.WorkDate, p.Description)
	if err != nil {
		return err
	}

	createNotification(ctx, tx, p.EmployeeID,
		fmt.Sprintf("Your request to earn a comp-off for working on %s has been submitted for approval.", p.WorkDate))
	return tx.Commit()
}

// PendingRequests returns the admin review queue, oldest submission first.
func (r *CompoffRepository) PendingRequests(ctx context.Context) ([]models.PendingCompoffRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.record_id, c.employee_id, c.work_date, c.description, c.status,
		       c.comment, c.submitted_at, e.first_name, e.last_name, e.email
		FROM compoff_requests c JOIN employees e ON c.employee_id = e.id
		WHERE c.status = 'Pending' ORDER BY c.submitted_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.PendingCompoffRequest{}
	for rows.Next() {
		var p models.PendingCompoffRequest
		if err := rows.Scan(&p.RecordID, &p.EmployeeID, &p.WorkDate, &p.Description,
			&p.Status, &p.Comment, &p.SubmittedAt, &p.FirstName, &p.LastName, &p.Email); err != nil {
			return nil, err
		}
		requests = append(requests, p)
	}
	return requests, rows.Err()
}

// ProcessAction records the admin decision. Approval credits the employee
// one comp-off day; the status is not checked first, so re-approving an
// already processed request credits it again.
func (r *CompoffRepository) ProcessAction(ctx context.Context, recordID, action string, comment *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var employeeID, workDate string
	err = tx.QueryRowContext(ctx,
		"SELECT employee_id, work_date FROM compoff_requests WHERE record_id = ?",
		recordID).Scan(&employeeID, &workDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx,
		"UPDATE compoff_requests SET status = ?, comment = ? WHERE record_id = ?",
		action, comment, recordID); err != nil {
		return err
	}

	var message string
	if action == "Approved" {
		if _, err = tx.ExecContext(ctx,
			"UPDATE leave_balances SET compoff = compoff + 1 WHERE employee_id = ?", employeeID); err != nil {
			return err
		}
		message = fmt.Sprintf("Your request to earn a comp-off for working on %s has been approved. Your balance has been updated.", workDate)
	} else {
		message = fmt.Sprintf("Your request to earn a comp-off for working on %s has been rejected.", workDate)
	}
	if comment != nil && *comment != "" {
		message += fmt.Sprintf(" Admin comment: %s", *comment)
	}

	createNotification(ctx, tx, employeeID, message)
	return tx.Commit()
}

func (r *CompoffRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM compoff_requests WHERE status = 'Pending'").Scan(&count)
	return count, err
}
