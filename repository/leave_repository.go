package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"hrms-backend/models"
)

type LeaveRepository struct {
	db *sql.DB
}

func NewLeaveRepository(db *sql.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Submit inserts a pending application and notifies the submitter.
func (r *LeaveRepository) Submit(ctx context.Context, p *models.LeaveApplicationPayload) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO leave_applications (record_id, employee_id, leave_type, from_date, to_date, description, leave_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), p.EmployeeID, p.LeaveType, p.FromDate, p.ToDate, p.Description, *p.LeaveDays)
	if err != nil {
		return err
	}

	createNotification(ctx, tx, p.EmployeeID,
		fmt.Sprintf("Your request for %d days of %s has been submitted.", *p.LeaveDays, p.LeaveType))
	return tx.Commit()
}

// ListByEmployee returns the employee's applications, newest submission
// first.
func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.LeaveApplication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT record_id, employee_id, leave_type, from_date, to_date, description,
		       status, comment, submitted_at, leave_days
		FROM leave_applications WHERE employee_id = ? ORDER BY submitted_at DESC`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []models.LeaveApplication{}
	for rows.Next() {
		var a models.LeaveApplication
		if err := rows.Scan(&a.RecordID, &a.EmployeeID, &a.LeaveType, &a.FromDate,
			&a.ToDate, &a.Description, &a.Status, &a.Comment, &a.SubmittedAt, &a.LeaveDays); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// Balance computes {allotted, availed, balance} per leave type. Availed is
// derived from approved applications at read time; the allotment row is
// created lazily with its column defaults when missing.
func (r *LeaveRepository) Balance(ctx context.Context, employeeID string) (map[string]models.BalanceDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT leave_type, SUM(leave_days) AS total_availed
		FROM leave_applications WHERE employee_id = ? AND status = 'Approved' GROUP BY leave_type`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	availed := map[string]int{}
	for rows.Next() {
		var leaveType string
		var total int
		if err := rows.Scan(&leaveType, &total); err != nil {
			return nil, err
		}
		availed[leaveType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balance, err := r.findBalance(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		if _, err := r.db.ExecContext(ctx,
			"INSERT INTO leave_balances (employee_id) VALUES (?)", employeeID); err != nil {
			return nil, err
		}
		if balance, err = r.findBalance(ctx, employeeID); err != nil {
			return nil, err
		}
	}

	result := map[string]models.BalanceDetail{}
	for _, col := range models.BalanceColumns {
		allotted := balance.ByColumn(col.Column)
		used := availed[col.LeaveType]
		result[col.Column] = models.BalanceDetail{
			Allotted: allotted,
			Availed:  used,
			Balance:  allotted - used,
		}
	}
	return result, nil
}

func (r *LeaveRepository) findBalance(ctx context.Context, employeeID string) (*models.LeaveBalance, error) {
	var b models.LeaveBalance
	err := r.db.QueryRowContext(ctx, `
		SELECT employee_id, sick_leave, casual_leave, earned_leave, paternity_leave, wfh, compoff
		FROM leave_balances WHERE employee_id = ?`, employeeID).
		Scan(&b.EmployeeID, &b.SickLeave, &b.CasualLeave, &b.EarnedLeave,
			&b.PaternityLeave, &b.Wfh, &b.Compoff)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// PendingRequests returns the admin review queue, oldest submission first.
func (r *LeaveRepository) PendingRequests(ctx context.Context) ([]models.PendingLeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.record_id, l.employee_id, l.leave_type, l.from_date, l.to_date,
		       l.description, l.status, l.comment, l.submitted_at, l.leave_days,
		       e.first_name, e.last_name, e.email, e.reporting_manager1, e.reporting_manager2
		FROM leave_applications l JOIN employees e ON l.employee_id = e.id
		WHERE l.status = 'Pending' ORDER BY l.submitted_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.PendingLeaveRequest{}
	for rows.Next() {
		var p models.PendingLeaveRequest
		if err := rows.Scan(&p.RecordID, &p.EmployeeID, &p.LeaveType, &p.FromDate,
			&p.ToDate, &p.Description, &p.Status, &p.Comment, &p.SubmittedAt, &p.LeaveDays,
			&p.FirstName, &p.LastName, &p.Email, &p.ReportingManager1, &p.ReportingManager2); err != nil {
			return nil, err
		}
		requests = append(requests, p)
	}
	return requests, rows.Err()
}

// ProcessAction records the admin decision and notifies the requester.
// Approval does not mutate any counter; availed amounts are derived when
// the balance is read.
func (r *LeaveRepository) ProcessAction(ctx context.Context, recordID, action string, comment *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var employeeID, leaveType string
	var leaveDays int
	err = tx.QueryRowContext(ctx,
		"SELECT employee_id, leave_type, leave_days FROM leave_applications WHERE record_id = ?",
		recordID).Scan(&employeeID, &leaveType, &leaveDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx,
		"UPDATE leave_applications SET status = ?, comment = ? WHERE record_id = ?",
		action, comment, recordID); err != nil {
		return err
	}

	message := fmt.Sprintf("Your request for %d days of %s has been %s.",
		leaveDays, leaveType, lowerAction(action))
	if comment != nil && *comment != "" {
		message += fmt.Sprintf(" Admin comment: %s", *comment)
	}
	createNotification(ctx, tx, employeeID, message)
	return tx.Commit()
}

func (r *LeaveRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM leave_applications WHERE status = 'Pending'").Scan(&count)
	return count, err
}

func lowerAction(action string) string {
	switch action {
	case "Approved":
		return "approved"
	case "Rejected":
		return "rejected"
	}
	return action
}
