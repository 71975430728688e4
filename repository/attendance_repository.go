package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"hrms-backend/models"
)

type AttendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// RecordLogin always inserts a fresh session row. Overlapping sessions for
// the same employee and day are allowed.
func (r *AttendanceRepository) RecordLogin(ctx context.Context, p *models.AttendanceLoginPayload) (*models.AttendanceRecord, error) {
	record := &models.AttendanceRecord{
		RecordID:     uuid.New().String(),
		EmployeeID:   p.EmployeeID,
		Date:         p.Date,
		LoginTime:    time.Now().Format("15:04:05"),
		WorkLocation: p.WorkLocation,
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO attendance_records (record_id, employee_id, date, login_time, work_location) VALUES (?, ?, ?, ?, ?)",
		record.RecordID, record.EmployeeID, record.Date, record.LoginTime, record.WorkLocation)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// RecordLogout closes an open session. A missing or already closed record
// is ErrNotFound; a closed record's logout_time is never overwritten.
func (r *AttendanceRepository) RecordLogout(ctx context.Context, recordID string) (string, error) {
	logoutTime := time.Now().Format("15:04:05")
	res, err := r.db.ExecContext(ctx,
		"UPDATE attendance_records SET logout_time = ? WHERE record_id = ? AND logout_time IS NULL",
		logoutTime, recordID)
	if err != nil {
		return "", err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return logoutTime, nil
}

// HistoryByEmployee lists sessions joined with the employee name, most
// recent date first, then most recent login.
func (r *AttendanceRepository) HistoryByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ar.record_id, ar.date, ar.login_time, ar.work_location, ar.logout_time,
		       e.first_name, e.last_name
		FROM attendance_records ar JOIN employees e ON ar.employee_id = e.id
		WHERE ar.employee_id = ? ORDER BY ar.date DESC, ar.login_time DESC`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.AttendanceHistoryEntry{}
	for rows.Next() {
		var entry models.AttendanceHistoryEntry
		var firstName, lastName string
		if err := rows.Scan(&entry.RecordID, &entry.Date, &entry.LoginTime,
			&entry.WorkLocation, &entry.LogoutTime, &firstName, &lastName); err != nil {
			return nil, err
		}
		entry.EmployeeName = firstName + " " + lastName
		history = append(history, entry)
	}
	return history, rows.Err()
}
