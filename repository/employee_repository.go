package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hrms-backend/models"
)

const employeeColumns = `id, first_name, last_name, email, password, gender, dob,
	permanent_address, current_address, pan_number, aadhar_number, contactnumber,
	alternate_contact_number, alternate_contact_person, alternate_contact_relation,
	emergency_number, account_number, ifsc_code, account_holder_name, branch,
	department, reporting_manager1, reporting_manager1_mail, reporting_manager2,
	reporting_manager2_mail, employee_role, employment_status, join_date,
	personal_email, user_type, force_password_change`

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Password, &e.Gender, &e.DOB,
		&e.PermanentAddress, &e.CurrentAddress, &e.PanNumber, &e.AadharNumber,
		&e.ContactNumber, &e.AlternateContactNumber, &e.AlternateContactPerson,
		&e.AlternateContactRel, &e.EmergencyNumber, &e.AccountNumber, &e.IfscCode,
		&e.AccountHolderName, &e.Branch, &e.Department, &e.ReportingManager1,
		&e.ReportingManager1Mail, &e.ReportingManager2, &e.ReportingManager2Mail,
		&e.EmployeeRole, &e.EmploymentStatus, &e.JoinDate, &e.PersonalEmail,
		&e.UserType, &e.ForcePasswordChange,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM employees WHERE id = ?", employeeColumns), id)
	return scanEmployee(row)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM employees WHERE email = ?", employeeColumns), email)
	return scanEmployee(row)
}

// Register inserts a new employee together with its default leave balance
// row. The id is the next number in the SSQ- sequence; the sequence read
// and the insert share one transaction.
func (r *EmployeeRepository) Register(ctx context.Context, p *models.RegisterPayload, hashedPassword string) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx, "SELECT email FROM employees WHERE email = ?", p.Email).Scan(&existing)
	if err == nil {
		return "", ErrEmailExists
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	var lastIDNum sql.NullInt64
	err = tx.QueryRowContext(ctx,
		"SELECT MAX(CAST(SUBSTR(id, 5) AS INTEGER)) FROM employees WHERE id LIKE 'SSQ-%'").Scan(&lastIDNum)
	if err != nil {
		return "", err
	}
	newIDNum := int64(1000)
	if lastIDNum.Valid && lastIDNum.Int64 != 0 {
		newIDNum = lastIDNum.Int64
	}
	newID := fmt.Sprintf("SSQ-%d", newIDNum+1)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO employees (
			id, first_name, last_name, email, password, gender, dob,
			permanent_address, current_address, pan_number, aadhar_number,
			contactnumber, alternate_contact_number, alternate_contact_person,
			alternate_contact_relation, emergency_number, account_number,
			ifsc_code, account_holder_name, branch, department,
			reporting_manager1, reporting_manager1_mail,
			reporting_manager2, reporting_manager2_mail,
			employee_role, employment_status, join_date, personal_email, force_password_change
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		newID, p.FirstName, p.LastName, p.Email, hashedPassword,
		p.Gender, p.DOB, p.PermanentAddress, p.CurrentAddress, p.PanNumber,
		p.AadharNumber, p.ContactNumber, p.AlternateContactNumber,
		p.AlternateContactPerson, p.AlternateContactRel, p.EmergencyNumber,
		p.AccountNumber, p.IfscCode, p.AccountHolderName, p.Branch, p.Department,
		p.ReportingManager1, p.ReportingManager1Mail,
		p.ReportingManager2, p.ReportingManager2Mail,
		p.EmployeeRole, p.EmploymentStatus, p.JoinDate, p.PersonalEmail,
	)
	if err != nil {
		return "", err
	}

	if _, err = tx.ExecContext(ctx, "INSERT INTO leave_balances (employee_id) VALUES (?)", newID); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return newID, nil
}

// ForceChangePassword sets a new password and clears the first-login flag.
func (r *EmployeeRepository) ForceChangePassword(ctx context.Context, userID, hashedPassword string) (*models.Employee, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE employees SET password = ?, force_password_change = 0 WHERE id = ?",
		hashedPassword, userID)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	createNotification(ctx, tx, userID, "Your password was successfully set on first login.")

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID)
}

// ResetPassword overwrites the password, optionally forcing a change on
// next login, and records the given notification message.
func (r *EmployeeRepository) ResetPassword(ctx context.Context, employeeID, hashedPassword string, forceChange bool, notification string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	flag := 0
	if forceChange {
		flag = 1
	}
	res, err := tx.ExecContext(ctx,
		"UPDATE employees SET password = ?, force_password_change = ? WHERE id = ?",
		hashedPassword, flag, employeeID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	createNotification(ctx, tx, employeeID, notification)
	return tx.Commit()
}

// ChangePassword updates the password after the handler has verified the
// old one.
func (r *EmployeeRepository) ChangePassword(ctx context.Context, employeeID, hashedPassword string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		"UPDATE employees SET password = ? WHERE id = ?", hashedPassword, employeeID); err != nil {
		return err
	}

	createNotification(ctx, tx, employeeID, "Your password was changed successfully.")
	return tx.Commit()
}

// UpdateProfile writes the allow-listed fields present in data. Column
// names come from models.UpdatableProfileFields only, never from payload
// keys, so the generated statement cannot reference anything else.
func (r *EmployeeRepository) UpdateProfile(ctx context.Context, employeeID string, data map[string]interface{}) (*models.Employee, error) {
	var setClauses []string
	var values []any
	for _, field := range models.UpdatableProfileFields {
		if value, ok := data[field]; ok {
			setClauses = append(setClauses, field+" = ?")
			values = append(values, value)
		}
	}
	if len(setClauses) == 0 {
		return nil, ErrNoFields
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, "SELECT id FROM employees WHERE id = ?", employeeID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	values = append(values, employeeID)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	if _, err = tx.ExecContext(ctx, query, values...); err != nil {
		return nil, err
	}

	createNotification(ctx, tx, employeeID, "Your profile details have been updated.")

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, employeeID)
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count)
	return count, err
}
