package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Connect opens the SQLite database file and verifies the connection.
func Connect(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Connected to SQLite database:", path)
	return db, nil
}

// InitDatabase creates the schema when it does not exist yet.
func InitDatabase(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY, first_name TEXT NOT NULL, last_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL, password TEXT NOT NULL, gender TEXT, dob TEXT,
			permanent_address TEXT, current_address TEXT, pan_number TEXT,
			aadhar_number TEXT, contactnumber TEXT, alternate_contact_number TEXT,
			alternate_contact_person TEXT, alternate_contact_relation TEXT,
			emergency_number TEXT, account_number TEXT, ifsc_code TEXT,
			account_holder_name TEXT, branch TEXT, department TEXT,
			reporting_manager1 TEXT, reporting_manager1_mail TEXT,
			reporting_manager2 TEXT, reporting_manager2_mail TEXT,
			employee_role TEXT, employment_status TEXT, join_date TEXT,
			personal_email TEXT,
			user_type TEXT NOT NULL DEFAULT 'employee',
			force_password_change INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			record_id TEXT PRIMARY KEY, employee_id TEXT NOT NULL, date TEXT NOT NULL,
			login_time TEXT NOT NULL, work_location TEXT, logout_time TEXT,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			notification_id TEXT PRIMARY KEY, employee_id TEXT NOT NULL,
			message TEXT NOT NULL, is_read INTEGER NOT NULL DEFAULT 0,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS leave_applications (
			record_id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			leave_type TEXT NOT NULL,
			from_date TEXT NOT NULL,
			to_date TEXT,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			comment TEXT,
			submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			leave_days INTEGER DEFAULT 0,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS leave_balances (
			employee_id TEXT PRIMARY KEY,
			sick_leave INTEGER DEFAULT 8,
			casual_leave INTEGER DEFAULT 18,
			earned_leave INTEGER DEFAULT 0,
			paternity_leave INTEGER DEFAULT 0,
			wfh INTEGER DEFAULT 12,
			compoff INTEGER DEFAULT 0,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			date TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS compoff_requests (
			record_id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			work_date TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			comment TEXT,
			submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func CloseDatabase(db *sql.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}
