package models

type AttendanceRecord struct {
	RecordID     string  `json:"record_id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	LoginTime    string  `json:"login_time"`
	WorkLocation string  `json:"work_location"`
	LogoutTime   *string `json:"logout_time"`
}

// AttendanceHistoryEntry is an attendance row joined with the employee's
// full name for the history listing.
type AttendanceHistoryEntry struct {
	RecordID     string  `json:"record_id"`
	Date         string  `json:"date"`
	LoginTime    string  `json:"login_time"`
	WorkLocation string  `json:"work_location"`
	LogoutTime   *string `json:"logout_time"`
	EmployeeName string  `json:"employee_name"`
}

type AttendanceLoginPayload struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	Date         string `json:"date" validate:"required"`
	WorkLocation string `json:"work_location" validate:"required"`
	EmployeeName string `json:"employee_name" validate:"required"`
}
