package models

type LeaveApplication struct {
	RecordID    string  `json:"record_id"`
	EmployeeID  string  `json:"employee_id"`
	LeaveType   string  `json:"leave_type"`
	FromDate    string  `json:"from_date"`
	ToDate      *string `json:"to_date"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Comment     *string `json:"comment"`
	SubmittedAt string  `json:"submitted_at"`
	LeaveDays   int     `json:"leave_days"`
}

// PendingLeaveRequest is a leave application joined with requester and
// manager fields for the admin review queue.
type PendingLeaveRequest struct {
	LeaveApplication
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	ReportingManager1 *string `json:"reporting_manager1"`
	ReportingManager2 *string `json:"reporting_manager2"`
}

// LeaveApplicationPayload carries a submission. LeaveDays is a pointer so
// an explicit zero survives the required-field check.
type LeaveApplicationPayload struct {
	EmployeeID  string  `json:"employee_id" validate:"required"`
	LeaveType   string  `json:"leave_type" validate:"required,oneof='Sick Leave' 'Casual Leave' 'Earned Leave' 'Paternity Leave' 'Wfh' 'Compoff'"`
	FromDate    string  `json:"from_date" validate:"required"`
	ToDate      *string `json:"to_date"`
	Description *string `json:"description"`
	LeaveDays   *int    `json:"leave_days" validate:"required"`
}

type LeaveActionPayload struct {
	Action  string  `json:"action"`
	Comment *string `json:"comment"`
}

// BalanceDetail is one row of the per-type leave balance breakdown.
type BalanceDetail struct {
	Allotted int `json:"allotted"`
	Availed  int `json:"availed"`
	Balance  int `json:"balance"`
}

// BalanceColumns lists the leave_balances columns in a stable order
// together with the leave_type string used on submission.
var BalanceColumns = []struct {
	Column    string
	LeaveType string
}{
	{"sick_leave", "Sick Leave"},
	{"casual_leave", "Casual Leave"},
	{"earned_leave", "Earned Leave"},
	{"paternity_leave", "Paternity Leave"},
	{"wfh", "Wfh"},
	{"compoff", "Compoff"},
}

type LeaveBalance struct {
	EmployeeID     string
	SickLeave      int
	CasualLeave    int
	EarnedLeave    int
	PaternityLeave int
	Wfh            int
	Compoff        int
}

// ByColumn returns the allotted counter for a balance column name.
func (b *LeaveBalance) ByColumn(column string) int {
	switch column {
	case "sick_leave":
		return b.SickLeave
	case "casual_leave":
		return b.CasualLeave
	case "earned_leave":
		return b.EarnedLeave
	case "paternity_leave":
		return b.PaternityLeave
	case "wfh":
		return b.Wfh
	case "compoff":
		return b.Compoff
	}
	return 0
}
