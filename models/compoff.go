package models

type CompoffRequest struct {
	RecordID    string  `json:"record_id"`
	EmployeeID  string  `json:"employee_id"`
	WorkDate    string  `json:"work_date"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Comment     *string `json:"comment"`
	SubmittedAt string  `json:"submitted_at"`
}

type PendingCompoffRequest struct {
	CompoffRequest
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CompoffRequestPayload struct {
	EmployeeID  string  `json:"employee_id" validate:"required"`
	WorkDate    string  `json:"work_date" validate:"required"`
	Description *string `json:"description"`
}

type CompoffActionPayload struct {
	Action  string  `json:"action"`
	Comment *string `json:"comment"`
}
