package models

// Employee mirrors the employees table. The password hash is never
// serialized into any response.
type Employee struct {
	ID                     string  `json:"id"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	Password               string  `json:"-"`
	Gender                 *string `json:"gender"`
	DOB                    *string `json:"dob"`
	PermanentAddress       *string `json:"permanent_address"`
	CurrentAddress         *string `json:"current_address"`
	PanNumber              *string `json:"pan_number"`
	AadharNumber           *string `json:"aadhar_number"`
	ContactNumber          *string `json:"contactnumber"`
	AlternateContactNumber *string `json:"alternate_contact_number"`
	AlternateContactPerson *string `json:"alternate_contact_person"`
	AlternateContactRel    *string `json:"alternate_contact_relation"`
	EmergencyNumber        *string `json:"emergency_number"`
	AccountNumber          *string `json:"account_number"`
	IfscCode               *string `json:"ifsc_code"`
	AccountHolderName      *string `json:"account_holder_name"`
	Branch                 *string `json:"branch"`
	Department             *string `json:"department"`
	ReportingManager1      *string `json:"reporting_manager1"`
	ReportingManager1Mail  *string `json:"reporting_manager1_mail"`
	ReportingManager2      *string `json:"reporting_manager2"`
	ReportingManager2Mail  *string `json:"reporting_manager2_mail"`
	EmployeeRole           *string `json:"employee_role"`
	EmploymentStatus       *string `json:"employment_status"`
	JoinDate               *string `json:"join_date"`
	PersonalEmail          *string `json:"personal_email"`
	UserType               string  `json:"user_type"`
	ForcePasswordChange    int     `json:"force_password_change"`
}

type RegisterPayload struct {
	FirstName              string  `json:"first_name" validate:"required"`
	LastName               string  `json:"last_name" validate:"required"`
	Email                  string  `json:"email" validate:"required,email"`
	Password               string  `json:"password" validate:"required"`
	Gender                 *string `json:"gender"`
	DOB                    *string `json:"dob"`
	PermanentAddress       *string `json:"permanent_address"`
	CurrentAddress         *string `json:"current_address"`
	PanNumber              *string `json:"pan_number"`
	AadharNumber           *string `json:"aadhar_number"`
	ContactNumber          *string `json:"contactnumber"`
	AlternateContactNumber *string `json:"alternate_contact_number"`
	AlternateContactPerson *string `json:"alternate_contact_person"`
	AlternateContactRel    *string `json:"alternate_contact_relation"`
	EmergencyNumber        *string `json:"emergency_number"`
	AccountNumber          *string `json:"account_number"`
	IfscCode               *string `json:"ifsc_code"`
	AccountHolderName      *string `json:"account_holder_name"`
	Branch                 *string `json:"branch"`
	Department             *string `json:"department"`
	ReportingManager1      *string `json:"reporting_manager1"`
	ReportingManager1Mail  *string `json:"reporting_manager1_mail"`
	ReportingManager2      *string `json:"reporting_manager2"`
	ReportingManager2Mail  *string `json:"reporting_manager2_mail"`
	EmployeeRole           *string `json:"employee_role"`
	EmploymentStatus       *string `json:"employment_status"`
	JoinDate               *string `json:"join_date"`
	PersonalEmail          *string `json:"personal_email"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required"`
}

type ForceChangePasswordPayload struct {
	UserID      string `json:"user_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type ForgotPasswordPayload struct {
	Email string `json:"email" validate:"required"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type AdminResetPasswordPayload struct {
	Email       string `json:"email" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UpdatableProfileFields is the fixed allow-list of profile columns a
// PUT /profile request may touch. Keys outside this list are ignored and
// column names never come from the payload itself.
var UpdatableProfileFields = []string{
	"first_name", "last_name", "gender", "dob", "permanent_address", "current_address",
	"pan_number", "aadhar_number", "contactnumber", "alternate_contact_number",
	"alternate_contact_person", "alternate_contact_relation", "emergency_number",
	"account_number", "ifsc_code", "account_holder_name", "branch", "department",
	"reporting_manager1", "reporting_manager1_mail", "reporting_manager2",
	"reporting_manager2_mail", "employee_role", "employment_status", "join_date",
}
