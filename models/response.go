package models

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"Registration successful!"`
	ID      string `json:"id" example:"SSQ-1001"`
}

type LoginSuccessResponse struct {
	Message string   `json:"message" example:"Login successful!"`
	User    Employee `json:"user"`
}

type ForceChangeRequiredResponse struct {
	Message     string `json:"message" example:"Password change required"`
	ForceChange bool   `json:"force_change" example:"true"`
	UserID      string `json:"user_id" example:"SSQ-1001"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Password updated successfully!"`
}

type UpdateProfileSuccessResponse struct {
	Message string   `json:"message" example:"Profile updated successfully!"`
	User    Employee `json:"user"`
}

type AttendanceLoginResponse struct {
	Message string                 `json:"message" example:"Login recorded successfully!"`
	Record  map[string]interface{} `json:"record"`
}

type AttendanceLogoutResponse struct {
	Message    string `json:"message" example:"Logout recorded successfully!"`
	LogoutTime string `json:"logout_time" example:"18:04:33"`
}

type DashboardStats struct {
	EmployeeCount   int `json:"employee_count" example:"42"`
	PendingLeaves   int `json:"pending_leaves" example:"3"`
	PendingCompoffs int `json:"pending_compoffs" example:"1"`
}
