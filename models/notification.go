package models

type Notification struct {
	NotificationID string `json:"notification_id"`
	EmployeeID     string `json:"employee_id"`
	Message        string `json:"message"`
	IsRead         int    `json:"is_read"`
	Timestamp      string `json:"timestamp"`
}

// NotificationView is what the listing endpoint exposes to clients.
type NotificationView struct {
	Message string `json:"message"`
	IsRead  int    `json:"is_read"`
}
