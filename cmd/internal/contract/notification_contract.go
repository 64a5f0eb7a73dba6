package contract

type NotificationResponse struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	ComplianceID *int64 `json:"compliance_id,omitempty"`
	TaskID       *int64 `json:"task_id,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	IsRead       bool   `json:"is_read"`
	CreatedAt    string `json:"created_at"`
}
