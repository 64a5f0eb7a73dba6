package entity

type NotificationType string

const (
	NotifDeadlineReminder   NotificationType = "deadline_reminder"
	NotifOverdueAlert       NotificationType = "overdue_alert"
	NotifTaskAssigned       NotificationType = "task_assigned"
	NotifCompletionReminder NotificationType = "completion_reminder"
)

type Notification struct {
	ID           int64            `gorm:"primaryKey"`
	ProfileID    int64            `gorm:"not null;index"`
	Type         NotificationType `gorm:"not null"`
	Title        string           `gorm:"not null"`
	Message      string           `gorm:"not null"`
	ComplianceID *int64
	TaskID       *int64
	DueDate      string
	IsRead       bool             `gorm:"not null;default:false"`
	CreatedAt    int64            `gorm:"not null"`
}
