package entity

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a unit of work under a compliance. CompletedAt and CompletedByID
// are set together when the status becomes completed and cleared together
// on any other transition.
type Task struct {
	ID            int64           `gorm:"primaryKey"`
	ComplianceID  int64           `gorm:"not null;index"`
	Title         string          `gorm:"not null"`
	Description   string
	DueDate       string          `gorm:"not null"` // YYYY-MM-DD
	AssignedToID  *int64          `gorm:"index"`    // References: profiles(id)
	Status        TaskStatus      `gorm:"not null;default:pending"`
	Priority      TaskPriority    `gorm:"not null;default:medium"`
	Checklist     []ChecklistItem `gorm:"serializer:json"`
	Notes         string
	CompletedAt   *int64
	CompletedByID *int64
	CreatedAt     int64           `gorm:"not null"`
	UpdatedAt     int64           `gorm:"not null;autoUpdateTime:false"`
}
