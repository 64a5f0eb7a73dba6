package contract

type ChecklistItemPayload struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Text      string `json:"text" validate:"required,max=300"`
	Completed bool   `json:"completed"`
}

type TaskRequest struct {
	Title        string                 `json:"title" validate:"required,min=2,max=160"`
	Description  string                 `json:"description" validate:"omitempty,max=2000"`
	DueDate      string                 `json:"due_date" validate:"required,datelayout"`
	AssignedToID *int64                 `json:"assigned_to" validate:"omitempty"`
	Status       string                 `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority     string                 `json:"priority" validate:"omitempty,oneof=low medium high"`
	Checklist    []ChecklistItemPayload `json:"checklist" validate:"omitempty,max=50,dive"`
	Notes        string                 `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateTaskRequest struct {
	Title        *string                `json:"title" validate:"omitempty,min=2,max=160"`
	Description  *string                `json:"description" validate:"omitempty,max=2000"`
	DueDate      *string                `json:"due_date" validate:"omitempty,datelayout"`
	AssignedToID *int64                 `json:"assigned_to" validate:"omitempty"`
	Status       *string                `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority     *string                `json:"priority" validate:"omitempty,oneof=low medium high"`
	Checklist    []ChecklistItemPayload `json:"checklist" validate:"omitempty,max=50,dive"`
	Notes        *string                `json:"notes" validate:"omitempty,max=2000"`
}

type TaskResponse struct {
	ID           int64                  `json:"id"`
	ComplianceID int64                  `json:"compliance_id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	DueDate      string                 `json:"due_date"`
	AssignedToID *int64                 `json:"assigned_to,omitempty"`
	Status       string                 `json:"status"`
	Priority     string                 `json:"priority"`
	Checklist    []ChecklistItemPayload `json:"checklist"`
	Notes        string                 `json:"notes,omitempty"`
	CompletedAt  string                 `json:"completed_at,omitempty"`
	CompletedBy  *int64                 `json:"completed_by,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}
