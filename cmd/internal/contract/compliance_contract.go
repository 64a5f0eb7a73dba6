package contract

type ComplianceRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=160"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	RegulatoryBody string `json:"regulatory_body" validate:"required,oneof=MCA CBDT CBIC EPFO ESIC STATE"`
	Type           string `json:"type" validate:"required,oneof=tax corporate labor environment"`
	Frequency      string `json:"frequency" validate:"required,oneof=weekly monthly quarterly half_yearly annual"`
	Priority       string `json:"priority" validate:"required,oneof=low medium high critical"`
	NextDueDate    string `json:"next_due_date" validate:"required,datelayout"`
	Status         string `json:"status" validate:"omitempty,oneof=pending in_progress completed overdue"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateComplianceRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=2,max=160"`
	Description       *string `json:"description" validate:"omitempty,max=2000"`
	RegulatoryBody    *string `json:"regulatory_body" validate:"omitempty,oneof=MCA CBDT CBIC EPFO ESIC STATE"`
	Type              *string `json:"type" validate:"omitempty,oneof=tax corporate labor environment"`
	Frequency         *string `json:"frequency" validate:"omitempty,oneof=weekly monthly quarterly half_yearly annual"`
	Priority          *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	NextDueDate       *string `json:"next_due_date" validate:"omitempty,datelayout"`
	LastCompletedDate *string `json:"last_completed_date" validate:"omitempty,datelayout"`
	Status            *string `json:"status" validate:"omitempty,oneof=pending in_progress completed overdue"`
	IsActive          *bool   `json:"is_active" validate:"omitempty"`
}

type ComplianceResponse struct {
	ID                int64  `json:"id"`
	CompanyID         int64  `json:"company_id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	RegulatoryBody    string `json:"regulatory_body"`
	Type              string `json:"type"`
	Frequency         string `json:"frequency"`
	Priority          string `json:"priority"`
	NextDueDate       string `json:"next_due_date"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	Status            string `json:"status"`

	// EffectiveStatus is what screens display: "overdue" when the due date
	// has passed and the record is not completed. Never persisted.
	EffectiveStatus string `json:"effective_status"`

	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
