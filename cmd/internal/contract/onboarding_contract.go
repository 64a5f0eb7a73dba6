package contract

// CompanyInfoRequest is step 1 of the onboarding wizard. Nothing is
// persisted at this point.
type CompanyInfoRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	CIN   string `json:"cin" validate:"required,cin"`
	PAN   string `json:"pan" validate:"required,pan"`
	GSTIN string `json:"gstin" validate:"omitempty,gstin"`
}

// BusinessDetailsRequest is step 2. Submitting it computes the applicable
// compliance preview returned to the review screen. AnnualTurnover carries
// no required tag: zero is a legitimate turnover and an absent field decodes
// to the same value, which min=0 accepts.
type BusinessDetailsRequest struct {
	AnnualTurnover    float64 `json:"annual_turnover" validate:"min=0"`
	EmployeeCount     int     `json:"employee_count" validate:"required,min=1"`
	State             string  `json:"state" validate:"required,instate"`
	BusinessType      string  `json:"business_type" validate:"required,oneof=manufacturing services trading"`
	IncorporationDate string  `json:"incorporation_date" validate:"required,datelayout"`
	AddressLine1      string  `json:"address_line1" validate:"required,max=200"`
	AddressLine2      string  `json:"address_line2" validate:"omitempty,max=200"`
	City              string  `json:"city" validate:"required,max=100"`
	Pincode           string  `json:"pincode" validate:"required,len=6,numeric"`
}

// UserAccountRequest is step 3. Password and confirmation must match
// exactly; no normalization is applied before comparing.
type UserAccountRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=120"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	Password        string `json:"password" validate:"required,min=8,max=64,hasupper,haslower,hasdigit,hasspecial"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type StartFlowResponse struct {
	FlowID int64 `json:"flow_id"`
}

// CompliancePreview is one derived obligation shown on the review step.
type CompliancePreview struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Frequency      string `json:"frequency"`
	RegulatoryBody string `json:"regulatory_body"`
	Justification  string `json:"justification"`
	NextDueDate    string `json:"next_due_date"`
}

type CompleteOnboardingResponse struct {
	CompanyID int64 `json:"company_id"`
}

// StagedCompliance is the durable shape staged between company creation and
// the post-login finalizer. It is serialized into the pending_onboardings row.
type StagedCompliance struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	RegulatoryBody string `json:"regulatory_body"`
	Type           string `json:"type"`
	Frequency      string `json:"frequency"`
	Priority       string `json:"priority"`
	NextDueDate    string `json:"next_due_date"`
	Status         string `json:"status"`
	IsActive       bool   `json:"is_active"`
}
