package contract

type AddressPayload struct {
	Line1   string `json:"line1" validate:"required,max=200"`
	Line2   string `json:"line2" validate:"omitempty,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,instate"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
}

type UpdateCompanyRequest struct {
	Name              *string         `json:"name" validate:"omitempty,min=2,max=120"`
	GSTIN             *string         `json:"gstin" validate:"omitempty,gstin"`
	State             *string         `json:"state" validate:"omitempty,instate"`
	BusinessType      *string         `json:"business_type" validate:"omitempty,oneof=manufacturing services trading"`
	AnnualTurnover    *float64        `json:"annual_turnover" validate:"omitempty,min=0"`
	EmployeeCount     *int            `json:"employee_count" validate:"omitempty,min=1"`
	IncorporationDate *string         `json:"incorporation_date" validate:"omitempty,datelayout"`
	RegisteredAddress *AddressPayload `json:"registered_address" validate:"omitempty"`
}

type CompanyResponse struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	CIN               string         `json:"cin"`
	PAN               string         `json:"pan"`
	GSTIN             string         `json:"gstin,omitempty"`
	State             string         `json:"state"`
	BusinessType      string         `json:"business_type"`
	AnnualTurnover    float64        `json:"annual_turnover"`
	EmployeeCount     int            `json:"employee_count"`
	IncorporationDate string         `json:"incorporation_date"`
	RegisteredAddress AddressPayload `json:"registered_address"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
}
