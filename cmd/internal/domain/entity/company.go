package entity

type BusinessType string

const (
	BusinessManufacturing BusinessType = "manufacturing"
	BusinessServices      BusinessType = "services"
	BusinessTrading       BusinessType = "trading"
)

// Address is the registered postal address of a company, embedded
// into the companies table.
type Address struct {
	Line1   string `gorm:"not null" json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `gorm:"not null" json:"city"`
	State   string `gorm:"not null" json:"state"`
	Pincode string `gorm:"not null" json:"pincode"`
}

type Company struct {
	ID                int64        `gorm:"primaryKey"`
	Name              string       `gorm:"not null"`
	CIN               string       `gorm:"column:cin;not null;uniqueIndex"`
	PAN               string       `gorm:"column:pan;not null"`
	GSTIN             string       `gorm:"column:gstin"`
	State             string       `gorm:"not null"`
	BusinessType      BusinessType `gorm:"not null"`
	AnnualTurnover    float64      `gorm:"not null"`
	EmployeeCount     int          `gorm:"not null"`
	IncorporationDate string       `gorm:"not null"` // YYYY-MM-DD
	RegisteredAddress Address      `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt         int64        `gorm:"not null"`
	UpdatedAt         int64        `gorm:"not null;autoUpdateTime:false"`
}
