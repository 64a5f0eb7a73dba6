package entity

type RegulatoryBody string

const (
	BodyMCA   RegulatoryBody = "MCA"
	BodyCBDT  RegulatoryBody = "CBDT"
	BodyCBIC  RegulatoryBody = "CBIC"
	BodyEPFO  RegulatoryBody = "EPFO"
	BodyESIC  RegulatoryBody = "ESIC"
	BodyState RegulatoryBody = "STATE"
)

type ComplianceType string

const (
	TypeTax         ComplianceType = "tax"
	TypeCorporate   ComplianceType = "corporate"
	TypeLabor       ComplianceType = "labor"
	TypeEnvironment ComplianceType = "environment"
)

type Frequency string

const (
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half_yearly"
	FrequencyAnnual     Frequency = "annual"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type ComplianceStatus string

const (
	ComplianceStatusPending    ComplianceStatus = "pending"
	ComplianceStatusInProgress ComplianceStatus = "in_progress"
	ComplianceStatusCompleted  ComplianceStatus = "completed"

	// ComplianceStatusOverdue is never written by the application; it is
	// computed per response from the due date (see Compliance.EffectiveStatus).
	ComplianceStatusOverdue ComplianceStatus = "overdue"
)

// Compliance is one recurring regulatory obligation tracked for a company.
type Compliance struct {
	ID                int64            `gorm:"primaryKey"`
	CompanyID         int64            `gorm:"not null;index"`
	Name              string           `gorm:"not null"`
	Description       string
	RegulatoryBody    RegulatoryBody   `gorm:"not null"`
	Type              ComplianceType   `gorm:"not null"`
	Frequency         Frequency        `gorm:"not null"`
	Priority          Priority         `gorm:"not null"`
	NextDueDate       string           `gorm:"not null"` // YYYY-MM-DD
	LastCompletedDate string
	Status            ComplianceStatus `gorm:"not null;default:pending"`
	IsActive          bool             `gorm:"not null;default:true"`
	CreatedAt         int64            `gorm:"not null"`
	UpdatedAt         int64            `gorm:"not null;autoUpdateTime:false"`
}

// EffectiveStatus reports what the screens should display: an uncompleted
// compliance past its due date reads as overdue without being persisted so.
func (c *Compliance) EffectiveStatus(today string) ComplianceStatus {
	if c.Status != ComplianceStatusCompleted && c.NextDueDate < today {
		return ComplianceStatusOverdue
	}
	return c.Status
}
