package entity

type Role string

const (
	RoleOwner             Role = "owner"
	RoleFinanceManager    Role = "finance_manager"
	RoleHRManager         Role = "hr_manager"
	RoleComplianceOfficer Role = "compliance_officer"
	RoleViewOnly          Role = "view_only"
)

// NotificationPrefs controls which channels a member is notified on and
// how many days ahead of a deadline reminders are raised.
type NotificationPrefs struct {
	Email    bool  `json:"email"`
	SMS      bool  `json:"sms"`
	InApp    bool  `json:"in_app"`
	LeadDays []int `json:"lead_days"`
}

func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		Email:    true,
		SMS:      false,
		InApp:    true,
		LeadDays: []int{7, 3, 1},
	}
}

// Profile is one platform user. CompanyID stays nil between sign-up and
// onboarding finalization.
type Profile struct {
	ID            int64             `gorm:"primaryKey"`
	SubUUID       string            `gorm:"not null;uniqueIndex"`
	CompanyID     *int64            `gorm:"index"`
	Name          string            `gorm:"not null"`
	Email         string            `gorm:"not null;uniqueIndex"`
	Phone         string
	Role          Role              `gorm:"not null;default:owner"`
	IsPrimary     bool              `gorm:"not null;default:false"`
	EmailVerified bool              `gorm:"not null;default:false"`
	Prefs         NotificationPrefs `gorm:"serializer:json"`
	LastLogin     int64
	CreatedAt     int64             `gorm:"not null"`
	UpdatedAt     int64             `gorm:"not null;autoUpdateTime:false"`
}
