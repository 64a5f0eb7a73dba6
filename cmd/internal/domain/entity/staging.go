package entity

// PendingOnboarding bridges the anonymous half of onboarding and the first
// authenticated session. It is written exactly once when the wizard
// completes and claimed (deleted) atomically by the finalizer, so two rapid
// session events cannot both act on it.
type PendingOnboarding struct {
	ID          int64  `gorm:"primaryKey"`
	Email       string `gorm:"not null;uniqueIndex"`
	CompanyID   int64  `gorm:"not null"`
	Phone       string
	Compliances string `gorm:"not null"` // staged compliance drafts, JSON
	CreatedAt   int64  `gorm:"not null"`
}
