package contract

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// LoginResponse reports whether a staged onboarding was finalized during
// this sign-in. Finalization failure never fails the login itself.
type LoginResponse struct {
	AccessToken         string `json:"access_token"`
	IDToken             string `json:"id_token"`
	OnboardingFinalized bool   `json:"onboarding_finalized"`
}

type ConfirmSignupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=1,max=8"`
}

type ResendConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NotificationPrefsPayload struct {
	Email    bool  `json:"email"`
	SMS      bool  `json:"sms"`
	InApp    bool  `json:"in_app"`
	LeadDays []int `json:"lead_days" validate:"omitempty,max=10,dive,min=0,max=90"`
}

type UpdateProfileRequest struct {
	Name  *string                   `json:"name" validate:"omitempty,min=2,max=120"`
	Phone *string                   `json:"phone" validate:"omitempty,len=10,numeric"`
	Prefs *NotificationPrefsPayload `json:"notification_preferences" validate:"omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner finance_manager hr_manager compliance_officer view_only"`
}

type ProfileResponse struct {
	ID            int64                    `json:"id"`
	CompanyID     *int64                   `json:"company_id,omitempty"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone,omitempty"`
	Role          string                   `json:"role"`
	IsPrimary     bool                     `json:"is_primary"`
	EmailVerified bool                     `json:"email_verified"`
	Prefs         NotificationPrefsPayload `json:"notification_preferences"`
	LastLogin     string                   `json:"last_login,omitempty"`
	CreatedAt     string                   `json:"created_at"`
	UpdatedAt     string                   `json:"updated_at"`
}

// SessionResponse is returned on session restore.
type SessionResponse struct {
	Profile             *ProfileResponse `json:"profile"`
	OnboardingFinalized bool             `json:"onboarding_finalized"`
}
