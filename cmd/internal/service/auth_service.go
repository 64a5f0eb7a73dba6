package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	cognitoclient "compliancehub/cmd/internal/infrastructure/aws/cognito"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

// PendingFinalizer claims a staged onboarding for the given profile. It
// reports whether anything was finalized by this call.
type PendingFinalizer interface {
	FinalizePending(profile *entity.Profile) (bool, error)
}

type AuthService struct {
	ProfileRepo ProfileRepository
	Cognito     cognitoclient.CognitoInterface
	Finalizer   PendingFinalizer
	Validate    *validator.Validate
}

func NewAuthService(profileRepo ProfileRepository, cognito cognitoclient.CognitoInterface, finalizer PendingFinalizer, validate *validator.Validate) *AuthService {
	return &AuthService{
		ProfileRepo: profileRepo,
		Cognito:     cognito,
		Finalizer:   finalizer,
		Validate:    validate,
	}
}

// Login exchanges credentials for tokens and runs the onboarding finalizer.
// A finalizer failure is logged and reported as not-finalized; it never
// turns a successful sign-in into an error.
func (s *AuthService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	profile, err := s.ProfileRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch profile by email: %v", err)
		return nil, apierror.InternalServerError
	}
	if profile == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	auth, err := s.Cognito.SignIn(&cognitoclient.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}

	// A successful sign-in proves the address was confirmed upstream.
	profile.EmailVerified = true
	profile.LastLogin = utils.NowUTC()
	if err = s.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to record login of profile %d: %v", profile.ID, err)
	}

	return &contract.LoginResponse{
		AccessToken:         auth.AccessToken,
		IDToken:             auth.IDToken,
		OnboardingFinalized: s.finalize(profile),
	}, nil
}

func (s *AuthService) Logout(accessToken string) apierror.ErrorResponse {
	if err := s.Cognito.GlobalSignOut(accessToken); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (s *AuthService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	err := s.Cognito.ConfirmAccount(&cognitoclient.UserConfirmation{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return utils.MapCognitoError(err)
	}

	profile, err := s.ProfileRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch profile by email: %v", err)
		return nil
	}
	if profile != nil && !profile.EmailVerified {
		profile.EmailVerified = true
		profile.UpdatedAt = utils.NowUTC()
		if err = s.ProfileRepo.Save(profile); err != nil {
			log.Errorf("failed to mark profile %d verified: %v", profile.ID, err)
		}
	}
	return nil
}

func (s *AuthService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	profile, err := s.ProfileRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch profile by email: %v", err)
		return apierror.InternalServerError
	}
	if profile != nil && profile.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	if err = s.Cognito.ResendConfirmation(req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

// Session restores the signed-in profile and, like Login, gives the
// finalizer a chance to claim a staged onboarding.
func (s *AuthService) Session(actor *entity.Profile) (*contract.SessionResponse, apierror.ErrorResponse) {
	return &contract.SessionResponse{
		Profile:             ToProfileResponse(actor),
		OnboardingFinalized: s.finalize(actor),
	}, nil
}

func (s *AuthService) GetProfile(actor *entity.Profile) (*contract.ProfileResponse, apierror.ErrorResponse) {
	return ToProfileResponse(actor), nil
}

func (s *AuthService) UpdateProfile(actor *entity.Profile, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.Name != nil {
		actor.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		actor.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Prefs != nil {
		actor.Prefs = entity.NotificationPrefs{
			Email:    req.Prefs.Email,
			SMS:      req.Prefs.SMS,
			InApp:    req.Prefs.InApp,
			LeadDays: req.Prefs.LeadDays,
		}
		if actor.Prefs.LeadDays == nil {
			actor.Prefs.LeadDays = []int{}
		}
	}

	actor.UpdatedAt = utils.NowUTC()
	if err := s.ProfileRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return ToProfileResponse(actor), nil
}

func (s *AuthService) finalize(profile *entity.Profile) bool {
	finalized, err := s.Finalizer.FinalizePending(profile)
	if err != nil {
		log.Errorf("failed to finalize onboarding of profile %d: %v", profile.ID, err)
		return false
	}
	return finalized
}
