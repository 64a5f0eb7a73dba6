package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type ProfileRepository interface {
	FindByID(id int64) (*entity.Profile, error)
	FindBySub(sub string) (*entity.Profile, error)
	FindByEmail(email string) (*entity.Profile, error)
	FindAllByCompany(companyID int64) ([]*entity.Profile, error)
	ExistsByEmail(email string) (bool, error)
	Save(profile *entity.Profile) error
}

type TeamService struct {
	ProfileRepo ProfileRepository
	Validate    *validator.Validate
	Policy      *policy.MemberPolicy
}

func NewTeamService(profileRepo ProfileRepository, validate *validator.Validate, memberPolicy *policy.MemberPolicy) *TeamService {
	return &TeamService{
		ProfileRepo: profileRepo,
		Validate:    validate,
		Policy:      memberPolicy,
	}
}

func (s *TeamService) GetMembers(actor *entity.Profile) ([]*contract.ProfileResponse, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	members, err := s.ProfileRepo.FindAllByCompany(companyID)
	if err != nil {
		log.Errorf("failed to fetch members of company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ProfileResponse, len(members))
	for i, m := range members {
		resp[i] = ToProfileResponse(m)
	}
	return resp, nil
}

func (s *TeamService) UpdateMemberRole(actor *entity.Profile, memberID int64, req *contract.UpdateRoleRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManageCompany(actor); perr != nil {
		return nil, perr
	}

	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if memberID == actor.ID {
		return nil, apierror.NewForbiddenError("owners cannot change their own role")
	}

	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	member, err := s.ProfileRepo.FindByID(memberID)
	if err != nil {
		log.Errorf("failed to fetch profile %d: %v", memberID, err)
		return nil, apierror.InternalServerError
	}

	if member == nil || member.CompanyID == nil || *member.CompanyID != companyID {
		return nil, apierror.NotFoundError
	}

	member.Role = entity.Role(req.Role)
	member.UpdatedAt = utils.NowUTC()
	if err = s.ProfileRepo.Save(member); err != nil {
		log.Errorf("failed to update role of profile %d: %v", memberID, err)
		return nil, apierror.InternalServerError
	}
	return ToProfileResponse(member), nil
}

func ToProfileResponse(p *entity.Profile) *contract.ProfileResponse {
	resp := &contract.ProfileResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Role:          string(p.Role),
		IsPrimary:     p.IsPrimary,
		EmailVerified: p.EmailVerified,
		Prefs: contract.NotificationPrefsPayload{
			Email:    p.Prefs.Email,
			SMS:      p.Prefs.SMS,
			InApp:    p.Prefs.InApp,
			LeadDays: p.Prefs.LeadDays,
		},
		CreatedAt: utils.FormatEpoch(p.CreatedAt),
		UpdatedAt: utils.FormatEpoch(p.UpdatedAt),
	}
	if p.LastLogin > 0 {
		resp.LastLogin = utils.FormatEpoch(p.LastLogin)
	}
	return resp
}
