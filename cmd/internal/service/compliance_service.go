package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
)

type ComplianceRepository interface {
	FindAllByCompany(companyID int64, filter repository.ComplianceFilter) ([]*entity.Compliance, error)
	FindByID(id int64) (*entity.Compliance, error)
	Save(compliance *entity.Compliance) error
	Delete(compliance *entity.Compliance) error
}

type ComplianceService struct {
	ComplianceRepo ComplianceRepository
	Validate       *validator.Validate
	Policy         *policy.MemberPolicy
}

func NewComplianceService(repo ComplianceRepository, validate *validator.Validate, memberPolicy *policy.MemberPolicy) *ComplianceService {
	return &ComplianceService{
		ComplianceRepo: repo,
		Validate:       validate,
		Policy:         memberPolicy,
	}
}

func (s *ComplianceService) GetCompliances(actor *entity.Profile, filter repository.ComplianceFilter) ([]*contract.ComplianceResponse, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	compliances, err := s.ComplianceRepo.FindAllByCompany(companyID, filter)
	if err != nil {
		log.Errorf("failed to fetch compliances for company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ComplianceResponse, len(compliances))
	today := utils.Today()
	for i, c := range compliances {
		resp[i] = toComplianceResponse(c, today)
	}
	return resp, nil
}

func (s *ComplianceService) GetCompliance(actor *entity.Profile, id int64) (*contract.ComplianceResponse, apierror.ErrorResponse) {
	compliance, perr := s.fetchScoped(actor, id)
	if perr != nil {
		return nil, perr
	}
	return toComplianceResponse(compliance, utils.Today()), nil
}

func (s *ComplianceService) CreateCompliance(actor *entity.Profile, req *contract.ComplianceRequest) (*contract.ComplianceResponse, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}
	if perr = s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	status := entity.ComplianceStatusPending
	if req.Status != "" {
		status = entity.ComplianceStatus(req.Status)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := utils.NowUTC()
	compliance := &entity.Compliance{
		ID:             uid.Generate(),
		CompanyID:      companyID,
		Name:           req.Name,
		Description:    req.Description,
		RegulatoryBody: entity.RegulatoryBody(req.RegulatoryBody),
		Type:           entity.ComplianceType(req.Type),
		Frequency:      entity.Frequency(req.Frequency),
		Priority:       entity.Priority(req.Priority),
		NextDueDate:    req.NextDueDate,
		Status:         status,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.ComplianceRepo.Save(compliance); err != nil {
		log.Errorf("failed to create compliance for company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}
	return toComplianceResponse(compliance, utils.Today()), nil
}

func (s *ComplianceService) UpdateCompliance(actor *entity.Profile, id int64, req *contract.UpdateComplianceRequest) (*contract.ComplianceResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	compliance, perr := s.fetchScoped(actor, id)
	if perr != nil {
		return nil, perr
	}

	if req.Name != nil {
		compliance.Name = *req.Name
	}
	if req.Description != nil {
		compliance.Description = *req.Description
	}
	if req.RegulatoryBody != nil {
		compliance.RegulatoryBody = entity.RegulatoryBody(*req.RegulatoryBody)
	}
	if req.Type != nil {
		compliance.Type = entity.ComplianceType(*req.Type)
	}
	if req.Frequency != nil {
		compliance.Frequency = entity.Frequency(*req.Frequency)
	}
	if req.Priority != nil {
		compliance.Priority = entity.Priority(*req.Priority)
	}
	if req.NextDueDate != nil {
		compliance.NextDueDate = *req.NextDueDate
	}
	if req.LastCompletedDate != nil {
		compliance.LastCompletedDate = *req.LastCompletedDate
	}
	if req.Status != nil {
		compliance.Status = entity.ComplianceStatus(*req.Status)
	}
	if req.IsActive != nil {
		compliance.IsActive = *req.IsActive
	}

	compliance.UpdatedAt = utils.NowUTC()
	if err := s.ComplianceRepo.Save(compliance); err != nil {
		log.Errorf("failed to update compliance %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toComplianceResponse(compliance, utils.Today()), nil
}

func (s *ComplianceService) DeleteCompliance(actor *entity.Profile, id int64) apierror.ErrorResponse {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return perr
	}

	compliance, perr := s.fetchScoped(actor, id)
	if perr != nil {
		return perr
	}

	if err := s.ComplianceRepo.Delete(compliance); err != nil {
		log.Errorf("failed to delete compliance %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// fetchScoped loads a compliance and hides records of other companies
// behind a 404.
func (s *ComplianceService) fetchScoped(actor *entity.Profile, id int64) (*entity.Compliance, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	compliance, err := s.ComplianceRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch compliance %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if compliance == nil || compliance.CompanyID != companyID {
		return nil, apierror.NotFoundError
	}
	return compliance, nil
}

func toComplianceResponse(c *entity.Compliance, today string) *contract.ComplianceResponse {
	return &contract.ComplianceResponse{
		ID:                c.ID,
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		Description:       c.Description,
		RegulatoryBody:    string(c.RegulatoryBody),
		Type:              string(c.Type),
		Frequency:         string(c.Frequency),
		Priority:          string(c.Priority),
		NextDueDate:       c.NextDueDate,
		LastCompletedDate: c.LastCompletedDate,
		Status:            string(c.Status),
		EffectiveStatus:   string(c.EffectiveStatus(today)),
		IsActive:          c.IsActive,
		CreatedAt:         utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:         utils.FormatEpoch(c.UpdatedAt),
	}
}
