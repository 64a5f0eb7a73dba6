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

type CompanyRepository interface {
	FindByID(id int64) (*entity.Company, error)
	ExistsByCIN(cin string) (bool, error)
	Save(company *entity.Company) error
}

type CompanyService struct {
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
	Policy      *policy.MemberPolicy
}

func NewCompanyService(companyRepo CompanyRepository, validate *validator.Validate, memberPolicy *policy.MemberPolicy) *CompanyService {
	return &CompanyService{
		CompanyRepo: companyRepo,
		Validate:    validate,
		Policy:      memberPolicy,
	}
}

func (s *CompanyService) GetCompany(actor *entity.Profile) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, perr := s.fetchOwn(actor)
	if perr != nil {
		return nil, perr
	}
	return toCompanyResponse(company), nil
}

func (s *CompanyService) UpdateCompany(actor *entity.Profile, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManageCompany(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	company, perr := s.fetchOwn(actor)
	if perr != nil {
		return nil, perr
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.GSTIN != nil {
		company.GSTIN = *req.GSTIN
	}
	if req.State != nil {
		company.State = *req.State
	}
	if req.BusinessType != nil {
		company.BusinessType = entity.BusinessType(*req.BusinessType)
	}
	if req.AnnualTurnover != nil {
		company.AnnualTurnover = *req.AnnualTurnover
	}
	if req.EmployeeCount != nil {
		company.EmployeeCount = *req.EmployeeCount
	}
	if req.IncorporationDate != nil {
		company.IncorporationDate = *req.IncorporationDate
	}
	if req.RegisteredAddress != nil {
		company.RegisteredAddress = entity.Address{
			Line1:   req.RegisteredAddress.Line1,
			Line2:   req.RegisteredAddress.Line2,
			City:    req.RegisteredAddress.City,
			State:   req.RegisteredAddress.State,
			Pincode: req.RegisteredAddress.Pincode,
		}
	}

	company.UpdatedAt = utils.NowUTC()
	if err := s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to update company %d: %v", company.ID, err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func (s *CompanyService) fetchOwn(actor *entity.Profile) (*entity.Company, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}
	return company, nil
}

func toCompanyResponse(c *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		CIN:               c.CIN,
		PAN:               c.PAN,
		GSTIN:             c.GSTIN,
		State:             c.State,
		BusinessType:      string(c.BusinessType),
		AnnualTurnover:    c.AnnualTurnover,
		EmployeeCount:     c.EmployeeCount,
		IncorporationDate: c.IncorporationDate,
		RegisteredAddress: contract.AddressPayload{
			Line1:   c.RegisteredAddress.Line1,
			Line2:   c.RegisteredAddress.Line2,
			City:    c.RegisteredAddress.City,
			State:   c.RegisteredAddress.State,
			Pincode: c.RegisteredAddress.Pincode,
		},
		CreatedAt: utils.FormatEpoch(c.CreatedAt),
		UpdatedAt: utils.FormatEpoch(c.UpdatedAt),
	}
}
