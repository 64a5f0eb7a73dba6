package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type CompanyService interface {
	GetCompany(actor *entity.Profile) (*contract.CompanyResponse, apierror.ErrorResponse)
	UpdateCompany(actor *entity.Profile, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyRoute(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (n *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	company, apierr := n.CompanyService.GetCompany(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (n *DefaultCompanyRoute) UpdateCompany(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := n.CompanyService.UpdateCompany(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}
