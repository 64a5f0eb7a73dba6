package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type ComplianceService interface {
	GetCompliances(actor *entity.Profile, filter repository.ComplianceFilter) ([]*contract.ComplianceResponse, apierror.ErrorResponse)
	GetCompliance(actor *entity.Profile, id int64) (*contract.ComplianceResponse, apierror.ErrorResponse)
	CreateCompliance(actor *entity.Profile, req *contract.ComplianceRequest) (*contract.ComplianceResponse, apierror.ErrorResponse)
	UpdateCompliance(actor *entity.Profile, id int64, req *contract.UpdateComplianceRequest) (*contract.ComplianceResponse, apierror.ErrorResponse)
	DeleteCompliance(actor *entity.Profile, id int64) apierror.ErrorResponse
}

type DefaultComplianceRoute struct {
	ComplianceService ComplianceService
}

func NewComplianceRoute(complianceService ComplianceService) *DefaultComplianceRoute {
	return &DefaultComplianceRoute{ComplianceService: complianceService}
}

func (n *DefaultComplianceRoute) GetCompliances(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	filter := repository.ComplianceFilter{
		Status: entity.ComplianceStatus(strings.TrimSpace(c.QueryParam("status"))),
		Type:   entity.ComplianceType(strings.TrimSpace(c.QueryParam("type"))),
		Search: strings.TrimSpace(c.QueryParam("search")),
	}

	compliances, apierr := n.ComplianceService.GetCompliances(profile, filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"compliances": compliances}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultComplianceRoute) GetCompliance(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	compliance, apierr := n.ComplianceService.GetCompliance(profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, compliance)
}

func (n *DefaultComplianceRoute) CreateCompliance(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ComplianceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	compliance, apierr := n.ComplianceService.CreateCompliance(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, compliance)
}

func (n *DefaultComplianceRoute) UpdateCompliance(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.UpdateComplianceRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	compliance, apierr := n.ComplianceService.UpdateCompliance(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, compliance)
}

func (n *DefaultComplianceRoute) DeleteCompliance(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := n.ComplianceService.DeleteCompliance(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
