package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/utils/apierror"
)

// OnboardingService drives the anonymous signup wizard; none of these
// routes sit behind the auth middleware.
type OnboardingService interface {
	StartFlow() (*contract.StartFlowResponse, apierror.ErrorResponse)
	SubmitCompanyInfo(flowID int64, req *contract.CompanyInfoRequest) apierror.ErrorResponse
	SubmitBusinessDetails(flowID int64, req *contract.BusinessDetailsRequest) ([]*contract.CompliancePreview, apierror.ErrorResponse)
	SubmitUserAccount(flowID int64, req *contract.UserAccountRequest) apierror.ErrorResponse
	Complete(flowID int64) (*contract.CompleteOnboardingResponse, apierror.ErrorResponse)
}

type DefaultOnboardingRoute struct {
	OnboardingService OnboardingService
}

func NewOnboardingRoute(onboardingService OnboardingService) *DefaultOnboardingRoute {
	return &DefaultOnboardingRoute{OnboardingService: onboardingService}
}

func (o *DefaultOnboardingRoute) StartFlow(c echo.Context) error {
	resp, apierr := o.OnboardingService.StartFlow()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (o *DefaultOnboardingRoute) SubmitCompanyInfo(c echo.Context) error {
	flowID, ok := parseFlowID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("flow_id", "int64"))
	}

	var req contract.CompanyInfoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := o.OnboardingService.SubmitCompanyInfo(flowID, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (o *DefaultOnboardingRoute) SubmitBusinessDetails(c echo.Context) error {
	flowID, ok := parseFlowID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("flow_id", "int64"))
	}

	var req contract.BusinessDetailsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	preview, apierr := o.OnboardingService.SubmitBusinessDetails(flowID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"compliances": preview}
	return c.JSON(http.StatusOK, &resp)
}

func (o *DefaultOnboardingRoute) SubmitUserAccount(c echo.Context) error {
	flowID, ok := parseFlowID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("flow_id", "int64"))
	}

	var req contract.UserAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := o.OnboardingService.SubmitUserAccount(flowID, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (o *DefaultOnboardingRoute) Complete(c echo.Context) error {
	flowID, ok := parseFlowID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("flow_id", "int64"))
	}

	resp, apierr := o.OnboardingService.Complete(flowID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func parseFlowID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("flow_id"), 10, 64)
	return id, err == nil
}
