package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type ReportService interface {
	GetDashboard(actor *entity.Profile) (*contract.DashboardResponse, apierror.ErrorResponse)
	GetCalendar(actor *entity.Profile) ([]*contract.CalendarGroup, apierror.ErrorResponse)
	GetReports(actor *entity.Profile) (*contract.ReportsResponse, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
}

func NewReportRoute(reportService ReportService) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService}
}

func (r *DefaultReportRoute) GetDashboard(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	dashboard, apierr := r.ReportService.GetDashboard(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (r *DefaultReportRoute) GetCalendar(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	groups, apierr := r.ReportService.GetCalendar(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"calendar": groups}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReportRoute) GetReports(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	reports, apierr := r.ReportService.GetReports(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reports)
}
