package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type TeamService interface {
	GetMembers(actor *entity.Profile) ([]*contract.ProfileResponse, apierror.ErrorResponse)
	UpdateMemberRole(actor *entity.Profile, memberID int64, req *contract.UpdateRoleRequest) (*contract.ProfileResponse, apierror.ErrorResponse)
}

type DefaultTeamRoute struct {
	TeamService TeamService
}

func NewTeamRoute(teamService TeamService) *DefaultTeamRoute {
	return &DefaultTeamRoute{TeamService: teamService}
}

func (t *DefaultTeamRoute) GetMembers(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	members, apierr := t.TeamService.GetMembers(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"members": members}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTeamRoute) UpdateMemberRole(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	memberID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.UpdateRoleRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	member, apierr := t.TeamService.UpdateMemberRole(profile, memberID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, member)
}
