package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type AuthService interface {
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
	Logout(accessToken string) apierror.ErrorResponse
	ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse
	ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse
	Session(actor *entity.Profile) (*contract.SessionResponse, apierror.ErrorResponse)
	GetProfile(actor *entity.Profile) (*contract.ProfileResponse, apierror.ErrorResponse)
	UpdateProfile(actor *entity.Profile, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthRoute(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) Logout(c echo.Context) error {
	token := c.Request().Header.Get(echo.HeaderAuthorization)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
	}

	if apierr := a.AuthService.Logout(token); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAuthRoute) ConfirmSignup(c echo.Context) error {
	var req contract.ConfirmSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := a.AuthService.ConfirmSignup(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAuthRoute) ResendConfirmation(c echo.Context) error {
	var req contract.ResendConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := a.AuthService.ResendConfirmation(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAuthRoute) GetSession(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.AuthService.Session(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) GetProfile(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.AuthService.GetProfile(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) UpdateProfile(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AuthService.UpdateProfile(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
