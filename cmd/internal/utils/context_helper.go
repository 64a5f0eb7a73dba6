package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils/apierror"
)

func GetProfileFromContext(c echo.Context) (*entity.Profile, apierror.ErrorResponse) {
	val := c.Get("profile")
	if val == nil {
		log.Warnf("route %s attempted to read nil profile from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	profile, ok := val.(*entity.Profile)
	if !ok {
		log.Warnf("expected profile type at 'profile' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return profile, nil
}
