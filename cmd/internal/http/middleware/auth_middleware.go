package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type ProfileRepository interface {
	FindBySub(sub string) (*entity.Profile, error)
}

type AuthMiddlewareConfig struct {
	ProfileRepo ProfileRepository
}

// NewAuthMiddleware validates the bearer token locally against the JWKS and
// loads the matching profile into the request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			profile, err := cfg.ProfileRepo.FindBySub(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if profile == nil {
				// Profile deleted in DB but still has a valid token???
				return c.JSON(http.StatusUnauthorized, apierror.IDPUserNotFoundError)
			}

			c.Set("profile", profile)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
