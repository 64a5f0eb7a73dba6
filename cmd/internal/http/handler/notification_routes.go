package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type NotificationService interface {
	GetNotifications(actor *entity.Profile) ([]*contract.NotificationResponse, apierror.ErrorResponse)
	MarkRead(actor *entity.Profile, id int64) (*contract.NotificationResponse, apierror.ErrorResponse)
	MarkAllRead(actor *entity.Profile) apierror.ErrorResponse
	DeleteNotification(actor *entity.Profile, id int64) apierror.ErrorResponse
}

type DefaultNotificationRoute struct {
	NotificationService NotificationService
}

func NewNotificationRoute(notificationService NotificationService) *DefaultNotificationRoute {
	return &DefaultNotificationRoute{NotificationService: notificationService}
}

func (n *DefaultNotificationRoute) GetNotifications(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notifs, apierr := n.NotificationService.GetNotifications(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notifications": notifs}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNotificationRoute) MarkRead(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	notif, apierr := n.NotificationService.MarkRead(profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notif)
}

func (n *DefaultNotificationRoute) MarkAllRead(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := n.NotificationService.MarkAllRead(profile); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (n *DefaultNotificationRoute) DeleteNotification(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := n.NotificationService.DeleteNotification(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
