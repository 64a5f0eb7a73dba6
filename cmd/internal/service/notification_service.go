package service

import (
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type NotificationRepository interface {
	FindAllByProfile(profileID int64) ([]*entity.Notification, error)
	FindByID(id int64) (*entity.Notification, error)
	MarkAllRead(profileID int64) error
	Save(notif *entity.Notification) error
	Delete(notif *entity.Notification) error
}

type NotificationService struct {
	NotifRepo NotificationRepository
}

func NewNotificationService(notifRepo NotificationRepository) *NotificationService {
	return &NotificationService{NotifRepo: notifRepo}
}

func (s *NotificationService) GetNotifications(actor *entity.Profile) ([]*contract.NotificationResponse, apierror.ErrorResponse) {
	notifs, err := s.NotifRepo.FindAllByProfile(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notifications of profile %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NotificationResponse, len(notifs))
	for i, n := range notifs {
		resp[i] = toNotificationResponse(n)
	}
	return resp, nil
}

func (s *NotificationService) MarkRead(actor *entity.Profile, id int64) (*contract.NotificationResponse, apierror.ErrorResponse) {
	notif, perr := s.fetchOwn(actor, id)
	if perr != nil {
		return nil, perr
	}

	if !notif.IsRead {
		notif.IsRead = true
		if err := s.NotifRepo.Save(notif); err != nil {
			log.Errorf("failed to mark notification %d read: %v", id, err)
			return nil, apierror.InternalServerError
		}
	}
	return toNotificationResponse(notif), nil
}

func (s *NotificationService) MarkAllRead(actor *entity.Profile) apierror.ErrorResponse {
	if err := s.NotifRepo.MarkAllRead(actor.ID); err != nil {
		log.Errorf("failed to mark notifications of profile %d read: %v", actor.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *NotificationService) DeleteNotification(actor *entity.Profile, id int64) apierror.ErrorResponse {
	notif, perr := s.fetchOwn(actor, id)
	if perr != nil {
		return perr
	}

	if err := s.NotifRepo.Delete(notif); err != nil {
		log.Errorf("failed to delete notification %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// fetchOwn hides other users' notifications behind a 404.
func (s *NotificationService) fetchOwn(actor *entity.Profile, id int64) (*entity.Notification, apierror.ErrorResponse) {
	notif, err := s.NotifRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch notification %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if notif == nil || notif.ProfileID != actor.ID {
		return nil, apierror.NotFoundError
	}
	return notif, nil
}

func toNotificationResponse(n *entity.Notification) *contract.NotificationResponse {
	return &contract.NotificationResponse{
		ID:           n.ID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		ComplianceID: n.ComplianceID,
		TaskID:       n.TaskID,
		DueDate:      n.DueDate,
		IsRead:       n.IsRead,
		CreatedAt:    utils.FormatEpoch(n.CreatedAt),
	}
}
