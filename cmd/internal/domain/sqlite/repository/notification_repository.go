package repository

import (
	"errors"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) FindAllByProfile(profileID int64) ([]*entity.Notification, error) {
	var notifs []*entity.Notification
	err := r.db.
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&notifs).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}

func (r *DefaultNotificationRepository) FindByID(id int64) (*entity.Notification, error) {
	var notif entity.Notification
	err := r.db.First(&notif, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &notif, nil
}

// ExistsSimilar reports whether the profile was already notified for the
// same compliance, type and due date; the reminder job uses it to avoid
// re-raising the same alert every tick.
func (r *DefaultNotificationRepository) ExistsSimilar(profileID int64, typ entity.NotificationType, complianceID int64, dueDate string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM notifications WHERE profile_id = ? AND type = ? AND compliance_id = ? AND due_date = ?)",
			profileID, typ, complianceID, dueDate).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultNotificationRepository) MarkAllRead(profileID int64) error {
	return r.db.
		Model(&entity.Notification{}).
		Where("profile_id = ? AND is_read = ?", profileID, false).
		Update("is_read", true).Error
}

func (r *DefaultNotificationRepository) Save(notif *entity.Notification) error {
	return r.db.Save(notif).Error
}

func (r *DefaultNotificationRepository) Delete(notif *entity.Notification) error {
	return r.db.Delete(notif).Error
}
