package repository

import (
	"errors"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindByIDForUser(db *gorm.DB, id, userID uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) List(db *gorm.DB, filter *entity.NotificationFilter) ([]entity.Notification, int64, error) {
	query := db.Model(&entity.Notification{}).Where("user_id = ?", filter.UserID)

	if filter.Read != nil {
		query = query.Where("read = ?", *filter.Read)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Important {
		query = query.Where("is_important = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if filter.Oldest {
		order = "created_at ASC"
	}

	var notifications []entity.Notification
	err := query.Order(order).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Notification{}).Where("id = ?", id).Update("read", true).Error
}

func (r *notificationRepository) MarkAllRead(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&entity.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *notificationRepository) Delete(db *gorm.DB, id, userID uuid.UUID) error {
	return db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Notification{}).Error
}
