package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByIDForUser(db *gorm.DB, id, userID uuid.UUID) (*entity.Notification, error)
	List(db *gorm.DB, filter *entity.NotificationFilter) ([]entity.Notification, int64, error)
	CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error)
	MarkRead(db *gorm.DB, id uuid.UUID) error
	MarkAllRead(db *gorm.DB, userID uuid.UUID) error
	Delete(db *gorm.DB, id, userID uuid.UUID) error
}
