package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes in-app notifications for filtering
type NotificationType string

const (
	NotificationTypeBooking  NotificationType = "booking"
	NotificationTypeProperty NotificationType = "property"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeReview   NotificationType = "review"
	NotificationTypeAlert    NotificationType = "alert"
	NotificationTypeSystem   NotificationType = "system"
	NotificationTypeReminder NotificationType = "reminder"
)

// Notification is an in-app message addressed to a single user
type Notification struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_user_read" json:"user_id"`
	Title       string           `gorm:"type:varchar(100);not null" json:"title"`
	Message     string           `gorm:"type:varchar(500);not null" json:"message"`
	Type        NotificationType `gorm:"type:varchar(20);not null;default:'system';index" json:"type"`
	Read        bool             `gorm:"not null;default:false;index:idx_notifications_user_read" json:"read"`
	IsImportant bool             `gorm:"not null;default:false" json:"is_important"`
	RelatedID   *uuid.UUID       `gorm:"type:uuid" json:"related_id,omitempty"`
	RelatedType string           `gorm:"type:varchar(20)" json:"related_type,omitempty"`
	ActionURL   string           `gorm:"type:varchar(255)" json:"action_url,omitempty"`
	Icon        string           `gorm:"type:varchar(20);not null;default:'bell'" json:"icon"`
	CreatedAt   time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
