package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Read        bool       `json:"read"`
	IsImportant bool       `json:"is_important"`
	RelatedID   *uuid.UUID `json:"related_id,omitempty"`
	RelatedType string     `json:"related_type,omitempty"`
	ActionURL   string     `json:"action_url,omitempty"`
	Icon        string     `json:"icon"`
	CreatedAt   time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int64                  `json:"unread_count"`
}
