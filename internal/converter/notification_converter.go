package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to DTO
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:          notification.ID,
		Title:       notification.Title,
		Message:     notification.Message,
		Type:        string(notification.Type),
		Read:        notification.Read,
		IsImportant: notification.IsImportant,
		RelatedID:   notification.RelatedID,
		RelatedType: notification.RelatedType,
		ActionURL:   notification.ActionURL,
		Icon:        notification.Icon,
		CreatedAt:   notification.CreatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *NotificationToResponse(&notification)
	}
	return responses
}
