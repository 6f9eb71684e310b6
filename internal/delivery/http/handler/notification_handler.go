package handler

import (
	"net/http"
	"strconv"

	"estatehub/internal/domain/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	filter := &entity.NotificationFilter{}
	filter.Page, filter.Limit = parsePagination(r)

	query := r.URL.Query()
	if raw := query.Get("read"); raw != "" {
		if read, err := strconv.ParseBool(raw); err == nil {
			filter.Read = &read
		}
	}
	if raw := query.Get("type"); raw != "" {
		notifType := entity.NotificationType(raw)
		filter.Type = &notifType
	}
	filter.Important, _ = strconv.ParseBool(query.Get("important"))
	filter.Oldest = query.Get("sort") == "oldest"

	notifications, err := h.notificationUsecase.ListNotifications(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notifications retrieved successfully", notifications,
		paginationMeta(filter.Page, filter.Limit, notifications.Total))
}

func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.GetNotification(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notification retrieved successfully", notification)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationUsecase.MarkAllRead(r.Context()); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked as read", nil)
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.DeleteNotification(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notification deleted successfully", nil)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationUsecase.UnreadCount(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", map[string]int64{"unread_count": count})
}
