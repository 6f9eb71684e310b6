package usecase

import (
	"context"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/service"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = apperror.NotFound("notification not found")

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, filter *entity.NotificationFilter) (*dto.NotificationListResponse, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	MarkAllRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context) (int64, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	notifier         *service.Notifier
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	notifier *service.Notifier,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

func (u *notificationUsecase) ListNotifications(ctx context.Context, filter *entity.NotificationFilter) (*dto.NotificationListResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.UserID = userID

	notifications, total, err := u.notificationRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notifier.CachedUnreadCount(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		unread = 0
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// GetNotification returns a single notification and marks it read.
func (u *notificationUsecase) GetNotification(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notification, err := u.notificationRepo.FindByIDForUser(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.Read {
		if err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), notification.ID); err != nil {
			u.log.Warnf("Failed to mark notification %s read: %+v", notification.ID, err)
		} else {
			notification.Read = true
			u.notifier.InvalidateUnreadCount(ctx, userID)
		}
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.notificationRepo.MarkAllRead(u.db.WithContext(ctx), userID); err != nil {
		u.log.Warnf("Failed to mark notifications read for %s: %+v", userID, err)
		return err
	}
	u.notifier.InvalidateUnreadCount(ctx, userID)
	return nil
}

func (u *notificationUsecase) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	notification, err := u.notificationRepo.FindByIDForUser(u.db.WithContext(ctx), id, userID)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	if err := u.notificationRepo.Delete(u.db.WithContext(ctx), id, userID); err != nil {
		u.log.Warnf("Failed to delete notification %s: %+v", id, err)
		return err
	}
	u.notifier.InvalidateUnreadCount(ctx, userID)
	return nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context) (int64, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return u.notifier.CachedUnreadCount(ctx, userID)
}
