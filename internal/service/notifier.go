package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingEvent identifies what happened to a booking for notification copy
type BookingEvent string

const (
	BookingEventNew       BookingEvent = "new"
	BookingEventConfirmed BookingEvent = "confirmed"
	BookingEventCancelled BookingEvent = "cancelled"
	BookingEventRejected  BookingEvent = "rejected"
	BookingEventPaid      BookingEvent = "paid"
	BookingEventReminder  BookingEvent = "reminder"
)

// PropertyEvent identifies what happened to a property
type PropertyEvent string

const (
	PropertyEventNew         PropertyEvent = "new"
	PropertyEventUpdated     PropertyEvent = "updated"
	PropertyEventSold        PropertyEvent = "sold"
	PropertyEventPriceChange PropertyEvent = "price_change"
)

var bookingTitles = map[BookingEvent]string{
	BookingEventNew:       "New Booking Request",
	BookingEventConfirmed: "Booking Confirmed",
	BookingEventCancelled: "Booking Cancelled",
	BookingEventRejected:  "Booking Rejected",
	BookingEventPaid:      "Payment Confirmed",
	BookingEventReminder:  "Booking Reminder",
}

var propertyTitles = map[PropertyEvent]string{
	PropertyEventNew:         "New Property Listed",
	PropertyEventUpdated:     "Property Updated",
	PropertyEventSold:        "Property Sold",
	PropertyEventPriceChange: "Price Changed",
}

// Notifier writes in-app notification records for booking and property
// events. It is a sink: failures are logged, never propagated, so the
// primary state transition always wins.
type Notifier struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	redisClient      *redis.Client
}

func NewNotifier(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	redisClient *redis.Client,
) *Notifier {
	return &Notifier{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
	}
}

// NotifyBooking creates one notification for the requester and one for the
// assigned agent when they are distinct identities.
func (n *Notifier) NotifyBooking(ctx context.Context, booking *entity.Booking, event BookingEvent) {
	propertyTitle := "the property"
	if booking.Property != nil {
		propertyTitle = booking.Property.Title
	}

	messages := map[BookingEvent]string{
		BookingEventNew:       fmt.Sprintf("You have a new booking request for %s", propertyTitle),
		BookingEventConfirmed: fmt.Sprintf("Your booking for %s has been confirmed", propertyTitle),
		BookingEventCancelled: fmt.Sprintf("Your booking for %s has been cancelled", propertyTitle),
		BookingEventRejected:  fmt.Sprintf("Your booking for %s has been rejected", propertyTitle),
		BookingEventPaid:      fmt.Sprintf("Payment for %s has been confirmed", propertyTitle),
		BookingEventReminder:  fmt.Sprintf("Reminder: you have a booking tomorrow for %s", propertyTitle),
	}

	bookingID := booking.ID
	n.create(ctx, &entity.Notification{
		UserID:      booking.UserID,
		Title:       bookingTitles[event],
		Message:     messages[event],
		Type:        entity.NotificationTypeBooking,
		RelatedID:   &bookingID,
		RelatedType: "booking",
		ActionURL:   fmt.Sprintf("/bookings/%s", booking.ID),
		Icon:        "calendar",
	})

	if booking.AgentID != nil && *booking.AgentID != booking.UserID {
		requester := "A user"
		if booking.User != nil {
			requester = booking.User.Name
		}
		n.create(ctx, &entity.Notification{
			UserID:      *booking.AgentID,
			Title:       fmt.Sprintf("Booking %s", event),
			Message:     fmt.Sprintf("%s %s a %s booking for %s", requester, eventVerb(event), booking.BookingType, propertyTitle),
			Type:        entity.NotificationTypeBooking,
			RelatedID:   &bookingID,
			RelatedType: "booking",
			ActionURL:   fmt.Sprintf("/bookings/%s", booking.ID),
			Icon:        "calendar",
		})
	}
}

// NotifyProperty informs owner and agent about a listing change, skipping
// the actor themselves.
func (n *Notifier) NotifyProperty(ctx context.Context, property *entity.Property, actorID uuid.UUID, event PropertyEvent) {
	messages := map[PropertyEvent]string{
		PropertyEventNew:         fmt.Sprintf("A new property %q has been listed", property.Title),
		PropertyEventUpdated:     fmt.Sprintf("Property %q has been updated", property.Title),
		PropertyEventSold:        fmt.Sprintf("Property %q has been sold", property.Title),
		PropertyEventPriceChange: fmt.Sprintf("Price changed for %q", property.Title),
	}

	propertyID := property.ID
	recipients := map[uuid.UUID]bool{}
	if property.OwnerID != nil && *property.OwnerID != actorID {
		recipients[*property.OwnerID] = true
	}
	if property.AgentID != nil && *property.AgentID != actorID {
		recipients[*property.AgentID] = true
	}

	for userID := range recipients {
		n.create(ctx, &entity.Notification{
			UserID:      userID,
			Title:       propertyTitles[event],
			Message:     messages[event],
			Type:        entity.NotificationTypeProperty,
			RelatedID:   &propertyID,
			RelatedType: "property",
			ActionURL:   fmt.Sprintf("/properties/%s", property.ID),
			Icon:        "info",
		})
	}
}

// NotifyUser addresses a single user directly (agent application decisions,
// system alerts).
func (n *Notifier) NotifyUser(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string) {
	n.create(ctx, &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Icon:    "bell",
	})
}

func (n *Notifier) create(ctx context.Context, notification *entity.Notification) {
	if err := n.notificationRepo.Create(n.db.WithContext(ctx), notification); err != nil {
		n.log.Warnf("Failed to create notification for user %s (non-fatal): %+v", notification.UserID, err)
		return
	}
	n.InvalidateUnreadCount(ctx, notification.UserID)
}

// UnreadCountKey is the redis key caching a user's unread badge count.
func UnreadCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:unread:%s", userID)
}

// CachedUnreadCount reads the badge count through redis, falling back to the
// database on a miss.
func (n *Notifier) CachedUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := UnreadCountKey(userID)
	cached, err := n.redisClient.Get(ctx, key).Int64()
	if err == nil {
		return cached, nil
	}

	count, err := n.notificationRepo.CountUnread(n.db.WithContext(ctx), userID)
	if err != nil {
		return 0, err
	}

	if err := n.redisClient.Set(ctx, key, count, 5*time.Minute).Err(); err != nil {
		n.log.Warnf("Failed to cache unread count for %s: %+v", userID, err)
	}
	return count, nil
}

func (n *Notifier) InvalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if err := n.redisClient.Del(ctx, UnreadCountKey(userID)).Err(); err != nil {
		n.log.Warnf("Failed to invalidate unread count for %s: %+v", userID, err)
	}
}

func eventVerb(event BookingEvent) string {
	if event == BookingEventNew {
		return "requested"
	}
	return string(event)
}
