package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/metrics"
	"estatehub/internal/service"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = apperror.NotFound("booking not found")
	ErrPropertyNotFound        = apperror.NotFound("property not found")
	ErrPropertyUnavailable     = apperror.InvalidState("property is not available for booking")
	ErrSlotTaken               = apperror.Conflict("the requested time slot is already booked")
	ErrBookingAccessDenied     = apperror.Forbidden("booking does not belong to you")
	ErrNotAssignedAgent        = apperror.Forbidden("you are not the assigned agent for this booking")
	ErrBookingAlreadyCancelled = apperror.InvalidState("booking is already cancelled")
	ErrBookingNotPending       = apperror.InvalidState("booking is no longer pending")
	ErrBookingNotConfirmed     = apperror.InvalidState("booking has not been confirmed")
	ErrCancellationTooLate     = apperror.InvalidState("confirmed bookings can only be cancelled more than 24 hours in advance")
	ErrTransitionNotAllowed    = apperror.Forbidden("status transition not permitted for your role")
	ErrNoUpdatableFields       = apperror.Validation("no updatable fields for your role")
	ErrInvalidDateFormat       = apperror.Validation("invalid date format, use YYYY-MM-DD")
	ErrSlotIncomplete          = apperror.Validation("date, start time and end time are all required for a time slot")
	ErrViewingSlotRequired     = apperror.Validation("viewing bookings require a date, start time and end time")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, id uuid.UUID, req *dto.CancelBookingRequest) error
	RejectBooking(ctx context.Context, id uuid.UUID, req *dto.RejectBookingRequest) error
	CompleteBooking(ctx context.Context, id uuid.UUID) error
	ConfirmPayment(ctx context.Context, id uuid.UUID) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAgentSchedule(ctx context.Context, date string) (*dto.AgentScheduleResponse, error)
	GetBookingStats(ctx context.Context) (*entity.BookingStats, error)
	GetMonthlyBookings(ctx context.Context, year int) ([]entity.MonthlyBookingStat, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	notifier     *service.Notifier
	mailer       *service.Mailer
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	notifier *service.Notifier,
	mailer *service.Mailer,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		notifier:     notifier,
		mailer:       mailer,
	}
}

// CreateBooking registers a booking request against a property.
//
// Viewing bookings with a time slot run check-then-insert inside a
// transaction holding a per (property, date) advisory lock, so two
// concurrent requests for the same slot cannot both pass the check.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	property, err := u.propertyRepo.FindByID(u.db.WithContext(ctx), req.PropertyID)
	if err != nil {
		u.log.Warnf("Failed to find property %s: %+v", req.PropertyID, err)
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if !property.IsAvailable() {
		return nil, ErrPropertyUnavailable
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		date = &parsed
	}

	hasSlot := date != nil && req.StartTime != "" && req.EndTime != ""
	if err := validateSlot(entity.BookingType(req.BookingType), date != nil, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		PropertyID:          property.ID,
		UserID:              userID,
		AgentID:             property.AgentID,
		BookingType:         entity.BookingType(req.BookingType),
		Status:              entity.BookingStatusPending,
		Date:                date,
		TimeSlotStart:       req.StartTime,
		TimeSlotEnd:         req.EndTime,
		Duration:            req.Duration,
		Message:             req.Message,
		ContactPreference:   req.ContactPreference,
		NumberOfPersons:     req.NumberOfPersons,
		PaymentStatus:       entity.PaymentStatusUnpaid,
		SpecialRequirements: req.SpecialRequirements,
		IsActive:            true,
	}
	if booking.Duration == 0 {
		booking.Duration = 60
	}
	if booking.ContactPreference == "" {
		booking.ContactPreference = "phone"
	}
	if booking.NumberOfPersons == 0 {
		booking.NumberOfPersons = 1
	}
	if booking.BookingType == entity.BookingTypePurchase {
		price := property.Price
		booking.Price = &price
	}

	if booking.BookingType == entity.BookingTypeViewing && hasSlot {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		if err := u.bookingRepo.LockSlot(tx, property.ID, *date); err != nil {
			u.log.Warnf("Failed to take slot lock for property %s: %+v", property.ID, err)
			return nil, err
		}

		conflicts, err := u.bookingRepo.CountConflicting(tx, property.ID, *date, req.StartTime, req.EndTime)
		if err != nil {
			u.log.Warnf("Failed to count conflicting bookings: %+v", err)
			return nil, err
		}
		if conflicts > 0 {
			return nil, ErrSlotTaken
		}

		if err := u.bookingRepo.Create(tx, booking); err != nil {
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return nil, err
		}
	} else {
		if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}
	}

	metrics.IncBookingCreated()
	u.log.Infof("Booking created: id=%s, property=%s, type=%s", booking.ID, property.ID, booking.BookingType)

	full := u.reload(ctx, booking)
	u.notifier.NotifyBooking(ctx, full, service.BookingEventNew)
	if full.Agent != nil {
		u.mailer.SendAsync(full.Agent.Email, "New booking request",
			fmt.Sprintf("<p>You have a new %s booking request for <b>%s</b>.</p>", full.BookingType, property.Title))
	}

	return converter.BookingToResponse(full), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	_, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := u.authorizedBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) ListBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Scope the listing by role: users see their own bookings, agents the
	// ones assigned to them, admins everything.
	switch role {
	case entity.RoleUser:
		filter.UserID = &userID
		filter.AgentID = nil
	case entity.RoleAgent:
		filter.AgentID = &userID
		filter.UserID = nil
	}

	bookings, total, err := u.bookingRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    total,
	}, nil
}

func (u *bookingUsecase) UpdateBooking(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	_, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := u.authorizedBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		fields["date"] = parsed
	}
	if req.StartTime != "" {
		fields["time_slot_start"] = req.StartTime
	}
	if req.EndTime != "" {
		fields["time_slot_end"] = req.EndTime
	}
	if req.Message != "" {
		fields["message"] = req.Message
	}
	if req.ContactPreference != "" {
		fields["contact_preference"] = req.ContactPreference
	}
	if req.NumberOfPersons != 0 {
		fields["number_of_persons"] = req.NumberOfPersons
	}
	if req.AgentID != nil {
		fields["agent_id"] = *req.AgentID
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.PaymentStatus != "" {
		fields["payment_status"] = req.PaymentStatus
	}
	if req.Status != "" {
		// Status moves through the generic update only for roles whose
		// allowlist carries the column; users cancel via their own endpoint.
		if !roleMayUpdate(role, "status") {
			return nil, ErrTransitionNotAllowed
		}
		if !CanTransition(role, booking.Status, entity.BookingStatus(req.Status)) {
			return nil, ErrTransitionNotAllowed
		}
		fields["status"] = req.Status
	}

	fields = filterBookingFields(role, fields)
	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, fields); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}

	return converter.BookingToResponse(u.reload(ctx, booking)), nil
}

// ConfirmBooking moves a pending booking forward: viewings and inquiries
// become confirmed, rentals and purchases become agent_confirmed so the
// payment flow can pick them up.
func (u *bookingUsecase) ConfirmBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.assignedBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsPending() {
		return nil, ErrBookingNotPending
	}

	next := entity.BookingStatusConfirmed
	if booking.BookingType == entity.BookingTypeRental || booking.BookingType == entity.BookingTypePurchase {
		next = entity.BookingStatusAgentConfirmed
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, map[string]interface{}{
		"status": next,
	}); err != nil {
		u.log.Warnf("Failed to confirm booking %s: %+v", booking.ID, err)
		return nil, err
	}

	full := u.reload(ctx, booking)
	u.notifier.NotifyBooking(ctx, full, service.BookingEventConfirmed)
	if full.User != nil {
		u.mailer.SendAsync(full.User.Email, "Booking confirmed",
			fmt.Sprintf("<p>Your %s booking has been confirmed.</p>", full.BookingType))
	}

	return converter.BookingToResponse(full), nil
}

func (u *bookingUsecase) CancelBooking(ctx context.Context, id uuid.UUID, req *dto.CancelBookingRequest) error {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	booking, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	if booking.IsCancelled() {
		return ErrBookingAlreadyCancelled
	}

	switch role {
	case entity.RoleUser:
		if !booking.IsOwnedBy(userID) {
			return ErrBookingAccessDenied
		}
		if !booking.CanBeCancelled(time.Now().UTC()) {
			return ErrCancellationTooLate
		}
	case entity.RoleAgent:
		if !booking.IsAssignedTo(userID) {
			return ErrNotAssignedAgent
		}
	}

	fields := map[string]interface{}{"status": entity.BookingStatusCancelled}
	if reason := cancellationReason(req); reason != "" {
		fields["cancellation_reason"] = reason
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, fields); err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", booking.ID, err)
		return err
	}

	u.notifier.NotifyBooking(ctx, u.reload(ctx, booking), service.BookingEventCancelled)
	return nil
}

func (u *bookingUsecase) RejectBooking(ctx context.Context, id uuid.UUID, req *dto.RejectBookingRequest) error {
	booking, err := u.assignedBooking(ctx, id)
	if err != nil {
		return err
	}
	if !booking.IsPending() {
		return ErrBookingNotPending
	}

	fields := map[string]interface{}{"status": entity.BookingStatusRejected}
	if req.Reason != "" {
		fields["cancellation_reason"] = req.Reason
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, fields); err != nil {
		u.log.Warnf("Failed to reject booking %s: %+v", booking.ID, err)
		return err
	}

	full := u.reload(ctx, booking)
	u.notifier.NotifyBooking(ctx, full, service.BookingEventRejected)
	if full.User != nil {
		u.mailer.SendAsync(full.User.Email, "Booking rejected",
			"<p>Unfortunately your booking request has been rejected.</p>")
	}
	return nil
}

func (u *bookingUsecase) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	booking, err := u.assignedBooking(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return ErrBookingNotConfirmed
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, map[string]interface{}{
		"status": entity.BookingStatusCompleted,
	}); err != nil {
		u.log.Warnf("Failed to complete booking %s: %+v", booking.ID, err)
		return err
	}
	return nil
}

// ConfirmPayment is the manual settlement path for offline payments; the
// regular flow settles through the provider webhook.
func (u *bookingUsecase) ConfirmPayment(ctx context.Context, id uuid.UUID) error {
	booking, err := u.assignedBooking(ctx, id)
	if err != nil {
		return err
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return apperror.InvalidState("booking is already paid")
	}

	if err := u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, map[string]interface{}{
		"status":         entity.BookingStatusPaid,
		"payment_status": entity.PaymentStatusPaid,
	}); err != nil {
		u.log.Warnf("Failed to confirm payment for booking %s: %+v", booking.ID, err)
		return err
	}

	full := u.reload(ctx, booking)
	u.notifier.NotifyBooking(ctx, full, service.BookingEventPaid)
	if full.User != nil {
		u.mailer.SendAsync(full.User.Email, "Payment confirmed",
			"<p>Your payment has been confirmed. Thank you!</p>")
	}
	return nil
}

// DeleteBooking hard-deletes a user's own pending booking; admins
// soft-delete any booking instead so history survives.
func (u *bookingUsecase) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	booking, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	switch role {
	case entity.RoleAdmin:
		return u.bookingRepo.UpdateFields(u.db.WithContext(ctx), booking.ID, map[string]interface{}{
			"is_active": false,
		})
	case entity.RoleUser:
		if !booking.IsOwnedBy(userID) {
			return ErrBookingAccessDenied
		}
		if !booking.IsPending() {
			return ErrBookingNotPending
		}
		return u.bookingRepo.Delete(u.db.WithContext(ctx), booking.ID)
	default:
		return ErrBookingAccessDenied
	}
}

func (u *bookingUsecase) CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	conflicts, err := u.bookingRepo.CountConflicting(u.db.WithContext(ctx), req.PropertyID, date, req.StartTime, req.EndTime)
	if err != nil {
		u.log.Warnf("Failed to check availability: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityResponse{Available: conflicts == 0}, nil
}

func (u *bookingUsecase) GetAgentSchedule(ctx context.Context, dateStr string) (*dto.AgentScheduleResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		date = &parsed
	}

	bookings, err := u.bookingRepo.ListAgentSchedule(u.db.WithContext(ctx), userID, date)
	if err != nil {
		u.log.Warnf("Failed to list agent schedule: %+v", err)
		return nil, err
	}

	return &dto.AgentScheduleResponse{
		Schedule: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBookingStats(ctx context.Context) (*entity.BookingStats, error) {
	stats, err := u.bookingRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute booking stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *bookingUsecase) GetMonthlyBookings(ctx context.Context, year int) ([]entity.MonthlyBookingStat, error) {
	stats, err := u.bookingRepo.MonthlyStats(u.db.WithContext(ctx), year)
	if err != nil {
		u.log.Warnf("Failed to compute monthly stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *bookingUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// authorizedBooking loads a booking and verifies the actor may see it:
// owner, assigned agent or admin.
func (u *bookingUsecase) authorizedBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == entity.RoleAdmin || booking.IsOwnedBy(userID) || booking.IsAssignedTo(userID) {
		return booking, nil
	}
	return nil, ErrBookingAccessDenied
}

// assignedBooking loads a booking for an agent/admin action; agents must be
// the assigned agent.
func (u *bookingUsecase) assignedBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == entity.RoleAgent && !booking.IsAssignedTo(userID) {
		return nil, ErrNotAssignedAgent
	}
	return booking, nil
}

// reload refetches the booking with its relations; on failure the original
// is returned so the caller still gets a usable response.
func (u *bookingUsecase) reload(ctx context.Context, booking *entity.Booking) *entity.Booking {
	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return booking
	}
	return full
}

// validateSlot enforces the slot rules at creation time: a partially
// specified slot is never accepted, and viewings must carry a complete one
// so every viewing participates in the overlap check.
func validateSlot(bookingType entity.BookingType, hasDate bool, start, end string) error {
	complete := hasDate && start != "" && end != ""
	if (start != "" || end != "") && !complete {
		return ErrSlotIncomplete
	}
	if bookingType == entity.BookingTypeViewing && !complete {
		return ErrViewingSlotRequired
	}
	return nil
}

// cancellationReason accepts a free-text string or an arbitrary JSON value;
// non-string values are stored marshaled.
func cancellationReason(req *dto.CancelBookingRequest) string {
	if req == nil || req.CancellationReason == nil {
		return ""
	}
	if s, ok := req.CancellationReason.(string); ok {
		return s
	}
	marshaled, err := json.Marshal(req.CancellationReason)
	if err != nil {
		return ""
	}
	return string(marshaled)
}
