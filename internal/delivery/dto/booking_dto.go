package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	PropertyID          uuid.UUID `json:"property" validate:"required"`
	BookingType         string    `json:"booking_type" validate:"required,oneof=viewing inquiry rental purchase"`
	Date                string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime           string    `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime             string    `json:"end_time" validate:"omitempty,datetime=15:04"`
	Duration            int       `json:"duration" validate:"omitempty,gte=15,lte=240"`
	Message             string    `json:"message" validate:"omitempty,max=500"`
	ContactPreference   string    `json:"contact_preference" validate:"omitempty,oneof=phone email whatsapp"`
	NumberOfPersons     int       `json:"number_of_persons" validate:"omitempty,gte=1,lte=10"`
	SpecialRequirements string    `json:"special_requirements" validate:"omitempty"`
}

// UpdateBookingRequest carries every mutable booking field; the usecase
// filters it down to the caller's role allowlist before applying anything.
type UpdateBookingRequest struct {
	Status            string           `json:"status" validate:"omitempty,oneof=pending agent_confirmed confirmed payment_pending paid completed cancelled rejected property_sold"`
	AgentID           *uuid.UUID       `json:"agent" validate:"omitempty"`
	Date              string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime         string           `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime           string           `json:"end_time" validate:"omitempty,datetime=15:04"`
	Message           string           `json:"message" validate:"omitempty,max=500"`
	ContactPreference string           `json:"contact_preference" validate:"omitempty,oneof=phone email whatsapp"`
	NumberOfPersons   int              `json:"number_of_persons" validate:"omitempty,gte=1,lte=10"`
	Price             *decimal.Decimal `json:"price" validate:"omitempty"`
	PaymentStatus     string           `json:"payment_status" validate:"omitempty,oneof=unpaid pending paid"`
}

// CancelBookingRequest accepts either a plain string or an arbitrary JSON
// object as the reason; objects are stored marshaled.
type CancelBookingRequest struct {
	CancellationReason interface{} `json:"cancellation_reason"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CheckAvailabilityRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string    `json:"end_time" validate:"required,datetime=15:04"`
}

// Response DTOs

type BookingResponse struct {
	ID                  uuid.UUID         `json:"id"`
	PropertyID          uuid.UUID         `json:"property_id"`
	UserID              uuid.UUID         `json:"user_id"`
	AgentID             *uuid.UUID        `json:"agent_id,omitempty"`
	BookingType         string            `json:"booking_type"`
	Status              string            `json:"status"`
	Date                *time.Time        `json:"date,omitempty"`
	StartTime           string            `json:"start_time,omitempty"`
	EndTime             string            `json:"end_time,omitempty"`
	Duration            int               `json:"duration"`
	Message             string            `json:"message,omitempty"`
	ContactPreference   string            `json:"contact_preference"`
	NumberOfPersons     int               `json:"number_of_persons"`
	Price               *decimal.Decimal  `json:"price,omitempty"`
	PaymentStatus       string            `json:"payment_status"`
	SpecialRequirements string            `json:"special_requirements,omitempty"`
	CancellationReason  string            `json:"cancellation_reason,omitempty"`
	Property            *PropertyResponse `json:"property,omitempty"`
	User                *UserResponse     `json:"user,omitempty"`
	Agent               *UserResponse     `json:"agent,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type AgentScheduleResponse struct {
	Schedule []BookingResponse `json:"schedule"`
	Total    int               `json:"total"`
}
