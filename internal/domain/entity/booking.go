package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingType classifies what the requester wants from the property.
// Immutable after creation.
type BookingType string

const (
	BookingTypeViewing  BookingType = "viewing"
	BookingTypeInquiry  BookingType = "inquiry"
	BookingTypeRental   BookingType = "rental"
	BookingTypePurchase BookingType = "purchase"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusAgentConfirmed BookingStatus = "agent_confirmed"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusPaymentPending BookingStatus = "payment_pending"
	BookingStatusPaid           BookingStatus = "paid"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusRejected       BookingStatus = "rejected"
	BookingStatusPropertySold   BookingStatus = "property_sold"
)

// PaymentStatus tracks settlement on the booking itself
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking represents a request by a user against a property.
// Time slots are zero-padded "HH:MM" strings; the half-open interval
// [start, end) orders lexicographically, so string comparison is enough
// for overlap checks.
type Booking struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PropertyID          uuid.UUID        `gorm:"type:uuid;not null;index:idx_bookings_property_date" json:"property_id"`
	UserID              uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	AgentID             *uuid.UUID       `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	BookingType         BookingType      `gorm:"type:varchar(20);not null;default:'viewing'" json:"booking_type"`
	Status              BookingStatus    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Date                *time.Time       `gorm:"type:date;index:idx_bookings_property_date" json:"date,omitempty"`
	TimeSlotStart       string           `gorm:"type:varchar(5)" json:"time_slot_start,omitempty"`
	TimeSlotEnd         string           `gorm:"type:varchar(5)" json:"time_slot_end,omitempty"`
	Duration            int              `gorm:"not null;default:60" json:"duration"`
	Message             string           `gorm:"type:varchar(500)" json:"message,omitempty"`
	ContactPreference   string           `gorm:"type:varchar(20);not null;default:'phone'" json:"contact_preference"`
	NumberOfPersons     int              `gorm:"not null;default:1" json:"number_of_persons"`
	Price               *decimal.Decimal `gorm:"type:decimal(14,2)" json:"price,omitempty"`
	PaymentStatus       PaymentStatus    `gorm:"type:varchar(10);not null;default:'unpaid'" json:"payment_status"`
	SpecialRequirements string           `gorm:"type:text" json:"special_requirements,omitempty"`
	CancellationReason  string           `gorm:"type:text" json:"cancellation_reason,omitempty"`
	IsActive            bool             `gorm:"not null;default:true" json:"-"`
	ReminderSent        bool             `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Agent    *User     `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

func (b *Booking) IsAssignedTo(agentID uuid.UUID) bool {
	return b.AgentID != nil && *b.AgentID == agentID
}

// CanBeCancelled reports whether a regular user may still cancel.
// Pending and dateless bookings are always cancellable; confirmed viewings
// only while the appointment is more than 24 hours away. Agents and admins
// bypass this check entirely.
func (b *Booking) CanBeCancelled(now time.Time) bool {
	if b.Status == BookingStatusPending {
		return true
	}
	if b.Date == nil {
		return true
	}
	if b.Status == BookingStatusConfirmed {
		return b.Date.Sub(now) > 24*time.Hour
	}
	return false
}

// SlotsOverlap reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Times are zero-padded "HH:MM" strings.
func SlotsOverlap(s1, e1, s2, e2 string) bool {
	return s1 < e2 && s2 < e1
}
