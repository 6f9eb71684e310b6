package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingFilter narrows booking listings. UserID/AgentID carry the
// role-based scoping decided by the usecase, the rest comes from query params.
type BookingFilter struct {
	UserID      *uuid.UUID
	AgentID     *uuid.UUID
	PropertyID  *uuid.UUID
	Status      *BookingStatus
	BookingType *BookingType
	Page        int
	Limit       int
}

// PropertyFilter narrows property listings
type PropertyFilter struct {
	City         string
	Status       *PropertyStatus
	PropertyType string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Search       string
	Page         int
	Limit        int
}

// NotificationFilter narrows a user's notification feed
type NotificationFilter struct {
	UserID    uuid.UUID
	Read      *bool
	Type      *NotificationType
	Important bool
	Oldest    bool
	Page      int
	Limit     int
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Role        *Role
	AgentStatus *AgentStatus
	Page        int
	Limit       int
}

// BookingStats aggregates booking counts by status
type BookingStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	UpcomingBookings  int64 `json:"upcoming_bookings"`
}

// MonthlyBookingStat is one month's slice of the yearly report
type MonthlyBookingStat struct {
	Month          int             `json:"month"`
	Count          int64           `json:"count"`
	Revenue        decimal.Decimal `json:"revenue"`
	ConfirmedCount int64           `json:"confirmed_count"`
}
