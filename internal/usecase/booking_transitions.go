package usecase

import (
	"estatehub/internal/domain/entity"
)

// bookingTransitions is the role-gated booking state machine as data:
// role -> current status -> permitted next statuses. Anything not listed
// here is rejected. Confirm, payment and reconciliation flows move through
// their own contracts, not this table.
var bookingTransitions = map[entity.Role]map[entity.BookingStatus][]entity.BookingStatus{
	entity.RoleUser: {
		entity.BookingStatusPending:   {entity.BookingStatusCancelled},
		entity.BookingStatusConfirmed: {entity.BookingStatusCancelled},
	},
	entity.RoleAgent: {
		entity.BookingStatusPending:   {entity.BookingStatusConfirmed, entity.BookingStatusRejected},
		entity.BookingStatusConfirmed: {entity.BookingStatusCompleted, entity.BookingStatusCancelled},
	},
	entity.RoleAdmin: {
		entity.BookingStatusPending:   {entity.BookingStatusConfirmed, entity.BookingStatusRejected, entity.BookingStatusCancelled},
		entity.BookingStatusConfirmed: {entity.BookingStatusCompleted, entity.BookingStatusCancelled},
		// Admins may resurrect a cancelled booking.
		entity.BookingStatusCancelled: {entity.BookingStatusPending},
	},
}

// CanTransition reports whether role may move a booking from one status to
// another through a direct status update.
func CanTransition(role entity.Role, from, to entity.BookingStatus) bool {
	for _, allowed := range bookingTransitions[role][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// bookingUpdateAllowlist maps roles to the columns they may touch through
// the generic update endpoint. Status changes are additionally validated
// against the transition table.
var bookingUpdateAllowlist = map[entity.Role][]string{
	entity.RoleUser: {
		"date", "time_slot_start", "time_slot_end",
		"message", "contact_preference", "number_of_persons",
	},
	entity.RoleAgent: {
		"date", "time_slot_start", "time_slot_end",
		"message", "contact_preference", "number_of_persons",
		"status", "agent_id",
	},
	entity.RoleAdmin: {
		"date", "time_slot_start", "time_slot_end",
		"message", "contact_preference", "number_of_persons",
		"status", "agent_id", "price", "payment_status",
	},
}

// roleMayUpdate reports whether the role's allowlist carries the column.
func roleMayUpdate(role entity.Role, column string) bool {
	for _, allowed := range bookingUpdateAllowlist[role] {
		if allowed == column {
			return true
		}
	}
	return false
}

// filterBookingFields drops every column the role may not update.
func filterBookingFields(role entity.Role, fields map[string]interface{}) map[string]interface{} {
	allowed := make(map[string]bool, len(bookingUpdateAllowlist[role]))
	for _, column := range bookingUpdateAllowlist[role] {
		allowed[column] = true
	}

	filtered := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		if allowed[column] {
			filtered[column] = value
		}
	}
	return filtered
}
