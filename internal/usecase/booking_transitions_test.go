package usecase

import (
	"testing"

	"estatehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var allBookingStatuses = []entity.BookingStatus{
	entity.BookingStatusPending,
	entity.BookingStatusAgentConfirmed,
	entity.BookingStatusConfirmed,
	entity.BookingStatusPaymentPending,
	entity.BookingStatusPaid,
	entity.BookingStatusCompleted,
	entity.BookingStatusCancelled,
	entity.BookingStatusRejected,
	entity.BookingStatusPropertySold,
}

func TestCanTransitionAllowed(t *testing.T) {
	tests := []struct {
		role entity.Role
		from entity.BookingStatus
		to   entity.BookingStatus
	}{
		{entity.RoleUser, entity.BookingStatusPending, entity.BookingStatusCancelled},
		{entity.RoleUser, entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
		{entity.RoleAgent, entity.BookingStatusPending, entity.BookingStatusConfirmed},
		{entity.RoleAgent, entity.BookingStatusPending, entity.BookingStatusRejected},
		{entity.RoleAgent, entity.BookingStatusConfirmed, entity.BookingStatusCompleted},
		{entity.RoleAgent, entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
		{entity.RoleAdmin, entity.BookingStatusPending, entity.BookingStatusConfirmed},
		{entity.RoleAdmin, entity.BookingStatusPending, entity.BookingStatusRejected},
		{entity.RoleAdmin, entity.BookingStatusPending, entity.BookingStatusCancelled},
		{entity.RoleAdmin, entity.BookingStatusConfirmed, entity.BookingStatusCompleted},
		{entity.RoleAdmin, entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
		{entity.RoleAdmin, entity.BookingStatusCancelled, entity.BookingStatusPending},
	}

	for _, tt := range tests {
		assert.True(t, CanTransition(tt.role, tt.from, tt.to),
			"%s should be able to move %s -> %s", tt.role, tt.from, tt.to)
	}
}

// Everything not explicitly allowed is denied, including the payment and
// reconciliation statuses that only move through their own flows.
func TestCanTransitionDeniedByDefault(t *testing.T) {
	allowed := map[entity.Role]map[entity.BookingStatus]map[entity.BookingStatus]bool{
		entity.RoleUser: {
			entity.BookingStatusPending:   {entity.BookingStatusCancelled: true},
			entity.BookingStatusConfirmed: {entity.BookingStatusCancelled: true},
		},
		entity.RoleAgent: {
			entity.BookingStatusPending:   {entity.BookingStatusConfirmed: true, entity.BookingStatusRejected: true},
			entity.BookingStatusConfirmed: {entity.BookingStatusCompleted: true, entity.BookingStatusCancelled: true},
		},
		entity.RoleAdmin: {
			entity.BookingStatusPending:   {entity.BookingStatusConfirmed: true, entity.BookingStatusRejected: true, entity.BookingStatusCancelled: true},
			entity.BookingStatusConfirmed: {entity.BookingStatusCompleted: true, entity.BookingStatusCancelled: true},
			entity.BookingStatusCancelled: {entity.BookingStatusPending: true},
		},
	}

	for _, role := range []entity.Role{entity.RoleUser, entity.RoleAgent, entity.RoleAdmin} {
		for _, from := range allBookingStatuses {
			for _, to := range allBookingStatuses {
				want := allowed[role][from][to]
				assert.Equal(t, want, CanTransition(role, from, to),
					"%s moving %s -> %s", role, from, to)
			}
		}
	}
}

func TestCanTransitionUnknownRole(t *testing.T) {
	assert.False(t, CanTransition(entity.Role("ghost"), entity.BookingStatusPending, entity.BookingStatusCancelled))
}

func TestRoleMayUpdate(t *testing.T) {
	t.Run("status column is agent and admin territory", func(t *testing.T) {
		assert.False(t, roleMayUpdate(entity.RoleUser, "status"))
		assert.True(t, roleMayUpdate(entity.RoleAgent, "status"))
		assert.True(t, roleMayUpdate(entity.RoleAdmin, "status"))
	})

	t.Run("scheduling columns are open to users", func(t *testing.T) {
		assert.True(t, roleMayUpdate(entity.RoleUser, "date"))
		assert.True(t, roleMayUpdate(entity.RoleUser, "time_slot_start"))
	})

	t.Run("price is admin only", func(t *testing.T) {
		assert.False(t, roleMayUpdate(entity.RoleAgent, "price"))
		assert.True(t, roleMayUpdate(entity.RoleAdmin, "price"))
	})

	t.Run("unknown role may touch nothing", func(t *testing.T) {
		assert.False(t, roleMayUpdate(entity.Role("ghost"), "message"))
	})
}

func TestFilterBookingFields(t *testing.T) {
	fields := map[string]interface{}{
		"date":            "2026-04-01",
		"time_slot_start": "10:00",
		"status":          "confirmed",
		"agent_id":        "some-agent",
		"price":           "250000",
		"payment_status":  "paid",
		"is_active":       false,
	}

	t.Run("user keeps only scheduling fields", func(t *testing.T) {
		filtered := filterBookingFields(entity.RoleUser, fields)
		assert.Equal(t, map[string]interface{}{
			"date":            "2026-04-01",
			"time_slot_start": "10:00",
		}, filtered)
	})

	t.Run("agent may touch status and assignment", func(t *testing.T) {
		filtered := filterBookingFields(entity.RoleAgent, fields)
		assert.Contains(t, filtered, "status")
		assert.Contains(t, filtered, "agent_id")
		assert.NotContains(t, filtered, "price")
		assert.NotContains(t, filtered, "payment_status")
		assert.NotContains(t, filtered, "is_active")
	})

	t.Run("admin may touch price and payment status", func(t *testing.T) {
		filtered := filterBookingFields(entity.RoleAdmin, fields)
		assert.Contains(t, filtered, "price")
		assert.Contains(t, filtered, "payment_status")
		assert.NotContains(t, filtered, "is_active")
	})

	t.Run("unknown role keeps nothing", func(t *testing.T) {
		assert.Empty(t, filterBookingFields(entity.Role("ghost"), fields))
	})
}
