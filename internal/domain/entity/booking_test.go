package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name    string
		s1, e1  string
		s2, e2  string
		overlap bool
	}{
		{"identical slots", "10:00", "11:00", "10:00", "11:00", true},
		{"contained slot", "10:00", "12:00", "10:30", "11:00", true},
		{"partial overlap left", "10:00", "11:00", "10:30", "11:30", true},
		{"partial overlap right", "10:30", "11:30", "10:00", "11:00", true},
		{"back to back", "10:00", "11:00", "11:00", "12:00", false},
		{"back to back reversed", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"one minute overlap", "10:00", "11:01", "11:00", "12:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, SlotsOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestBookingCanBeCancelled(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	date := func(d time.Time) *time.Time { return &d }

	t.Run("pending is always cancellable", func(t *testing.T) {
		b := &Booking{Status: BookingStatusPending, Date: date(now.Add(time.Hour))}
		assert.True(t, b.CanBeCancelled(now))
	})

	t.Run("no date is always cancellable", func(t *testing.T) {
		b := &Booking{Status: BookingStatusConfirmed}
		assert.True(t, b.CanBeCancelled(now))
	})

	t.Run("confirmed more than 24h ahead", func(t *testing.T) {
		b := &Booking{Status: BookingStatusConfirmed, Date: date(now.Add(24*time.Hour + time.Minute))}
		assert.True(t, b.CanBeCancelled(now))
	})

	t.Run("confirmed exactly 24h ahead", func(t *testing.T) {
		b := &Booking{Status: BookingStatusConfirmed, Date: date(now.Add(24 * time.Hour))}
		assert.False(t, b.CanBeCancelled(now))
	})

	t.Run("confirmed less than 24h ahead", func(t *testing.T) {
		b := &Booking{Status: BookingStatusConfirmed, Date: date(now.Add(23 * time.Hour))}
		assert.False(t, b.CanBeCancelled(now))
	})

	t.Run("completed is not cancellable", func(t *testing.T) {
		b := &Booking{Status: BookingStatusCompleted, Date: date(now.Add(48 * time.Hour))}
		assert.False(t, b.CanBeCancelled(now))
	})
}

func TestBookingOwnershipHelpers(t *testing.T) {
	owner := uuid.New()
	agent := uuid.New()
	other := uuid.New()

	b := &Booking{UserID: owner, AgentID: &agent}

	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(other))
	assert.True(t, b.IsAssignedTo(agent))
	assert.False(t, b.IsAssignedTo(other))

	unassigned := &Booking{UserID: owner}
	assert.False(t, unassigned.IsAssignedTo(agent))
}
