package converter

import (
	"testing"
	"time"

	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingToResponse(t *testing.T) {
	t.Run("nil booking", func(t *testing.T) {
		assert.Nil(t, BookingToResponse(nil))
	})

	t.Run("maps time slots and relationships", func(t *testing.T) {
		agentID := uuid.New()
		date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		booking := &entity.Booking{
			ID:            uuid.New(),
			PropertyID:    uuid.New(),
			UserID:        uuid.New(),
			AgentID:       &agentID,
			BookingType:   entity.BookingTypeViewing,
			Status:        entity.BookingStatusConfirmed,
			Date:          &date,
			TimeSlotStart: "10:00",
			TimeSlotEnd:   "11:00",
			Duration:      60,
			PaymentStatus: entity.PaymentStatusUnpaid,
			Property:      &entity.Property{ID: uuid.New(), Title: "Lekki Duplex"},
			User:          &entity.User{ID: uuid.New(), Name: "Ada"},
		}

		resp := BookingToResponse(booking)
		require.NotNil(t, resp)

		assert.Equal(t, booking.ID, resp.ID)
		assert.Equal(t, "viewing", resp.BookingType)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:00", resp.EndTime)
		assert.Equal(t, "unpaid", resp.PaymentStatus)
		require.NotNil(t, resp.Property)
		assert.Equal(t, "Lekki Duplex", resp.Property.Title)
		require.NotNil(t, resp.User)
		assert.Nil(t, resp.Agent)
	})
}

func TestBookingsToResponses(t *testing.T) {
	bookings := []entity.Booking{
		{ID: uuid.New(), Status: entity.BookingStatusPending},
		{ID: uuid.New(), Status: entity.BookingStatusCancelled},
	}

	responses := BookingsToResponses(bookings)
	require.Len(t, responses, 2)
	assert.Equal(t, bookings[0].ID, responses[0].ID)
	assert.Equal(t, "cancelled", responses[1].Status)
}
