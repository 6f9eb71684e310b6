package usecase

import (
	"testing"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlot(t *testing.T) {
	tests := []struct {
		name        string
		bookingType entity.BookingType
		hasDate     bool
		start, end  string
		wantErr     error
	}{
		{"viewing with full slot", entity.BookingTypeViewing, true, "10:00", "11:00", nil},
		{"viewing with nothing", entity.BookingTypeViewing, false, "", "", ErrViewingSlotRequired},
		{"viewing with date only", entity.BookingTypeViewing, true, "", "", ErrViewingSlotRequired},
		{"viewing with start only", entity.BookingTypeViewing, true, "10:00", "", ErrSlotIncomplete},
		{"viewing times without date", entity.BookingTypeViewing, false, "10:00", "11:00", ErrSlotIncomplete},
		{"inquiry without slot", entity.BookingTypeInquiry, false, "", "", nil},
		{"purchase with date only", entity.BookingTypePurchase, true, "", "", nil},
		{"rental with end only", entity.BookingTypeRental, true, "", "11:00", ErrSlotIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlot(tt.bookingType, tt.hasDate, tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCancellationReason(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		assert.Equal(t, "", cancellationReason(nil))
	})

	t.Run("missing reason", func(t *testing.T) {
		assert.Equal(t, "", cancellationReason(&dto.CancelBookingRequest{}))
	})

	t.Run("plain string", func(t *testing.T) {
		req := &dto.CancelBookingRequest{CancellationReason: "changed my mind"}
		assert.Equal(t, "changed my mind", cancellationReason(req))
	})

	t.Run("object is stored marshaled", func(t *testing.T) {
		req := &dto.CancelBookingRequest{CancellationReason: map[string]interface{}{"code": "other"}}
		assert.Equal(t, `{"code":"other"}`, cancellationReason(req))
	})

	t.Run("number is stored marshaled", func(t *testing.T) {
		req := &dto.CancelBookingRequest{CancellationReason: float64(42)}
		assert.Equal(t, "42", cancellationReason(req))
	})
}
