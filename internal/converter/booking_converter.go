package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:                  booking.ID,
		PropertyID:          booking.PropertyID,
		UserID:              booking.UserID,
		AgentID:             booking.AgentID,
		BookingType:         string(booking.BookingType),
		Status:              string(booking.Status),
		Date:                booking.Date,
		StartTime:           booking.TimeSlotStart,
		EndTime:             booking.TimeSlotEnd,
		Duration:            booking.Duration,
		Message:             booking.Message,
		ContactPreference:   booking.ContactPreference,
		NumberOfPersons:     booking.NumberOfPersons,
		Price:               booking.Price,
		PaymentStatus:       string(booking.PaymentStatus),
		SpecialRequirements: booking.SpecialRequirements,
		CancellationReason:  booking.CancellationReason,
		Property:            PropertyToResponse(booking.Property),
		User:                UserToResponse(booking.User),
		Agent:               UserToResponse(booking.Agent),
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *BookingToResponse(&booking)
	}
	return responses
}
