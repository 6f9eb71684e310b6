package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:          payment.ID,
		BookingID:   payment.BookingID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Provider:    payment.Provider,
		PaymentType: string(payment.PaymentType),
		Reference:   payment.Reference,
		Status:      string(payment.Status),
		PaidAt:      payment.PaidAt,
		CreatedAt:   payment.CreatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = *PaymentToResponse(&payment)
	}
	return responses
}
