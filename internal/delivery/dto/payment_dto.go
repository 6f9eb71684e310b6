package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type InitializePaymentRequest struct {
	Type string `json:"type" validate:"required,oneof=purchase rental"`
}

// Response DTOs

type InitializePaymentResponse struct {
	AuthorizationURL string          `json:"authorization_url"`
	Reference        string          `json:"reference"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	Currency         string          `json:"currency"`
}

type VerifyPaymentResponse struct {
	PaymentStatus string          `json:"payment_status"`
	BookingStatus string          `json:"booking_status,omitempty"`
	PaymentType   string          `json:"payment_type"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	BookingID   uuid.UUID       `json:"booking_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Provider    string          `json:"provider"`
	PaymentType string          `json:"payment_type"`
	Reference   string          `json:"reference"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
