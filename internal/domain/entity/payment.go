package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType mirrors the booking type being settled
type PaymentType string

const (
	PaymentTypePurchase PaymentType = "purchase"
	PaymentTypeRental   PaymentType = "rental"
)

// ProviderStatus is the provider-side settlement state of a Payment record
type ProviderStatus string

const (
	ProviderStatusPending ProviderStatus = "pending"
	ProviderStatusSuccess ProviderStatus = "success"
	ProviderStatusFailed  ProviderStatus = "failed"
)

// Payment correlates an outbound provider charge with a booking. The
// reference is generated before the provider is contacted so a webhook can
// never race the record into existence.
type Payment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'NGN'" json:"currency"`
	Provider         string          `gorm:"type:varchar(20);not null" json:"provider"`
	PaymentType      PaymentType     `gorm:"type:varchar(10);not null;default:'purchase'" json:"payment_type"`
	Reference        string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	Status           ProviderStatus  `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	AuthorizationURL string          `gorm:"type:varchar(255)" json:"authorization_url,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	RawResponse      JSON            `gorm:"type:jsonb" json:"raw_response,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) IsSettled() bool {
	return p.Status == ProviderStatusSuccess
}
