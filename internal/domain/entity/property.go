package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyStatus represents the lifecycle state of a listing
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusBooked    PropertyStatus = "booked"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusPending   PropertyStatus = "pending"
	PropertyStatusRented    PropertyStatus = "rented"
)

// Property represents a real-estate listing
type Property struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title         string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`
	Slug          string           `gorm:"type:varchar(120);index" json:"slug"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	Price         decimal.Decimal  `gorm:"type:decimal(14,2);not null" json:"price"`
	PriceDiscount *decimal.Decimal `gorm:"type:decimal(14,2)" json:"price_discount,omitempty"`
	Status        PropertyStatus   `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	PropertyType  string           `gorm:"type:varchar(30);not null;default:'residential';index" json:"property_type"`
	Bedrooms      int              `gorm:"default:0" json:"bedrooms"`
	Bathrooms     int              `gorm:"default:0" json:"bathrooms"`
	Area          float64          `gorm:"default:0" json:"area"`
	Street        string           `gorm:"type:varchar(150);not null" json:"street"`
	City          string           `gorm:"type:varchar(80);not null;index" json:"city"`
	State         string           `gorm:"type:varchar(80);not null" json:"state"`
	ZipCode       string           `gorm:"type:varchar(20);not null" json:"zip_code"`
	Country       string           `gorm:"type:varchar(80);not null;default:'Nigeria'" json:"country"`
	Amenities     JSON             `gorm:"type:jsonb" json:"amenities,omitempty"`
	Images        JSONArray        `gorm:"type:jsonb" json:"images,omitempty"`
	RatingAverage float64          `gorm:"not null;default:4.5" json:"rating_average"`
	RatingCount   int              `gorm:"not null;default:0" json:"rating_count"`
	AgentID       *uuid.UUID       `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	OwnerID       *uuid.UUID       `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	IsActive      bool             `gorm:"not null;default:true" json:"-"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Agent *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) IsAvailable() bool {
	return p.Status == PropertyStatusAvailable
}
