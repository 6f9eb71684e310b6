package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating plus comment left by a user on a property.
// One review per (property, user).
type Review struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PropertyID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_property_user" json:"property_id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_property_user" json:"user_id"`
	Rating             float64   `gorm:"not null" json:"rating"`
	Comment            string    `gorm:"type:text;not null" json:"comment"`
	IsVerifiedPurchase bool      `gorm:"not null;default:false" json:"is_verified_purchase"`
	CreatedAt          time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
