package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a property saved by a user, with optional notes and tags.
// One entry per (user, property).
type WishlistItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_property" json:"user_id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_property" json:"property_id"`
	Notes      string    `gorm:"type:varchar(200)" json:"notes,omitempty"`
	Tags       JSONArray `gorm:"type:jsonb" json:"tags,omitempty"`
	Priority   int       `gorm:"not null;default:3" json:"priority"`
	CustomName string    `gorm:"type:varchar(50)" json:"custom_name,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
