package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddWishlistItemRequest struct {
	PropertyID uuid.UUID `json:"property" validate:"required"`
	Notes      string    `json:"notes" validate:"omitempty,max=200"`
	Tags       []string  `json:"tags" validate:"omitempty,dive,oneof=favorite considering viewed dream investment"`
	Priority   int       `json:"priority" validate:"omitempty,gte=1,lte=5"`
	CustomName string    `json:"custom_name" validate:"omitempty,max=50"`
}

type UpdateWishlistItemRequest struct {
	Notes      string   `json:"notes" validate:"omitempty,max=200"`
	Tags       []string `json:"tags" validate:"omitempty,dive,oneof=favorite considering viewed dream investment"`
	Priority   *int     `json:"priority" validate:"omitempty,gte=1,lte=5"`
	CustomName string   `json:"custom_name" validate:"omitempty,max=50"`
}

// Response DTOs

type WishlistItemResponse struct {
	ID         uuid.UUID         `json:"id"`
	PropertyID uuid.UUID         `json:"property_id"`
	Notes      string            `json:"notes,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Priority   int               `json:"priority"`
	CustomName string            `json:"custom_name,omitempty"`
	Property   *PropertyResponse `json:"property,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
	Total int                    `json:"total"`
}
