package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment" validate:"required,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment string   `json:"comment" validate:"omitempty,max=2000"`
}

// Response DTOs

type ReviewResponse struct {
	ID                 uuid.UUID     `json:"id"`
	PropertyID         uuid.UUID     `json:"property_id"`
	Rating             float64       `json:"rating"`
	Comment            string        `json:"comment"`
	IsVerifiedPurchase bool          `json:"is_verified_purchase"`
	User               *UserResponse `json:"user,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int64            `json:"total"`
}
