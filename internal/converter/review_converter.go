package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:                 review.ID,
		PropertyID:         review.PropertyID,
		Rating:             review.Rating,
		Comment:            review.Comment,
		IsVerifiedPurchase: review.IsVerifiedPurchase,
		User:               UserToResponse(review.User),
		CreatedAt:          review.CreatedAt,
	}
}

// ReviewsToResponses converts a slice of Review entities to DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = *ReviewToResponse(&review)
	}
	return responses
}
