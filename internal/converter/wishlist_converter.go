package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// WishlistItemToResponse converts a WishlistItem entity to DTO
func WishlistItemToResponse(item *entity.WishlistItem) *dto.WishlistItemResponse {
	if item == nil {
		return nil
	}

	tags := make([]string, 0, len(item.Tags))
	for _, tag := range item.Tags {
		if s, ok := tag.(string); ok {
			tags = append(tags, s)
		}
	}

	return &dto.WishlistItemResponse{
		ID:         item.ID,
		PropertyID: item.PropertyID,
		Notes:      item.Notes,
		Tags:       tags,
		Priority:   item.Priority,
		CustomName: item.CustomName,
		Property:   PropertyToResponse(item.Property),
		CreatedAt:  item.CreatedAt,
	}
}

// WishlistItemsToResponses converts a slice of WishlistItem entities to DTOs
func WishlistItemsToResponses(items []entity.WishlistItem) []dto.WishlistItemResponse {
	responses := make([]dto.WishlistItemResponse, len(items))
	for i, item := range items {
		responses[i] = *WishlistItemToResponse(&item)
	}
	return responses
}
