package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// PropertyToResponse converts a Property entity to PropertyResponse DTO
func PropertyToResponse(property *entity.Property) *dto.PropertyResponse {
	if property == nil {
		return nil
	}

	return &dto.PropertyResponse{
		ID:            property.ID,
		Title:         property.Title,
		Slug:          property.Slug,
		Description:   property.Description,
		Price:         property.Price,
		PriceDiscount: property.PriceDiscount,
		Status:        string(property.Status),
		PropertyType:  property.PropertyType,
		Bedrooms:      property.Bedrooms,
		Bathrooms:     property.Bathrooms,
		Area:          property.Area,
		Street:        property.Street,
		City:          property.City,
		State:         property.State,
		ZipCode:       property.ZipCode,
		Country:       property.Country,
		Amenities:     property.Amenities,
		Images:        property.Images,
		RatingAverage: property.RatingAverage,
		RatingCount:   property.RatingCount,
		Agent:         UserToResponse(property.Agent),
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
}

// PropertiesToResponses converts a slice of Property entities to DTOs
func PropertiesToResponses(properties []entity.Property) []dto.PropertyResponse {
	responses := make([]dto.PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = *PropertyToResponse(&property)
	}
	return responses
}
