package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePropertyRequest struct {
	Title         string                 `json:"title" validate:"required,min=10,max=100"`
	Description   string                 `json:"description" validate:"required,min=50"`
	Price         decimal.Decimal        `json:"price" validate:"required"`
	PriceDiscount *decimal.Decimal       `json:"price_discount" validate:"omitempty"`
	PropertyType  string                 `json:"property_type" validate:"omitempty,oneof=residential commercial land luxury rental"`
	Bedrooms      int                    `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     int                    `json:"bathrooms" validate:"omitempty,gte=0"`
	Area          float64                `json:"area" validate:"omitempty,gte=0"`
	Street        string                 `json:"street" validate:"required"`
	City          string                 `json:"city" validate:"required"`
	State         string                 `json:"state" validate:"required"`
	ZipCode       string                 `json:"zip_code" validate:"required"`
	Country       string                 `json:"country" validate:"omitempty"`
	Amenities     map[string]interface{} `json:"amenities" validate:"omitempty"`
	Images        []interface{}          `json:"images" validate:"omitempty"`
	OwnerID       *uuid.UUID             `json:"owner" validate:"omitempty"`
}

type UpdatePropertyRequest struct {
	Title         string                 `json:"title" validate:"omitempty,min=10,max=100"`
	Description   string                 `json:"description" validate:"omitempty,min=50"`
	Price         *decimal.Decimal       `json:"price" validate:"omitempty"`
	PriceDiscount *decimal.Decimal       `json:"price_discount" validate:"omitempty"`
	Status        string                 `json:"status" validate:"omitempty,oneof=available booked sold pending rented"`
	PropertyType  string                 `json:"property_type" validate:"omitempty,oneof=residential commercial land luxury rental"`
	Bedrooms      *int                   `json:"bedrooms" validate:"omitempty"`
	Bathrooms     *int                   `json:"bathrooms" validate:"omitempty"`
	Area          *float64               `json:"area" validate:"omitempty"`
	Street        string                 `json:"street" validate:"omitempty"`
	City          string                 `json:"city" validate:"omitempty"`
	State         string                 `json:"state" validate:"omitempty"`
	ZipCode       string                 `json:"zip_code" validate:"omitempty"`
	Country       string                 `json:"country" validate:"omitempty"`
	Amenities     map[string]interface{} `json:"amenities" validate:"omitempty"`
	Images        []interface{}          `json:"images" validate:"omitempty"`
}

// Response DTOs

type PropertyResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Slug          string                 `json:"slug"`
	Description   string                 `json:"description"`
	Price         decimal.Decimal        `json:"price"`
	PriceDiscount *decimal.Decimal       `json:"price_discount,omitempty"`
	Status        string                 `json:"status"`
	PropertyType  string                 `json:"property_type"`
	Bedrooms      int                    `json:"bedrooms"`
	Bathrooms     int                    `json:"bathrooms"`
	Area          float64                `json:"area"`
	Street        string                 `json:"street"`
	City          string                 `json:"city"`
	State         string                 `json:"state"`
	ZipCode       string                 `json:"zip_code"`
	Country       string                 `json:"country"`
	Amenities     map[string]interface{} `json:"amenities,omitempty"`
	Images        []interface{}          `json:"images,omitempty"`
	RatingAverage float64                `json:"rating_average"`
	RatingCount   int                    `json:"rating_count"`
	Agent         *UserResponse          `json:"agent,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
}
