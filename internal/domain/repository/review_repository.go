package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Review, error)
	ListByProperty(db *gorm.DB, propertyID uuid.UUID, page, limit int) ([]entity.Review, int64, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uuid.UUID) error
	// RatingAggregate recomputes the average and count for a property.
	RatingAggregate(db *gorm.DB, propertyID uuid.UUID) (avg float64, count int64, err error)
}
