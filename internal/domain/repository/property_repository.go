package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(db *gorm.DB, property *entity.Property) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Property, error)
	List(db *gorm.DB, filter *entity.PropertyFilter) ([]entity.Property, int64, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(db *gorm.DB, id uuid.UUID) error
}
