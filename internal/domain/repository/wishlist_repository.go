package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	Create(db *gorm.DB, item *entity.WishlistItem) error
	FindByUserAndProperty(db *gorm.DB, userID, propertyID uuid.UUID) (*entity.WishlistItem, error)
	ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.WishlistItem, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
