package repository

import (
	"errors"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistRepository struct{}

func NewWishlistRepository() domainRepo.WishlistRepository {
	return &wishlistRepository{}
}

func (r *wishlistRepository) Create(db *gorm.DB, item *entity.WishlistItem) error {
	return db.Create(item).Error
}

func (r *wishlistRepository) FindByUserAndProperty(db *gorm.DB, userID, propertyID uuid.UUID) (*entity.WishlistItem, error) {
	var item entity.WishlistItem
	err := db.Where("user_id = ? AND property_id = ? AND is_active = ?", userID, propertyID, true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	err := db.Preload("Property").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("priority DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.WishlistItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *wishlistRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.WishlistItem{}).Error
}
