package repository

import (
	"errors"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type propertyRepository struct{}

func NewPropertyRepository() domainRepo.PropertyRepository {
	return &propertyRepository{}
}

func (r *propertyRepository) Create(db *gorm.DB, property *entity.Property) error {
	return db.Create(property).Error
}

func (r *propertyRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Property, error) {
	var property entity.Property
	err := db.Preload("Agent").Preload("Owner").
		Where("id = ? AND is_active = ?", id, true).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(db *gorm.DB, filter *entity.PropertyFilter) ([]entity.Property, int64, error) {
	query := db.Model(&entity.Property{}).Where("is_active = ?", true)

	if filter.City != "" {
		query = query.Where("city ILIKE ?", filter.City)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []entity.Property
	err := query.Preload("Agent").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Property{}).Where("id = ?", id).Updates(fields).Error
}

func (r *propertyRepository) SoftDelete(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Property{}).Where("id = ?", id).Update("is_active", false).Error
}
