package repository

import (
	"errors"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.Preload("User").Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByProperty(db *gorm.DB, propertyID uuid.UUID, page, limit int) ([]entity.Review, int64, error) {
	query := db.Model(&entity.Review{}).Where("property_id = ?", propertyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []entity.Review
	err := query.Preload("User").
		Order("rating DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Review{}).Where("id = ?", id).Updates(fields).Error
}

func (r *reviewRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Review{}).Error
}

func (r *reviewRepository) RatingAggregate(db *gorm.DB, propertyID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("property_id = ?", propertyID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
