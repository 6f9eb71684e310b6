package repository

import (
	"errors"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByReference(db *gorm.DB, reference string) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking").Where("reference = ?", reference).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Booking").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Payment{}).Where("id = ?", id).Updates(fields).Error
}
