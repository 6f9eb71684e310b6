package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByReference(db *gorm.DB, reference string) (*entity.Payment, error)
	ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Payment, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}
