package repository

import (
	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	List(db *gorm.DB, filter *entity.UserFilter) ([]entity.User, int64, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}
