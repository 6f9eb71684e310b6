package repository

import (
	"time"

	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	List(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	// UpdateFields applies a single field-set UPDATE so a transition never
	// goes through a multi-step unguarded write.
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uuid.UUID) error
	// CountConflicting counts pending/confirmed viewings on the same property
	// and date whose [start,end) slot overlaps the given one.
	CountConflicting(db *gorm.DB, propertyID uuid.UUID, date time.Time, start, end string) (int64, error)
	// LockSlot serializes check-then-insert per (property, date) via a
	// transaction-scoped advisory lock. Must run inside a transaction.
	LockSlot(db *gorm.DB, propertyID uuid.UUID, date time.Time) error
	ListAgentSchedule(db *gorm.DB, agentID uuid.UUID, date *time.Time) ([]entity.Booking, error)
	HasCompletedBooking(db *gorm.DB, userID, propertyID uuid.UUID) (bool, error)
	Stats(db *gorm.DB) (*entity.BookingStats, error)
	MonthlyStats(db *gorm.DB, year int) ([]entity.MonthlyBookingStat, error)
}
