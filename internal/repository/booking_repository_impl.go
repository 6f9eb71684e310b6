package repository

import (
	"errors"
	"fmt"
	"time"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Property").Preload("User").Preload("Agent").
		Where("id = ? AND is_active = ?", id, true).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	query := db.Model(&entity.Booking{}).Where("is_active = ?", true)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.BookingType != nil {
		query = query.Where("booking_type = ?", *filter.BookingType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []entity.Booking
	err := query.Preload("Property").Preload("User").Preload("Agent").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Booking{}).Where("id = ?", id).Updates(fields).Error
}

func (r *bookingRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Booking{}).Error
}

func (r *bookingRepository) CountConflicting(db *gorm.DB, propertyID uuid.UUID, date time.Time, start, end string) (int64, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("property_id = ? AND date = ? AND is_active = ?", propertyID, date, true).
		Where("status IN ?", []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed}).
		Where("time_slot_start < ? AND time_slot_end > ?", end, start).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) LockSlot(db *gorm.DB, propertyID uuid.UUID, date time.Time) error {
	key := fmt.Sprintf("booking-slot:%s:%s", propertyID, date.Format("2006-01-02"))
	return db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func (r *bookingRepository) ListAgentSchedule(db *gorm.DB, agentID uuid.UUID, date *time.Time) ([]entity.Booking, error) {
	query := db.Preload("Property").Preload("User").
		Where("agent_id = ? AND is_active = ?", agentID, true)

	if date != nil {
		query = query.Where("date = ?", *date)
	} else {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		query = query.Where("date >= ?", today)
	}

	var bookings []entity.Booking
	err := query.Order("date ASC, time_slot_start ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HasCompletedBooking(db *gorm.DB, userID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("user_id = ? AND property_id = ? AND status = ?", userID, propertyID, entity.BookingStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) Stats(db *gorm.DB) (*entity.BookingStats, error) {
	var stats entity.BookingStats
	err := db.Model(&entity.Booking{}).
		Select(`COUNT(*) AS total_bookings,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_bookings,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_bookings,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed_bookings,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled_bookings,
			COUNT(*) FILTER (WHERE status = 'confirmed' AND date > NOW()) AS upcoming_bookings`).
		Where("is_active = ?", true).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *bookingRepository) MonthlyStats(db *gorm.DB, year int) ([]entity.MonthlyBookingStat, error) {
	var stats []entity.MonthlyBookingStat
	err := db.Model(&entity.Booking{}).
		Select(`EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*) AS count,
			COALESCE(SUM(price), 0) AS revenue,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_count`).
		Where("EXTRACT(YEAR FROM created_at) = ? AND is_active = ?", year, true).
		Group("EXTRACT(MONTH FROM created_at)").
		Order("month ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
