package repositories

import (
	"errors"
	"time"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingStatusStale = errors.New("booking status changed concurrently")
)

type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id string) (*models.Booking, error)
	FindByOwner(ownerID string) ([]models.Booking, error)
	FindByCaregiver(caregiverID string) ([]models.Booking, error)
	UpdateStatus(bookingID string, from, to models.BookingStatus) error
	CountOverlapping(caregiverID string, start, end time.Time) (int64, error)
	CompleteOverdue(cutoff time.Time) (int64, error)
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Owner").Preload("Caregiver.User").Preload("Pet").Preload("Service").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByOwner(ownerID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Caregiver.User").Preload("Pet").Preload("Service").
		Where("owner_id = ?", ownerID).
		Order("start_time DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByCaregiver(caregiverID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Owner").Preload("Pet").Preload("Service").
		Where("caregiver_id = ?", caregiverID).
		Order("start_time DESC").Find(&bookings).Error
	return bookings, err
}

// UpdateStatus is a compare-and-swap on the observed status, so two
// concurrent transitions cannot both win and the later one cannot overwrite
// a terminal state.
func (r *BookingRepositoryImpl) UpdateStatus(bookingID string, from, to models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBookingNotFound
		}
		return ErrBookingStatusStale
	}
	return nil
}

// CountOverlapping counts the caregiver's non-terminal bookings intersecting
// the half-open interval [start, end).
func (r *BookingRepositoryImpl) CountOverlapping(caregiverID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("caregiver_id = ?", caregiverID).
		Where("status IN ?", []models.BookingStatus{models.BookingStatusScheduled, models.BookingStatusActive}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count, err
}

// CompleteOverdue marks active bookings whose end time passed before the
// cutoff as completed. Used by the background worker.
func (r *BookingRepositoryImpl) CompleteOverdue(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusActive).
		Where("end_time < ?", cutoff).
		Updates(map[string]interface{}{
			"status":     models.BookingStatusCompleted,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
