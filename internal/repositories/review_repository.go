package repositories

import (
	"errors"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("booking already reviewed")
)

type ReviewRepository interface {
	CreateWithAggregates(review *models.Review) error
	DeleteWithAggregates(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindByBooking(bookingID string) (*models.Review, error)
	FindByCaregiver(caregiverID string, page, pageSize int) ([]models.Review, int64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

// CreateWithAggregates inserts the review and recomputes the caregiver's
// aggregate rating and review count in the same transaction.
func (r *ReviewRepositoryImpl) CreateWithAggregates(review *models.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Review
		if err := tx.Where("booking_id = ?", review.BookingID).First(&existing).Error; err == nil {
			return ErrReviewAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		return recomputeAggregates(tx, review.CaregiverID)
	})
}

// DeleteWithAggregates removes the review and recomputes the caregiver's
// aggregates transactionally.
func (r *ReviewRepositoryImpl) DeleteWithAggregates(review *models.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", review.ID).Delete(&models.Review{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReviewNotFound
		}

		return recomputeAggregates(tx, review.CaregiverID)
	})
}

func recomputeAggregates(tx *gorm.DB, caregiverID string) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("caregiver_id = ?", caregiverID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.CaregiverProfile{}).
		Where("id = ?", caregiverID).
		Updates(map[string]interface{}{
			"rating":       stats.Avg,
			"review_count": stats.Count,
		}).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Owner").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByBooking(bookingID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByCaregiver(caregiverID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := r.db.Model(&models.Review{}).Where("caregiver_id = ?", caregiverID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Owner").
		Order("created_at DESC").
		Limit(pageSize).Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}
