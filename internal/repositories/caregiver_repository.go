package repositories

import (
	"errors"
	"time"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCaregiverNotFound = errors.New("caregiver profile not found")
	ErrProfileExists     = errors.New("caregiver profile already exists")
	ErrRateNotFound      = errors.New("caregiver rate not found")
)

type CaregiverRepository interface {
	// Profile operations
	CreateWithRoleFlip(profile *models.CaregiverProfile) error
	FindByID(id string) (*models.CaregiverProfile, error)
	FindByUserID(userID string) (*models.CaregiverProfile, error)
	UpdateFields(profileID string, fields map[string]interface{}) error
	Verify(profileID string) error
	FindVerified() ([]models.CaregiverProfile, error)

	// Rate operations
	UpsertRates(caregiverID string, rates []models.CaregiverRate) error
	FindRates(caregiverID string) ([]models.CaregiverRate, error)
	FindRate(caregiverID, serviceID string) (*models.CaregiverRate, error)

	// Availability operations
	ReplaceAvailability(caregiverID string, slots []models.CaregiverAvailability) error
	FindAvailability(caregiverID string) ([]models.CaregiverAvailability, error)
}

type CaregiverRepositoryImpl struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &CaregiverRepositoryImpl{db: db}
}

// CreateWithRoleFlip creates the profile and flips the user role to caretaker
// in one transaction, so the "profile exists iff role is caretaker" invariant
// cannot be half-applied by a crash between the two writes.
func (r *CaregiverRepositoryImpl) CreateWithRoleFlip(profile *models.CaregiverProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CaregiverProfile
		if err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
			return ErrProfileExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		result := tx.Model(&models.User{}).Where("id = ?", profile.UserID).Updates(map[string]interface{}{
			"role":       models.UserRoleCaretaker,
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *CaregiverRepositoryImpl) FindByID(id string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := r.db.Preload("User").Preload("Rates.Service").Preload("Availability").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) FindByUserID(userID string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := r.db.Preload("Rates.Service").Preload("Availability").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) UpdateFields(profileID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.CaregiverProfile{}).Where("id = ?", profileID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaregiverNotFound
	}
	return nil
}

func (r *CaregiverRepositoryImpl) Verify(profileID string) error {
	now := time.Now()
	return r.UpdateFields(profileID, map[string]interface{}{
		"is_verified": true,
		"verified_at": &now,
	})
}

func (r *CaregiverRepositoryImpl) FindVerified() ([]models.CaregiverProfile, error) {
	var profiles []models.CaregiverProfile
	err := r.db.Preload("User").Preload("Rates.Service").Preload("Availability").
		Where("is_verified = ?", true).Find(&profiles).Error
	return profiles, err
}

// Rate operations

// UpsertRates inserts or overwrites pricing per (caregiver_id, service_id).
// Re-applying the same list leaves the stored state unchanged.
func (r *CaregiverRepositoryImpl) UpsertRates(caregiverID string, rates []models.CaregiverRate) error {
	if len(rates) == 0 {
		return nil
	}

	for i := range rates {
		rates[i].CaregiverID = caregiverID
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "caregiver_id"}, {Name: "service_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"base_price", "additional_hour_price", "updated_at",
		}),
	}).Create(&rates).Error
}

func (r *CaregiverRepositoryImpl) FindRates(caregiverID string) ([]models.CaregiverRate, error) {
	var rates []models.CaregiverRate
	err := r.db.Preload("Service").Where("caregiver_id = ?", caregiverID).Find(&rates).Error
	return rates, err
}

func (r *CaregiverRepositoryImpl) FindRate(caregiverID, serviceID string) (*models.CaregiverRate, error) {
	var rate models.CaregiverRate
	err := r.db.Where("caregiver_id = ? AND service_id = ?", caregiverID, serviceID).
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Availability operations

// ReplaceAvailability is a full replace: delete-then-insert wrapped in a
// transaction so concurrent callers never observe a half-replaced schedule.
func (r *CaregiverRepositoryImpl) ReplaceAvailability(caregiverID string, slots []models.CaregiverAvailability) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("caregiver_id = ?", caregiverID).
			Delete(&models.CaregiverAvailability{}).Error; err != nil {
			return err
		}

		if len(slots) == 0 {
			return nil
		}

		for i := range slots {
			slots[i].CaregiverID = caregiverID
		}
		return tx.Create(&slots).Error
	})
}

func (r *CaregiverRepositoryImpl) FindAvailability(caregiverID string) ([]models.CaregiverAvailability, error) {
	var slots []models.CaregiverAvailability
	err := r.db.Where("caregiver_id = ?", caregiverID).
		Order("weekday ASC, start_time ASC").Find(&slots).Error
	return slots, err
}
