package repositories

import (
	"errors"
	"time"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPetNotFound = errors.New("pet not found")

type PetRepository interface {
	Create(pet *models.Pet) error
	FindByID(id string) (*models.Pet, error)
	FindByOwner(ownerID string) ([]models.Pet, error)
	UpdateFields(petID string, fields map[string]interface{}) error
	Delete(petID string) error
}

type PetRepositoryImpl struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &PetRepositoryImpl{db: db}
}

func (r *PetRepositoryImpl) Create(pet *models.Pet) error {
	return r.db.Create(pet).Error
}

func (r *PetRepositoryImpl) FindByID(id string) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepositoryImpl) FindByOwner(ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) UpdateFields(petID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Pet{}).Where("id = ?", petID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) Delete(petID string) error {
	result := r.db.Where("id = ?", petID).Delete(&models.Pet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}
