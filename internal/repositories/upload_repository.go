package repositories

import (
	"errors"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(upload *models.Upload) error
	FindByID(id string) (*models.Upload, error)
	FindByUser(userID string) ([]models.Upload, error)
	UpdateStatus(uploadID string, status models.UploadStatus) error
	Delete(uploadID string) error
}

type UploadRepositoryImpl struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &UploadRepositoryImpl{db: db}
}

func (r *UploadRepositoryImpl) Create(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByID(id string) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.First(&upload, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByUser(userID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}

func (r *UploadRepositoryImpl) UpdateStatus(uploadID string, status models.UploadStatus) error {
	result := r.db.Model(&models.Upload{}).Where("id = ?", uploadID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}

func (r *UploadRepositoryImpl) Delete(uploadID string) error {
	result := r.db.Where("id = ?", uploadID).Delete(&models.Upload{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}
