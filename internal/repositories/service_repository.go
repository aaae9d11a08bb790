package repositories

import (
	"errors"
	"time"

	"pawmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id string) (*models.Service, error)
	FindAll() ([]models.Service, error)
	UpdateFields(serviceID string, fields map[string]interface{}) error
	Delete(serviceID string) error
	CountAll() (int64, error)
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("name ASC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) UpdateFields(serviceID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Service{}).Where("id = ?", serviceID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Delete(serviceID string) error {
	result := r.db.Where("id = ?", serviceID).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
