package services

import (
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

// CatalogService manages the service catalog (dog walking, boarding, ...).
// Reads are public; writes are admin-only, enforced at the routing layer.
type CatalogService interface {
	Create(req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetByID(serviceID string) (*dto.ServiceResponse, error)
	List() ([]*dto.ServiceResponse, error)
	Update(serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(serviceID string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *CatalogServiceImpl) Create(req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	service := &models.Service{
		Name:               req.Name,
		Description:        req.Description,
		MinDurationMinutes: req.MinDurationMinutes,
		MaxDurationMinutes: req.MaxDurationMinutes,
	}
	if service.MinDurationMinutes == 0 {
		service.MinDurationMinutes = 30
	}
	if service.MaxDurationMinutes == 0 {
		service.MaxDurationMinutes = 1440
	}
	if service.MinDurationMinutes > service.MaxDurationMinutes {
		return nil, apperrors.NewBadRequestError("Minimum duration cannot exceed maximum duration")
	}

	if err := s.serviceRepo.Create(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toServiceResponse(service), nil
}

func (s *CatalogServiceImpl) GetByID(serviceID string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toServiceResponse(service), nil
}

func (s *CatalogServiceImpl) List() ([]*dto.ServiceResponse, error) {
	services, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.ServiceResponse, 0, len(services))
	for i := range services {
		resp = append(resp, toServiceResponse(&services[i]))
	}
	return resp, nil
}

func (s *CatalogServiceImpl) Update(serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MinDurationMinutes != nil {
		fields["min_duration_minutes"] = *req.MinDurationMinutes
	}
	if req.MaxDurationMinutes != nil {
		fields["max_duration_minutes"] = *req.MaxDurationMinutes
	}

	if err := s.serviceRepo.UpdateFields(serviceID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(serviceID)
}

func (s *CatalogServiceImpl) Delete(serviceID string) error {
	if err := s.serviceRepo.Delete(serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func toServiceResponse(service *models.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:                 service.ID,
		Name:               service.Name,
		Description:        service.Description,
		MinDurationMinutes: service.MinDurationMinutes,
		MaxDurationMinutes: service.MaxDurationMinutes,
	}
}
