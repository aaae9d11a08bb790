package services

import (
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

type CaregiverService interface {
	BecomeCaretaker(userID string, req *dto.BecomeCaretakerRequest) (*dto.CaregiverProfileResponse, error)
	GetProfile(profileID string) (*dto.CaregiverProfileResponse, error)
	GetMyProfile(userID string) (*dto.CaregiverProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error)
	Verify(profileID string) (*dto.CaregiverProfileResponse, error)

	UpsertRates(userID string, req *dto.UpsertRatesRequest) ([]dto.RateResponse, error)
	GetRates(profileID string) ([]dto.RateResponse, error)

	ReplaceAvailability(userID string, req *dto.ReplaceAvailabilityRequest) ([]dto.AvailabilitySlotResponse, error)
	GetAvailability(profileID string) ([]dto.AvailabilitySlotResponse, error)
}

type CaregiverServiceImpl struct {
	caregiverRepo repositories.CaregiverRepository
	serviceRepo   repositories.ServiceRepository
}

func NewCaregiverService(
	caregiverRepo repositories.CaregiverRepository,
	serviceRepo repositories.ServiceRepository,
) CaregiverService {
	return &CaregiverServiceImpl{
		caregiverRepo: caregiverRepo,
		serviceRepo:   serviceRepo,
	}
}

// BecomeCaretaker creates the caregiver profile and switches the user's role
// in one transaction.
func (s *CaregiverServiceImpl) BecomeCaretaker(userID string, req *dto.BecomeCaretakerRequest) (*dto.CaregiverProfileResponse, error) {
	profile := &models.CaregiverProfile{
		UserID:          userID,
		Experience:      req.Experience,
		Description:     req.Description,
		ServiceRadiusKM: req.ServiceRadiusKM,
	}

	if err := s.caregiverRepo.CreateWithRoleFlip(profile); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProfileExists):
			return nil, apperrors.ErrCaregiverProfileExists
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetProfile(profile.ID)
}

func (s *CaregiverServiceImpl) GetProfile(profileID string) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.caregiverRepo.FindByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toCaregiverProfileResponse(profile), nil
}

func (s *CaregiverServiceImpl) GetMyProfile(userID string) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.findByUser(userID)
	if err != nil {
		return nil, err
	}
	return toCaregiverProfileResponse(profile), nil
}

func (s *CaregiverServiceImpl) UpdateProfile(userID string, req *dto.UpdateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.findByUser(userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ServiceRadiusKM != nil {
		fields["service_radius_km"] = *req.ServiceRadiusKM
	}

	if err := s.caregiverRepo.UpdateFields(profile.ID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(profile.ID)
}

func (s *CaregiverServiceImpl) Verify(profileID string) (*dto.CaregiverProfileResponse, error) {
	if err := s.caregiverRepo.Verify(profileID); err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetProfile(profileID)
}

// UpsertRates writes the caregiver's pricing for the given services. The same
// request applied twice leaves identical state.
func (s *CaregiverServiceImpl) UpsertRates(userID string, req *dto.UpsertRatesRequest) ([]dto.RateResponse, error) {
	profile, err := s.findByUser(userID)
	if err != nil {
		return nil, err
	}

	rates := make([]models.CaregiverRate, 0, len(req.Rates))
	for _, r := range req.Rates {
		if _, err := s.serviceRepo.FindByID(r.ServiceID); err != nil {
			if apperrors.Is(err, repositories.ErrServiceNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		rates = append(rates, models.CaregiverRate{
			ServiceID:           r.ServiceID,
			BasePrice:           r.BasePrice,
			AdditionalHourPrice: r.AdditionalHourPrice,
		})
	}

	if err := s.caregiverRepo.UpsertRates(profile.ID, rates); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetRates(profile.ID)
}

func (s *CaregiverServiceImpl) GetRates(profileID string) ([]dto.RateResponse, error) {
	rates, err := s.caregiverRepo.FindRates(profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRateResponses(rates), nil
}

// ReplaceAvailability swaps the entire weekly schedule. Slots must be
// well-formed (start before end) and not overlap within a weekday.
func (s *CaregiverServiceImpl) ReplaceAvailability(userID string, req *dto.ReplaceAvailabilityRequest) ([]dto.AvailabilitySlotResponse, error) {
	profile, err := s.findByUser(userID)
	if err != nil {
		return nil, err
	}

	slots := make([]models.CaregiverAvailability, 0, len(req.Slots))
	for _, in := range req.Slots {
		if in.StartTime >= in.EndTime {
			return nil, apperrors.NewBadRequestError("Availability slot start time must be before end time")
		}
		slots = append(slots, models.CaregiverAvailability{
			Weekday:   in.Weekday,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	// HH:MM strings compare correctly as strings.
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Weekday != slots[j].Weekday {
				continue
			}
			if slots[i].StartTime < slots[j].EndTime && slots[j].StartTime < slots[i].EndTime {
				return nil, apperrors.ErrConflict(nil, "caregiver", "Availability slots overlap")
			}
		}
	}

	if err := s.caregiverRepo.ReplaceAvailability(profile.ID, slots); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetAvailability(profile.ID)
}

func (s *CaregiverServiceImpl) GetAvailability(profileID string) ([]dto.AvailabilitySlotResponse, error) {
	slots, err := s.caregiverRepo.FindAvailability(profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toAvailabilityResponses(slots), nil
}

func (s *CaregiverServiceImpl) findByUser(userID string) (*models.CaregiverProfile, error) {
	profile, err := s.caregiverRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func toRateResponses(rates []models.CaregiverRate) []dto.RateResponse {
	resp := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		resp = append(resp, dto.RateResponse{
			ServiceID:           r.ServiceID,
			ServiceName:         r.Service.Name,
			BasePrice:           r.BasePrice,
			AdditionalHourPrice: r.AdditionalHourPrice,
		})
	}
	return resp
}

func toAvailabilityResponses(slots []models.CaregiverAvailability) []dto.AvailabilitySlotResponse {
	resp := make([]dto.AvailabilitySlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.AvailabilitySlotResponse{
			Weekday:   s.Weekday,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return resp
}

func toCaregiverProfileResponse(p *models.CaregiverProfile) *dto.CaregiverProfileResponse {
	resp := &dto.CaregiverProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Experience:      p.Experience,
		Description:     p.Description,
		ServiceRadiusKM: p.ServiceRadiusKM,
		IsVerified:      p.IsVerified,
		VerifiedAt:      p.VerifiedAt,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Rates:           toRateResponses(p.Rates),
		Availability:    toAvailabilityResponses(p.Availability),
		CreatedAt:       p.CreatedAt,
	}

	if p.User.ID != "" {
		resp.Name = p.User.Name
		resp.Phone = p.User.Phone
		resp.City = p.User.City
	}

	return resp
}
