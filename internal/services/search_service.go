package services

import (
	"math"
	"sort"

	"pawmatch_backend/internal/algorithms"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

const defaultSearchRadiusKM = 25.0

type SearchService interface {
	SearchCaregivers(criteria *dto.SearchCaregiversCriteria) (*dto.CaregiverSearchResponse, error)
}

type SearchServiceImpl struct {
	caregiverRepo repositories.CaregiverRepository
}

func NewSearchService(caregiverRepo repositories.CaregiverRepository) SearchService {
	return &SearchServiceImpl{caregiverRepo: caregiverRepo}
}

// SearchCaregivers finds verified caregivers around a point. Distance uses the
// haversine great-circle formula against the caregiver's stored coordinates;
// a match must fall inside both the search radius and the caregiver's own
// coverage radius. Optional filters narrow to caregivers with a published
// rate for a service and an availability slot on a weekday. Results are
// sorted nearest first.
func (s *SearchServiceImpl) SearchCaregivers(criteria *dto.SearchCaregiversCriteria) (*dto.CaregiverSearchResponse, error) {
	radius := criteria.RadiusKM
	if radius <= 0 {
		radius = defaultSearchRadiusKM
	}
	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	profiles, err := s.caregiverRepo.FindVerified()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]*dto.CaregiverSearchResult, 0)
	for i := range profiles {
		p := &profiles[i]

		// Caregivers without stored coordinates cannot be matched by location.
		if p.User.Latitude == 0 && p.User.Longitude == 0 {
			continue
		}

		distance := algorithms.HaversineKM(
			criteria.Latitude, criteria.Longitude,
			p.User.Latitude, p.User.Longitude,
		)
		if !algorithms.WithinRadius(distance, radius, p.ServiceRadiusKM) {
			continue
		}

		if criteria.ServiceID != "" && !hasRateFor(p.Rates, criteria.ServiceID) {
			continue
		}
		if criteria.Weekday != nil && !hasSlotOn(p.Availability, *criteria.Weekday) {
			continue
		}

		results = append(results, &dto.CaregiverSearchResult{
			CaregiverProfileResponse: *toCaregiverProfileResponse(p),
			DistanceKM:               roundKM(distance),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})

	total := len(results)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &dto.CaregiverSearchResponse{
		Caregivers: results[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func hasRateFor(rates []models.CaregiverRate, serviceID string) bool {
	for _, r := range rates {
		if r.ServiceID == serviceID {
			return true
		}
	}
	return false
}

func hasSlotOn(slots []models.CaregiverAvailability, weekday int) bool {
	for _, slot := range slots {
		if slot.Weekday == weekday {
			return true
		}
	}
	return false
}

func roundKM(distance float64) float64 {
	return math.Round(distance*100) / 100
}
