package dto

type SearchCaregiversCriteria struct {
	Latitude  float64 `form:"lat" validate:"min=-90,max=90"`
	Longitude float64 `form:"lng" validate:"min=-180,max=180"`
	RadiusKM  float64 `form:"radius_km" validate:"omitempty,gt=0,max=500"`
	ServiceID string  `form:"service_id" validate:"omitempty,uuid"`
	Weekday   *int    `form:"weekday" validate:"omitempty,weekday"`
	Page      int     `form:"page" validate:"omitempty,min=1"`
	PageSize  int     `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type CaregiverSearchResult struct {
	CaregiverProfileResponse
	DistanceKM float64 `json:"distance_km"`
}

type CaregiverSearchResponse struct {
	Caregivers []*CaregiverSearchResult `json:"caregivers"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
}
