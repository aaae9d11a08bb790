package dto

import "time"

type BecomeCaretakerRequest struct {
	Experience      int     `json:"experience" validate:"omitempty,min=0,max=80"`
	Description     string  `json:"description" validate:"omitempty,max=5000"`
	ServiceRadiusKM float64 `json:"service_radius_km" validate:"omitempty,min=0,max=500"`
}

// UpdateCaregiverProfileRequest is a patch; nil fields are left unchanged.
type UpdateCaregiverProfileRequest struct {
	Experience      *int     `json:"experience,omitempty" validate:"omitempty,min=0,max=80"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	ServiceRadiusKM *float64 `json:"service_radius_km,omitempty" validate:"omitempty,min=0,max=500"`
}

type RateInput struct {
	ServiceID           string  `json:"service_id" validate:"required,uuid"`
	BasePrice           float64 `json:"base_price" validate:"required,gt=0"`
	AdditionalHourPrice float64 `json:"additional_hour_price" validate:"omitempty,min=0"`
}

type UpsertRatesRequest struct {
	Rates []RateInput `json:"rates" validate:"required,min=1,dive"`
}

type AvailabilitySlotInput struct {
	Weekday   int    `json:"weekday" validate:"weekday"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
	EndTime   string `json:"end_time" validate:"required,timeofday"`
}

type ReplaceAvailabilityRequest struct {
	Slots []AvailabilitySlotInput `json:"slots" validate:"dive"`
}

type RateResponse struct {
	ServiceID           string  `json:"service_id"`
	ServiceName         string  `json:"service_name,omitempty"`
	BasePrice           float64 `json:"base_price"`
	AdditionalHourPrice float64 `json:"additional_hour_price"`
}

type AvailabilitySlotResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CaregiverProfileResponse struct {
	ID              string                     `json:"id"`
	UserID          string                     `json:"user_id"`
	Name            string                     `json:"name,omitempty"`
	Phone           string                     `json:"phone,omitempty"`
	City            string                     `json:"city,omitempty"`
	Experience      int                        `json:"experience"`
	Description     string                     `json:"description,omitempty"`
	ServiceRadiusKM float64                    `json:"service_radius_km"`
	IsVerified      bool                       `json:"is_verified"`
	VerifiedAt      *time.Time                 `json:"verified_at,omitempty"`
	Rating          float64                    `json:"rating"`
	ReviewCount     int                        `json:"review_count"`
	Rates           []RateResponse             `json:"rates,omitempty"`
	Availability    []AvailabilitySlotResponse `json:"availability,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
}
