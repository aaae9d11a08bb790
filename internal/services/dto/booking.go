package dto

import (
	"time"

	"pawmatch_backend/internal/models"
)

type CreateBookingRequest struct {
	CaregiverID  string    `json:"caregiver_id" validate:"required,uuid"`
	PetID        string    `json:"pet_id" validate:"required,uuid"`
	ServiceID    string    `json:"service_id" validate:"required,uuid"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	Instructions string    `json:"instructions" validate:"omitempty,max=5000"`
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"booking-status"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	OwnerID      string               `json:"owner_id"`
	CaregiverID  string               `json:"caregiver_id"`
	PetID        string               `json:"pet_id"`
	ServiceID    string               `json:"service_id"`
	StartTime    time.Time            `json:"start_time"`
	EndTime      time.Time            `json:"end_time"`
	Status       models.BookingStatus `json:"status"`
	StatusName   string               `json:"status_name"`
	TotalPrice   float64              `json:"total_price"`
	Instructions string               `json:"instructions,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`

	Pet       *PetResponse              `json:"pet,omitempty"`
	Owner     *UserResponse             `json:"owner,omitempty"`
	Caregiver *CaregiverProfileResponse `json:"caregiver,omitempty"`
	Service   *ServiceResponse          `json:"service,omitempty"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}
