package dto

import (
	"time"

	"pawmatch_backend/internal/models"
)

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone,omitempty"`
	Address   string            `json:"address,omitempty"`
	City      string            `json:"city,omitempty"`
	Latitude  float64           `json:"latitude,omitempty"`
	Longitude float64           `json:"longitude,omitempty"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// UpdateUserRequest is a patch: nil means "leave unchanged", a present
// zero value is applied.
type UpdateUserRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,e164"`
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

type UpdateRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,oneof=owner caretaker"`
}

type UpdateStatusRequest struct {
	Status models.UserStatus `json:"status" validate:"required,oneof=pending active suspended"`
}

type UserListResponse struct {
	Users    []*UserResponse `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
