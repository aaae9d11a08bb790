package dto

type CreateServiceRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=100"`
	Description        string `json:"description" validate:"omitempty,max=2000"`
	MinDurationMinutes int    `json:"min_duration_minutes" validate:"omitempty,min=1"`
	MaxDurationMinutes int    `json:"max_duration_minutes" validate:"omitempty,min=1"`
}

type UpdateServiceRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description        *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	MinDurationMinutes *int    `json:"min_duration_minutes,omitempty" validate:"omitempty,min=1"`
	MaxDurationMinutes *int    `json:"max_duration_minutes,omitempty" validate:"omitempty,min=1"`
}

type ServiceResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	MinDurationMinutes int    `json:"min_duration_minutes"`
	MaxDurationMinutes int    `json:"max_duration_minutes"`
}
