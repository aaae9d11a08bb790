package dto

import "time"

type CreatePetRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=100"`
	Species          string   `json:"species" validate:"required"`
	Breed            string   `json:"breed"`
	Age              int      `json:"age" validate:"omitempty,min=0,max=100"`
	Weight           float64  `json:"weight" validate:"omitempty,min=0"`
	CareInstructions string   `json:"care_instructions" validate:"omitempty,max=5000"`
	Images           []string `json:"images"`
}

// UpdatePetRequest distinguishes "field omitted" (nil pointer, unchanged)
// from "field present with a zero value" (applied). is_active=false must
// deactivate the pet.
type UpdatePetRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Species          *string  `json:"species,omitempty"`
	Breed            *string  `json:"breed,omitempty"`
	Age              *int     `json:"age,omitempty" validate:"omitempty,min=0,max=100"`
	Weight           *float64 `json:"weight,omitempty" validate:"omitempty,min=0"`
	CareInstructions *string  `json:"care_instructions,omitempty" validate:"omitempty,max=5000"`
	IsActive         *bool    `json:"is_active,omitempty"`
	Images           []string `json:"images,omitempty"`
}

type PetResponse struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	Species          string    `json:"species"`
	Breed            string    `json:"breed,omitempty"`
	Age              int       `json:"age"`
	Weight           float64   `json:"weight"`
	CareInstructions string    `json:"care_instructions,omitempty"`
	IsActive         bool      `json:"is_active"`
	Images           []string  `json:"images"`
	CreatedAt        time.Time `json:"created_at"`
}
