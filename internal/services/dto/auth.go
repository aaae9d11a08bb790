package dto

import "pawmatch_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Name     string          `json:"name" validate:"required,min=2"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=owner caretaker"`
	Phone    string          `json:"phone" validate:"omitempty,e164"`
	City     string          `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
