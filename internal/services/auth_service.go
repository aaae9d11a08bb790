package services

import (
	"time"

	"pawmatch_backend/internal/auth"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(req *dto.LogoutRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
}

func NewAuthService(userRepo repositories.UserRepository, caregiverRepo repositories.CaregiverRepository) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleOwner
	}

	// The user row is always inserted as owner; the caretaker role is only
	// granted inside the same transaction that creates the profile, so a
	// caretaker-role user without a profile can never be persisted.
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		City:         req.City,
		Role:         models.UserRoleOwner,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if role == models.UserRoleCaretaker {
		profile := &models.CaregiverProfile{UserID: user.ID}
		if err := s.caregiverRepo.CreateWithRoleFlip(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Role = models.UserRoleCaretaker
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *AuthServiceImpl) Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	if err := s.userRepo.DeleteRefreshToken(stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(req *dto.LogoutRequest) error {
	if err := s.userRepo.DeleteRefreshToken(req.RefreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         toUserResponse(user),
	}, nil
}
