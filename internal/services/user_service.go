package services

import (
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID string) (*dto.UserResponse, error)
	Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateRole(targetID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
	UpdateStatus(targetID string, req *dto.UpdateStatusRequest) (*dto.UserResponse, error)
	Delete(userID string) error
	List(page, pageSize int) (*dto.UserListResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user), nil
}

// Update applies a partial profile update. Only fields present in the request
// reach the database; omitted fields keep their stored values.
func (s *UserServiceImpl) Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}

	if err := s.userRepo.UpdateFields(userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(userID)
}

func (s *UserServiceImpl) UpdateRole(targetID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if target.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateFields(targetID, map[string]interface{}{"role": req.Role}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(targetID)
}

func (s *UserServiceImpl) UpdateStatus(targetID string, req *dto.UpdateStatusRequest) (*dto.UserResponse, error) {
	if err := s.userRepo.UpdateStatus(targetID, req.Status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(targetID)
}

func (s *UserServiceImpl) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) List(page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]*dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}
	return resp, nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}
