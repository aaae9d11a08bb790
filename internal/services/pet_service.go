package services

import (
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PetService interface {
	Create(ownerID string, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetByID(callerID string, callerRole models.UserRole, petID string) (*dto.PetResponse, error)
	ListByOwner(ownerID string) ([]*dto.PetResponse, error)
	Update(callerID, petID string, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(callerID, petID string) error
}

type PetServiceImpl struct {
	petRepo repositories.PetRepository
}

func NewPetService(petRepo repositories.PetRepository) PetService {
	return &PetServiceImpl{petRepo: petRepo}
}

func (s *PetServiceImpl) Create(ownerID string, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	pet := &models.Pet{
		OwnerID:          ownerID,
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		Weight:           req.Weight,
		CareInstructions: req.CareInstructions,
		IsActive:         true,
	}
	if len(req.Images) > 0 {
		pet.SetImages(req.Images)
	}

	if err := s.petRepo.Create(pet); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return toPetResponse(pet), nil
}

func (s *PetServiceImpl) GetByID(callerID string, callerRole models.UserRole, petID string) (*dto.PetResponse, error) {
	pet, err := s.findOwnedOrPrivileged(callerID, callerRole, petID)
	if err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

func (s *PetServiceImpl) ListByOwner(ownerID string) ([]*dto.PetResponse, error) {
	pets, err := s.petRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.PetResponse, 0, len(pets))
	for i := range pets {
		resp = append(resp, toPetResponse(&pets[i]))
	}
	return resp, nil
}

// Update enforces ownership before writing: only the pet's owner may change it.
func (s *PetServiceImpl) Update(callerID, petID string, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := s.findOwned(callerID, petID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Species != nil {
		fields["species"] = *req.Species
	}
	if req.Breed != nil {
		fields["breed"] = *req.Breed
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.CareInstructions != nil {
		fields["care_instructions"] = *req.CareInstructions
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Images != nil {
		tmp := models.Pet{}
		tmp.SetImages(req.Images)
		fields["images"] = datatypes.JSON(tmp.Images)
	}

	if err := s.petRepo.UpdateFields(pet.ID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.petRepo.FindByID(pet.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPetResponse(updated), nil
}

func (s *PetServiceImpl) Delete(callerID, petID string) error {
	if _, err := s.findOwned(callerID, petID); err != nil {
		return err
	}

	if err := s.petRepo.Delete(petID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PetServiceImpl) findOwned(callerID, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(petID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if pet.OwnerID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return pet, nil
}

func (s *PetServiceImpl) findOwnedOrPrivileged(callerID string, callerRole models.UserRole, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(petID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if pet.OwnerID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return pet, nil
}

func toPetResponse(pet *models.Pet) *dto.PetResponse {
	return &dto.PetResponse{
		ID:               pet.ID,
		OwnerID:          pet.OwnerID,
		Name:             pet.Name,
		Species:          pet.Species,
		Breed:            pet.Breed,
		Age:              pet.Age,
		Weight:           pet.Weight,
		CareInstructions: pet.CareInstructions,
		IsActive:         pet.IsActive,
		Images:           pet.GetImages(),
		CreatedAt:        pet.CreatedAt,
	}
}
