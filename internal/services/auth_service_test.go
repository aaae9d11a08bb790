package services

import (
	"errors"
	"testing"

	"pawmatch_backend/internal/config"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Partial fakes: only the methods Register touches are implemented; any other
// call panics through the embedded nil interface.

type fakeUserRepo struct {
	repositories.UserRepository
	created *models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = "user-1"
	f.created = user
	return nil
}

func (f *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	return nil
}

type fakeCaregiverRepo struct {
	repositories.CaregiverRepository
	flipErr error
	flipped bool
}

func (f *fakeCaregiverRepo) CreateWithRoleFlip(profile *models.CaregiverProfile) error {
	if f.flipErr != nil {
		return f.flipErr
	}
	f.flipped = true
	return nil
}

func testConfig(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "unit-test-secret"
	config.AppConfig.JWT.TTL = 60
	t.Cleanup(func() { config.AppConfig = prev })
}

// The caretaker role must only ever be granted together with the profile row:
// the user row is inserted as owner, and a failed profile create leaves an
// owner without a profile rather than a caretaker without one.
func TestRegister_CaretakerRoleGrantedWithProfileOnly(t *testing.T) {
	testConfig(t)

	userRepo := &fakeUserRepo{}
	caregiverRepo := &fakeCaregiverRepo{flipErr: errors.New("connection reset")}
	svc := NewAuthService(userRepo, caregiverRepo)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "flaky@test.com",
		Password: "password123",
		Name:     "Flaky Caretaker",
		Role:     models.UserRoleCaretaker,
	})
	require.Error(t, err)

	require.NotNil(t, userRepo.created)
	assert.Equal(t, models.UserRoleOwner, userRepo.created.Role,
		"The persisted row must never carry the caretaker role without a profile")
}

func TestRegister_CaretakerFlipHappyPath(t *testing.T) {
	testConfig(t)

	userRepo := &fakeUserRepo{}
	caregiverRepo := &fakeCaregiverRepo{}
	svc := NewAuthService(userRepo, caregiverRepo)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "ok@test.com",
		Password: "password123",
		Name:     "New Caretaker",
		Role:     models.UserRoleCaretaker,
	})
	require.NoError(t, err)

	assert.True(t, caregiverRepo.flipped)
	assert.Equal(t, models.UserRoleCaretaker, resp.User.Role)
}
