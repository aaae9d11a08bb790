package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"pawmatch_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the raw password first.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user.PasswordHash = string(hashedPassword)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", user.Email, err)
	}
}

// CreateAndLoginUser creates a user and logs them in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	CreateUser(t, ts.DB, user, password)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Failed to parse login response")
	assert.NotEmpty(t, loginResponse.Token, "Access token must not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginOwner creates a pet owner with a unique email.
func CreateAndLoginOwner(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Owner", email, "password123", models.UserRoleOwner)
}

// CreateAndLoginCaregiver creates a caretaker with a verified caregiver
// profile at the given coordinates.
func CreateAndLoginCaregiver(t *testing.T, ts *TestServer, lat, lng, radiusKM float64) (string, *models.User, *models.CaregiverProfile) {
	email := fmt.Sprintf("caregiver_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Caregiver", email, "password123", models.UserRoleCaretaker)

	if lat != 0 || lng != 0 {
		err := ts.DB.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{"latitude": lat, "longitude": lng}).Error
		assert.NoError(t, err, "Failed to set caregiver coordinates")
	}

	now := time.Now()
	profile := &models.CaregiverProfile{
		UserID:          user.ID,
		Experience:      3,
		Description:     "Experienced with dogs and cats",
		ServiceRadiusKM: radiusKM,
		IsVerified:      true,
		VerifiedAt:      &now,
	}
	err := ts.DB.Create(profile).Error
	assert.NoError(t, err, "Failed to create caregiver profile")

	return token, user, profile
}

// CreateAndLoginAdmin creates an admin user with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin)
}
