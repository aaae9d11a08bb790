package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"pawmatch_backend/internal/models"
	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("register_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "New Owner",
		"role":     "owner",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, email, resp.User.Email)
	assert.Equal(t, "owner", resp.User.Role)
}

func TestRegister_AsCaretakerCreatesProfile(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("caretaker_reg_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "New Caretaker",
		"role":     "caretaker",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var resp struct {
		User struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, "caretaker", resp.User.Role)

	var profile models.CaregiverProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", resp.User.ID).Error,
		"Registering as caretaker must create the profile")
	assert.False(t, profile.IsVerified)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "First User",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "Response: "+bodyStr)
}

func TestRegister_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"password": "short",
		"name":     "Weak Password",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginOwner(t, ts)

	body := map[string]interface{}{
		"email":    user.Email,
		"password": "not-the-password",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRefresh_RotatesToken(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("refresh_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "Refresh User",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var registered struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &registered))

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": registered.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken, "Refresh must rotate the token")

	// The consumed token must no longer be accepted.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": registered.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogout_InvalidatesRefreshToken(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("logout_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "Logout User",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var registered struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &registered))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": registered.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": registered.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetMe_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token, user := helpers.CreateAndLoginOwner(t, ts)
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)
}
