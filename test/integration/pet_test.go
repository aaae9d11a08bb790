package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPet_CreateAndList(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginOwner(t, ts)

	body := map[string]interface{}{
		"name":              "Rex",
		"species":           "dog",
		"breed":             "labrador",
		"age":               3,
		"weight":            28.5,
		"care_instructions": "Two walks a day",
		"images":            []string{"uploads/u1/rex.jpg"},
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/pets", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var pet struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		IsActive bool     `json:"is_active"`
		Images   []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &pet))
	assert.Equal(t, "Rex", pet.Name)
	assert.True(t, pet.IsActive)
	assert.Equal(t, []string{"uploads/u1/rex.jpg"}, pet.Images)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/pets", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Pets []struct {
			ID string `json:"id"`
		} `json:"pets"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Pets, 1)
	assert.Equal(t, pet.ID, list.Pets[0].ID)
}

// A PATCH with only some fields must leave the omitted fields untouched, and
// a present false value must be applied.
func TestPet_PartialUpdate(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginOwner(t, ts)
	pet := CreateTestPet(t, ts.DB, user.ID, "Luna")

	res, bodyStr := ts.SendRequest(t, http.MethodPatch, "/api/v1/pets/"+pet.ID, token, map[string]interface{}{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated struct {
		Name     string  `json:"name"`
		Breed    string  `json:"breed"`
		Weight   float64 `json:"weight"`
		IsActive bool    `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.False(t, updated.IsActive, "is_active=false must be applied")
	assert.Equal(t, "Luna", updated.Name, "Omitted fields must not change")
	assert.Equal(t, "corgi", updated.Breed)
	assert.Equal(t, 11.5, updated.Weight)
}

func TestPet_UpdateByStrangerForbidden(t *testing.T) {
	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginOwner(t, ts)
	pet := CreateTestPet(t, ts.DB, owner.ID, "Max")

	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/pets/"+pet.ID, strangerToken, map[string]interface{}{
		"name": "Stolen",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/pets/"+pet.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestPet_Delete(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginOwner(t, ts)
	pet := CreateTestPet(t, ts.DB, user.ID, "Bella")

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/pets/"+pet.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/pets/"+pet.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
