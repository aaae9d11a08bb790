package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResponse struct {
	Caregivers []struct {
		ID         string  `json:"id"`
		DistanceKM float64 `json:"distance_km"`
	} `json:"caregivers"`
	Total int `json:"total"`
}

func searchCaregivers(t *testing.T, ts *helpers.TestServer, query string) searchResponse {
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/search/caregivers?"+query, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var resp searchResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp
}

func (r searchResponse) contains(id string) bool {
	for _, c := range r.Caregivers {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Anchor the scenario far from the origin so caregivers created by other
// tests (which carry no coordinates) never leak into the results.
const (
	searchLat = 59.9343
	searchLng = 30.3351
)

func TestSearch_FiltersByRadiusAndSortsByDistance(t *testing.T) {
	ts := GetTestServer(t)

	// ~0 km, ~11 km and ~111 km north of the search point.
	_, _, near := helpers.CreateAndLoginCaregiver(t, ts, searchLat, searchLng, 50)
	_, _, mid := helpers.CreateAndLoginCaregiver(t, ts, searchLat+0.1, searchLng, 50)
	_, _, far := helpers.CreateAndLoginCaregiver(t, ts, searchLat+1.0, searchLng, 50)

	resp := searchCaregivers(t, ts, fmt.Sprintf("lat=%f&lng=%f&radius_km=30", searchLat, searchLng))

	assert.True(t, resp.contains(near.ID))
	assert.True(t, resp.contains(mid.ID))
	assert.False(t, resp.contains(far.ID), "Caregiver 111 km away must not match a 30 km search")

	for i := 1; i < len(resp.Caregivers); i++ {
		assert.LessOrEqual(t, resp.Caregivers[i-1].DistanceKM, resp.Caregivers[i].DistanceKM, "Results must be sorted nearest first")
	}
}

// A caregiver whose own service radius is smaller than their distance to the
// owner must be excluded even when the search radius would reach them.
func TestSearch_RespectsCaregiverCoverage(t *testing.T) {
	ts := GetTestServer(t)

	// ~11 km away with only 5 km of coverage.
	_, _, limited := helpers.CreateAndLoginCaregiver(t, ts, searchLat-0.1, searchLng, 5)
	// Same spot, zero radius means unlimited coverage.
	_, _, unlimited := helpers.CreateAndLoginCaregiver(t, ts, searchLat-0.1, searchLng, 0)

	resp := searchCaregivers(t, ts, fmt.Sprintf("lat=%f&lng=%f&radius_km=50", searchLat, searchLng))

	assert.False(t, resp.contains(limited.ID))
	assert.True(t, resp.contains(unlimited.ID))
}

func TestSearch_FilterByServiceAndWeekday(t *testing.T) {
	ts := GetTestServer(t)

	walkService := CreateTestService(t, ts.DB, 30, 240)

	token, _, matching := helpers.CreateAndLoginCaregiver(t, ts, searchLat, searchLng+0.05, 50)
	CreateTestRate(t, ts.DB, matching.ID, walkService.ID, 12.00)
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/caregivers/me/availability", token, map[string]interface{}{
		"slots": []map[string]interface{}{
			{"weekday": 2, "start_time": "09:00", "end_time": "17:00"},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Nearby but offers no rate for the service and works no Tuesdays.
	_, _, other := helpers.CreateAndLoginCaregiver(t, ts, searchLat, searchLng+0.06, 50)

	base := fmt.Sprintf("lat=%f&lng=%f&radius_km=30", searchLat, searchLng)

	resp := searchCaregivers(t, ts, base+"&service_id="+walkService.ID)
	assert.True(t, resp.contains(matching.ID))
	assert.False(t, resp.contains(other.ID), "Caregivers without a rate for the service must be filtered out")

	resp = searchCaregivers(t, ts, base+"&weekday=2")
	assert.True(t, resp.contains(matching.ID))
	assert.False(t, resp.contains(other.ID), "Caregivers with no Tuesday slot must be filtered out")

	resp = searchCaregivers(t, ts, base+"&weekday=6")
	assert.False(t, resp.contains(matching.ID))
}

func TestSearch_RejectsBadCoordinates(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/search/caregivers?lat=95&lng=30", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/search/caregivers?lat=59&lng=-200", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
