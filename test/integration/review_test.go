package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"pawmatch_backend/internal/models"
	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBookingInStatus inserts a booking for a fresh owner/caregiver pair
// directly in the given status, bypassing the transition flow.
func seedBookingInStatus(t *testing.T, ts *helpers.TestServer, status models.BookingStatus) (ownerToken string, owner *models.User, profile *models.CaregiverProfile, booking models.Booking) {
	ownerToken, owner = helpers.CreateAndLoginOwner(t, ts)
	_, _, profile = helpers.CreateAndLoginCaregiver(t, ts, 0, 0, 0)
	pet := CreateTestPet(t, ts.DB, owner.ID, "Reviewee")
	service := CreateTestService(t, ts.DB, 30, 1440)

	start := time.Now().Add(-48 * time.Hour)
	booking = CreateTestBooking(t, ts.DB, owner.ID, profile.ID, pet.ID, service.ID, start, start.Add(2*time.Hour), status)
	return ownerToken, owner, profile, booking
}

func TestReview_OnlyCompletedBookings(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _, _, booking := seedBookingInStatus(t, ts, models.BookingStatusScheduled)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating":  5,
		"comment": "Too early to tell",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Only completed bookings can be reviewed")
}

func TestReview_CreateUpdatesAggregates(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _, profile, booking := seedBookingInStatus(t, ts, models.BookingStatusCompleted)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating":  4,
		"comment": "Great walk, slightly late",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var review struct {
		ID     string `json:"id"`
		Rating int    `json:"rating"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &review))
	assert.Equal(t, 4, review.Rating)

	var dbProfile models.CaregiverProfile
	require.NoError(t, ts.DB.First(&dbProfile, "id = ?", profile.ID).Error)
	assert.Equal(t, 4.0, dbProfile.Rating)
	assert.Equal(t, 1, dbProfile.ReviewCount)

	// One review per booking.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestReview_AverageAcrossBookings(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, owner, profile, first := seedBookingInStatus(t, ts, models.BookingStatusCompleted)

	pet := CreateTestPet(t, ts.DB, owner.ID, "Second")
	start := time.Now().Add(-24 * time.Hour)
	second := CreateTestBooking(t, ts.DB, owner.ID, profile.ID, pet.ID, first.ServiceID, start, start.Add(time.Hour), models.BookingStatusCompleted)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+first.ID+"/review", ownerToken, map[string]interface{}{"rating": 5})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+second.ID+"/review", ownerToken, map[string]interface{}{"rating": 2})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var dbProfile models.CaregiverProfile
	require.NoError(t, ts.DB.First(&dbProfile, "id = ?", profile.ID).Error)
	assert.Equal(t, 3.5, dbProfile.Rating)
	assert.Equal(t, 2, dbProfile.ReviewCount)

	// Public listing for the caregiver returns both reviews.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/caregivers/"+profile.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var list struct {
		Reviews []struct {
			Rating int `json:"rating"`
		} `json:"reviews"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Reviews, 2)
}

func TestReview_OnlyBookingOwnerCanReview(t *testing.T) {
	ts := GetTestServer(t)
	_, _, _, booking := seedBookingInStatus(t, ts, models.BookingStatusCompleted)

	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", strangerToken, map[string]interface{}{
		"rating": 1,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestReview_RejectsOutOfRangeRating(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _, _, booking := seedBookingInStatus(t, ts, models.BookingStatusCompleted)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 6,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 0,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReview_DeleteRecomputesAggregates(t *testing.T) {
	ts := GetTestServer(t)
	ownerToken, _, profile, booking := seedBookingInStatus(t, ts, models.BookingStatusCompleted)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 3,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var review struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &review))

	// A stranger may not delete someone else's review.
	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+review.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+review.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var dbProfile models.CaregiverProfile
	require.NoError(t, ts.DB.First(&dbProfile, "id = ?", profile.ID).Error)
	assert.Equal(t, 0.0, dbProfile.Rating)
	assert.Equal(t, 0, dbProfile.ReviewCount)
}
