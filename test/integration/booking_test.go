package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingFixture wires up an owner with a pet and a verified caregiver with a
// published rate, ready to book.
type bookingFixture struct {
	ownerToken     string
	owner          *models.User
	caregiverToken string
	profile        *models.CaregiverProfile
	pet            models.Pet
	service        models.Service
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	caregiverToken, _, profile := helpers.CreateAndLoginCaregiver(t, ts, 0, 0, 0)
	pet := CreateTestPet(t, ts.DB, owner.ID, "Charlie")
	service := CreateTestService(t, ts.DB, 30, 1440)
	CreateTestRate(t, ts.DB, profile.ID, service.ID, 10.00)

	return &bookingFixture{
		ownerToken:     ownerToken,
		owner:          owner,
		caregiverToken: caregiverToken,
		profile:        profile,
		pet:            pet,
		service:        service,
	}
}

func (f *bookingFixture) createBooking(t *testing.T, ts *helpers.TestServer, start, end time.Time) (*http.Response, string) {
	return ts.SendRequest(t, http.MethodPost, "/api/v1/bookings", f.ownerToken, map[string]interface{}{
		"caregiver_id": f.profile.ID,
		"pet_id":       f.pet.ID,
		"service_id":   f.service.ID,
		"start_time":   start.Format(time.RFC3339),
		"end_time":     end.Format(time.RFC3339),
		"instructions": "Keys under the mat",
	})
}

func TestBooking_CreateComputesPrice(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	end := start.Add(3 * time.Hour)

	res, bodyStr := f.createBooking(t, ts, start, end)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var booking struct {
		ID         string  `json:"id"`
		Status     int     `json:"status"`
		StatusName string  `json:"status_name"`
		TotalPrice float64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &booking))
	assert.Equal(t, 0, booking.Status)
	assert.Equal(t, "scheduled", booking.StatusName)
	assert.Equal(t, 30.00, booking.TotalPrice, "3 hours at 10.00/h")
}

func TestBooking_RejectsBadTimeRanges(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(24 * time.Hour)

	// end before start
	res, _ := f.createBooking(t, ts, start, start.Add(-time.Hour))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// start in the past
	res, _ = f.createBooking(t, ts, time.Now().Add(-2*time.Hour), time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// below the service minimum duration (30 minutes)
	res, _ = f.createBooking(t, ts, start, start.Add(10*time.Minute))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBooking_OverlapRejected(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	end := start.Add(2 * time.Hour)

	res, _ := f.createBooking(t, ts, start, end)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// Intersecting interval with the same caregiver
	res, _ = f.createBooking(t, ts, start.Add(time.Hour), end.Add(time.Hour))
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Back-to-back is allowed: intervals are half-open.
	res, bodyStr := f.createBooking(t, ts, end, end.Add(time.Hour))
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)
}

func TestBooking_NoRateRejected(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, _, profile := helpers.CreateAndLoginCaregiver(t, ts, 0, 0, 0)
	pet := CreateTestPet(t, ts.DB, owner.ID, "NoRate")
	service := CreateTestService(t, ts.DB, 30, 1440)

	start := time.Now().Add(24 * time.Hour)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings", ownerToken, map[string]interface{}{
		"caregiver_id": profile.ID,
		"pet_id":       pet.ID,
		"service_id":   service.ID,
		"start_time":   start.Format(time.RFC3339),
		"end_time":     start.Add(2 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBooking_StatusTransitions(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(72 * time.Hour).Truncate(time.Minute)
	res, bodyStr := f.createBooking(t, ts, start, start.Add(2*time.Hour))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var booking struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &booking))
	statusPath := "/api/v1/bookings/" + booking.ID + "/status"

	// Owner may not accept a booking, only cancel.
	res, _ = ts.SendRequest(t, http.MethodPatch, statusPath, f.ownerToken, map[string]interface{}{"status": 1})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Scheduled cannot jump straight to completed.
	res, _ = ts.SendRequest(t, http.MethodPatch, statusPath, f.caregiverToken, map[string]interface{}{"status": 2})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Caregiver accepts.
	res, bodyStr = ts.SendRequest(t, http.MethodPatch, statusPath, f.caregiverToken, map[string]interface{}{"status": 1})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	// Caregiver completes.
	res, _ = ts.SendRequest(t, http.MethodPatch, statusPath, f.caregiverToken, map[string]interface{}{"status": 2})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Terminal states are immutable.
	res, _ = ts.SendRequest(t, http.MethodPatch, statusPath, f.caregiverToken, map[string]interface{}{"status": 3})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestBooking_OwnerCanCancelScheduled(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(96 * time.Hour).Truncate(time.Minute)
	res, bodyStr := f.createBooking(t, ts, start, start.Add(time.Hour))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var booking struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &booking))

	res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/api/v1/bookings/"+booking.ID+"/status", f.ownerToken, map[string]interface{}{"status": 3})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var cancelled struct {
		StatusName string `json:"status_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &cancelled))
	assert.Equal(t, "cancelled", cancelled.StatusName)
}

func TestBooking_StrangerCannotAccess(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(120 * time.Hour).Truncate(time.Minute)
	res, bodyStr := f.createBooking(t, ts, start, start.Add(time.Hour))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var booking struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &booking))

	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/bookings/"+booking.ID+"/status", strangerToken, map[string]interface{}{"status": 3})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// Two writers racing on the same observed status: only the first swap wins,
// the loser must not overwrite the terminal state.
func TestBooking_StatusSwapGuardsConcurrentWriters(t *testing.T) {
	ts := GetTestServer(t)

	_, owner := helpers.CreateAndLoginOwner(t, ts)
	_, _, profile := helpers.CreateAndLoginCaregiver(t, ts, 0, 0, 0)
	pet := CreateTestPet(t, ts.DB, owner.ID, "Raced")
	service := CreateTestService(t, ts.DB, 30, 1440)

	start := time.Now().Add(-2 * time.Hour)
	booking := CreateTestBooking(t, ts.DB, owner.ID, profile.ID, pet.ID, service.ID, start, start.Add(time.Hour), models.BookingStatusActive)

	repo := repositories.NewBookingRepository(ts.DB)
	require.NoError(t, repo.UpdateStatus(booking.ID, models.BookingStatusActive, models.BookingStatusCompleted))

	err := repo.UpdateStatus(booking.ID, models.BookingStatusActive, models.BookingStatusCancelled)
	require.ErrorIs(t, err, repositories.ErrBookingStatusStale)

	var dbBooking models.Booking
	require.NoError(t, ts.DB.First(&dbBooking, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, dbBooking.Status)
}

func TestBooking_ListAssigned(t *testing.T) {
	ts := GetTestServer(t)
	f := newBookingFixture(t)

	start := time.Now().Add(144 * time.Hour).Truncate(time.Minute)
	res, _ := f.createBooking(t, ts, start, start.Add(time.Hour))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/assigned", f.caregiverToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var list struct {
		Bookings []struct {
			CaregiverID string `json:"caregiver_id"`
		} `json:"bookings"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, f.profile.ID, list.Bookings[0].CaregiverID)
}
