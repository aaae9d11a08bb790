package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotInput struct {
	Weekday   int    `json:"weekday" validate:"weekday"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
	EndTime   string `json:"end_time" validate:"required,timeofday"`
}

func TestValidate_TimeOfDay(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&slotInput{Weekday: 1, StartTime: "09:00", EndTime: "23:59"}))

	cases := []slotInput{
		{Weekday: 1, StartTime: "25:00", EndTime: "10:00"},
		{Weekday: 1, StartTime: "09:60", EndTime: "10:00"},
		{Weekday: 1, StartTime: "9:00", EndTime: "10:00"},
		{Weekday: 1, StartTime: "morning", EndTime: "10:00"},
	}
	for _, c := range cases {
		err := v.Validate(&c)
		require.Error(t, err, "start_time %q must be rejected", c.StartTime)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "start_time", "Errors must be keyed by json tag")
	}
}

func TestValidate_Weekday(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&slotInput{Weekday: 0, StartTime: "08:00", EndTime: "09:00"}))
	assert.NoError(t, v.Validate(&slotInput{Weekday: 6, StartTime: "08:00", EndTime: "09:00"}))
	assert.Error(t, v.Validate(&slotInput{Weekday: 7, StartTime: "08:00", EndTime: "09:00"}))
	assert.Error(t, v.Validate(&slotInput{Weekday: -1, StartTime: "08:00", EndTime: "09:00"}))
}

func TestValidate_UserRole(t *testing.T) {
	v := New()

	type roleInput struct {
		Role string `json:"role" validate:"omitempty,is-user-role"`
	}

	assert.NoError(t, v.Validate(&roleInput{Role: "owner"}))
	assert.NoError(t, v.Validate(&roleInput{Role: "caretaker"}))
	assert.NoError(t, v.Validate(&roleInput{Role: ""}))
	assert.Error(t, v.Validate(&roleInput{Role: "superuser"}))
}
