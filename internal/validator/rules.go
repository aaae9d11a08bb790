package validator

import (
	"log"
	"regexp"

	"pawmatch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// registerCustomRules installs the domain validation tags. Registration
// failure is a startup error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("timeofday", validateTimeOfDay)
	mustRegister("weekday", validateWeekday)
	mustRegister("booking-status", validateBookingStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleOwner, models.UserRoleCaretaker, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

// validateTimeOfDay accepts "HH:MM" 24-hour strings.
func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeOfDayRe.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 0 && day <= 6
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return models.BookingStatus(fl.Field().Int()).Valid()
}
