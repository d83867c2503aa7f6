package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"alafaq/internal/models"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrMissingService       = errors.New("doctor not selected")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidAge           = errors.New("invalid age")
	ErrPastDate             = errors.New("date is in the past")
	ErrDateTooFar           = errors.New("date is beyond the booking window")
)

// Validate runs the ordered rule set against a built record. The first
// failing rule wins; later rules are never evaluated. today is the
// injected reference date for the past-date check.
func Validate(record models.BookingRecord, today time.Time) error {
	if isBlank(record.Name) || isBlank(record.Phone) || isBlank(record.Date) || isBlank(record.Time) {
		return ErrMissingRequiredField
	}

	if record.Kind == models.KindDoctor && isBlank(record.Service) {
		return ErrMissingService
	}

	if !IsValidPhone(record.Phone) {
		return ErrInvalidPhone
	}

	if record.Kind == models.KindAnalysis {
		age, err := strconv.Atoi(strings.TrimSpace(record.Age))
		if err != nil || age < models.MinPatientAge || age > models.MaxPatientAge {
			return ErrInvalidAge
		}
	}

	// The date widget guarantees YYYY-MM-DD; anything else is rejected with
	// the same reason as a past date.
	date, err := record.DateValue()
	if err != nil || !IsFutureOrToday(date, today) {
		return ErrPastDate
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Reason returns a stable label for a pipeline error, used by metrics and
// log fields.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(err, ErrMissingService):
		return "missing_service"
	case errors.Is(err, ErrInvalidPhone):
		return "invalid_phone"
	case errors.Is(err, ErrInvalidAge):
		return "invalid_age"
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrDateTooFar):
		return "date_too_far"
	default:
		return "unknown"
	}
}
