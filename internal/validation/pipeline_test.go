package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alafaq/internal/models"
)

var testToday = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func validAnalysisRecord() models.BookingRecord {
	return models.BookingRecord{
		Name:    "أحمد محمد",
		Phone:   "01012345678",
		Age:     "30",
		Kind:    models.KindAnalysis,
		Date:    "2025-09-10",
		Time:    "09:30",
		Service: "blood",
		Status:  models.StatusConfirmed,
	}
}

func validDoctorRecord() models.BookingRecord {
	return models.BookingRecord{
		Name:    "سارة علي",
		Phone:   "01112345678",
		Kind:    models.KindDoctor,
		Date:    "2025-09-10",
		Time:    "17:00",
		Service: "د. أحمد محمود",
		Status:  models.StatusConfirmed,
	}
}

func TestValidateAcceptsWellFormedRecords(t *testing.T) {
	require.NoError(t, Validate(validAnalysisRecord(), testToday))
	require.NoError(t, Validate(validDoctorRecord(), testToday))
}

func TestValidateRequiredFields(t *testing.T) {
	mutations := map[string]func(*models.BookingRecord){
		"empty name":      func(r *models.BookingRecord) { r.Name = "" },
		"whitespace name": func(r *models.BookingRecord) { r.Name = "   " },
		"empty phone":     func(r *models.BookingRecord) { r.Phone = "" },
		"empty date":      func(r *models.BookingRecord) { r.Date = "" },
		"empty time":      func(r *models.BookingRecord) { r.Time = "" },
		"whitespace time": func(r *models.BookingRecord) { r.Time = "\t" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			record := validAnalysisRecord()
			mutate(&record)
			assert.ErrorIs(t, Validate(record, testToday), ErrMissingRequiredField)
		})
	}
}

func TestValidateDoctorService(t *testing.T) {
	record := validDoctorRecord()
	record.Service = ""
	assert.ErrorIs(t, Validate(record, testToday), ErrMissingService)

	// An analysis record with an empty service is not this rule's concern.
	analysis := validAnalysisRecord()
	analysis.Service = ""
	assert.NoError(t, Validate(analysis, testToday))
}

func TestValidatePhone(t *testing.T) {
	record := validAnalysisRecord()
	record.Phone = "0123"
	assert.ErrorIs(t, Validate(record, testToday), ErrInvalidPhone)
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name    string
		age     string
		wantErr error
	}{
		{"minimum", "1", nil},
		{"maximum", "150", nil},
		{"padded", " 42 ", nil},
		{"zero", "0", ErrInvalidAge},
		{"negative", "-3", ErrInvalidAge},
		{"too large", "151", ErrInvalidAge},
		{"not a number", "thirty", ErrInvalidAge},
		{"empty", "", ErrInvalidAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validAnalysisRecord()
			record.Age = tt.age
			err := Validate(record, testToday)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAgeSkippedForDoctorBookings(t *testing.T) {
	record := validDoctorRecord()
	record.Age = "not a number"
	assert.NoError(t, Validate(record, testToday))
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"today", "2025-09-01", nil},
		{"tomorrow", "2025-09-02", nil},
		{"yesterday", "2025-08-31", ErrPastDate},
		{"garbage", "next tuesday", ErrPastDate},
		{"wrong layout", "01/09/2025", ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validAnalysisRecord()
			record.Date = tt.date
			err := Validate(record, testToday)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The first failing rule wins: a record with several defects reports the
// earliest one in pipeline order.
func TestValidateOrder(t *testing.T) {
	record := validAnalysisRecord()
	record.Name = ""
	record.Phone = "bad"
	record.Age = "-1"
	record.Date = "2020-01-01"
	assert.ErrorIs(t, Validate(record, testToday), ErrMissingRequiredField)

	record.Name = "أحمد"
	assert.ErrorIs(t, Validate(record, testToday), ErrInvalidPhone)

	record.Phone = "01012345678"
	assert.ErrorIs(t, Validate(record, testToday), ErrInvalidAge)

	record.Age = "25"
	assert.ErrorIs(t, Validate(record, testToday), ErrPastDate)
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingRequiredField, "missing_required_field"},
		{ErrMissingService, "missing_service"},
		{ErrInvalidPhone, "invalid_phone"},
		{ErrInvalidAge, "invalid_age"},
		{ErrPastDate, "past_date"},
		{ErrDateTooFar, "date_too_far"},
		{assert.AnError, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Reason(tt.err))
	}
}
