package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingRecordAnalysis(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	form := BookingForm{
		PatientName:  "أحمد محمد",
		PatientPhone: "01012345678",
		PatientAge:   "30",
		BookingDate:  "2025-09-10",
		BookingTime:  "09:30",
		AnalysisType: "blood",
		DoctorSelect: "ignored",
		Notes:        "صائم",
		Symptoms:     "ignored",
	}

	record := NewBookingRecord(form, KindAnalysis, now)

	assert.Equal(t, "أحمد محمد", record.Name)
	assert.Equal(t, "01012345678", record.Phone)
	assert.Equal(t, "30", record.Age)
	assert.Equal(t, KindAnalysis, record.Kind)
	assert.Equal(t, "2025-09-10", record.Date)
	assert.Equal(t, "09:30", record.Time)
	assert.Equal(t, "blood", record.Service)
	assert.Equal(t, "صائم", record.Notes)
	assert.Equal(t, StatusConfirmed, record.Status)
	assert.Equal(t, now, record.CreatedAt)
}

func TestNewBookingRecordDoctor(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	form := BookingForm{
		PatientName:  "سارة علي",
		PatientPhone: "01112345678",
		BookingDate:  "2025-09-12",
		BookingTime:  "17:00",
		AnalysisType: "ignored",
		DoctorSelect: "د. أحمد محمود",
		Notes:        "ignored",
		Symptoms:     "صداع مستمر",
	}

	record := NewBookingRecord(form, KindDoctor, now)

	assert.Equal(t, KindDoctor, record.Kind)
	assert.Equal(t, "د. أحمد محمود", record.Service)
	assert.Equal(t, "صداع مستمر", record.Notes)
	assert.Empty(t, record.Age)
}

func TestDateValue(t *testing.T) {
	record := BookingRecord{Date: "2025-09-10"}
	date, err := record.DateValue()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), date)

	record.Date = "10/09/2025"
	_, err = record.DateValue()
	assert.Error(t, err)
}

func TestAnalysisDisplayName(t *testing.T) {
	assert.Equal(t, "تحليل الدم", AnalysisDisplayName("blood"))
	assert.Equal(t, "تحليل الهرمونات", AnalysisDisplayName("hormones"))
	assert.Equal(t, "unknown-code", AnalysisDisplayName("unknown-code"))
}
