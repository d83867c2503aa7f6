package models

import "time"

// BookingForm carries raw field values keyed exactly as the booking forms
// name them. Which of the kind-specific fields matter is decided by the
// record builder, not here.
type BookingForm struct {
	PatientName  string
	PatientPhone string
	PatientAge   string
	BookingDate  string
	BookingTime  string
	AnalysisType string
	DoctorSelect string
	Notes        string
	Symptoms     string
}

// NewBookingRecord maps raw form fields to a record for the given kind:
// analysis bookings take their service from the analysis type and notes
// from the notes field, doctor bookings from the doctor selection and the
// symptoms field. Purely structural, no validation happens here.
func NewBookingRecord(form BookingForm, kind Kind, now time.Time) BookingRecord {
	record := BookingRecord{
		Name:      form.PatientName,
		Phone:     form.PatientPhone,
		Age:       form.PatientAge,
		Kind:      kind,
		Date:      form.BookingDate,
		Time:      form.BookingTime,
		Status:    StatusConfirmed,
		CreatedAt: now,
	}

	switch kind {
	case KindDoctor:
		record.Service = form.DoctorSelect
		record.Notes = form.Symptoms
	default:
		record.Service = form.AnalysisType
		record.Notes = form.Notes
	}

	return record
}
