package models

import "time"

// Kind discriminates the two booking forms the clinic site offers.
type Kind string

const (
	KindAnalysis Kind = "analysis"
	KindDoctor   Kind = "doctor"
)

// BookingRecord is the unit persisted in the booking journal. It is built
// from raw form values, validated, and then never mutated again. Age keeps
// the raw form string; the validation pipeline parses it.
type BookingRecord struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Age       string    `json:"age,omitempty"`
	Kind      Kind      `json:"kind"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateValue parses the booking date (YYYY-MM-DD, as the date widget emits).
func (r BookingRecord) DateValue() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}
