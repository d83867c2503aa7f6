package models

import "time"

const (
	// StatusConfirmed is the only status a booking ever has; there is no
	// workflow beyond creation in this core.
	StatusConfirmed = "confirmed"
)

const (
	// DefaultAlertTTL is how long a transient alert stays visible.
	DefaultAlertTTL = 3 * time.Second

	// DefaultBookingWindowMonths bounds how far ahead a booking may be made.
	DefaultBookingWindowMonths = 3

	// MinPatientAge and MaxPatientAge bound the age accepted for analysis
	// bookings, inclusive.
	MinPatientAge = 1
	MaxPatientAge = 150

	// MirrorQueueSize is the buffer of the admin-mirror worker queue.
	MirrorQueueSize = 128
)
