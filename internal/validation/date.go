package validation

import "time"

// IsFutureOrToday reports whether date falls on today's calendar date or
// later. Time-of-day components on either side are ignored.
func IsFutureOrToday(date, today time.Time) bool {
	return !truncateToDay(date).Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
