package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"alafaq/internal/models"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

var arabicWeekdays = [...]string{
	"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

// FormatDate renders an ISO date as an Arabic long date, e.g.
// "الإثنين، 1 سبتمبر 2025". Values that do not parse pass through raw.
func FormatDate(value string) string {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s، %d %s %d",
		arabicWeekdays[int(d.Weekday())], d.Day(), arabicMonths[int(d.Month())-1], d.Year())
}

// FormatTime renders a 24-hour HH:MM value with the Arabic day-period
// suffix: صباحاً before noon, ظهراً at noon, مساءً after.
func FormatTime(value string) string {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return value
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return value
	}
	minutes := parts[1]

	switch {
	case hour < 12:
		return fmt.Sprintf("%d:%s صباحاً", hour, minutes)
	case hour == 12:
		return fmt.Sprintf("%d:%s ظهراً", hour, minutes)
	default:
		return fmt.Sprintf("%d:%s مساءً", hour-12, minutes)
	}
}

// ServiceDisplayName resolves an analysis code to its catalog display name;
// doctor names pass through unchanged.
func ServiceDisplayName(kind models.Kind, service string) string {
	if kind == models.KindAnalysis {
		return models.AnalysisDisplayName(service)
	}
	return service
}
