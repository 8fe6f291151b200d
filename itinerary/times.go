package itinerary

import (
	"strings"
	"time"
)

// NormalizeTime converts a time-of-day string in the form "H:MM" or
// "H:MM AM/PM" (case-insensitive, the space before the meridiem optional)
// into a concrete instant on now's calendar date, in now's location.
// Bare "H:MM" values are read as 24-hour time.
func NormalizeTime(raw string, now time.Time) (time.Time, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))

	var parsed time.Time
	var err error
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		parsed, err = time.Parse("3:04PM", strings.ReplaceAll(upper, " ", ""))
	} else {
		parsed, err = time.Parse("15:04", upper)
	}
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}
