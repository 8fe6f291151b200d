package itinerary

import (
	"fmt"
	"math"
	"time"
)

// TripLength returns the trip length in whole days, end date inclusive.
// Partial days round up and the result is never less than 1.
func TripLength(from, to time.Time) int {
	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// TripTitle derives an itinerary title from the destination display name
// and the selected trip date range. Independent of the parsed text; the
// dates come from user selection, not from the generated itinerary.
func TripTitle(destination string, from, to time.Time) string {
	if from.IsZero() || to.IsZero() {
		return fmt.Sprintf("Trip to %s", destination)
	}
	length := TripLength(from, to)
	if length == 1 {
		return fmt.Sprintf("1 Day in %s", destination)
	}
	return fmt.Sprintf("%d Days in %s", length, destination)
}
