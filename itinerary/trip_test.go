package itinerary

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTripLength(t *testing.T) {
	d := date(2026, time.June, 1)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", d, d, 1},
		{"next day", d, d.AddDate(0, 0, 1), 1},
		{"one week", d, d.AddDate(0, 0, 7), 7},
		{"reversed range clamps", d.AddDate(0, 0, 3), d, 1},
		// Spans just under and just over a calendar day pin the ceil.
		{"23 hour span", d, d.Add(23 * time.Hour), 1},
		{"25 hour span", d, d.Add(25 * time.Hour), 2},
	}

	for _, tc := range tests {
		if got := TripLength(tc.from, tc.to); got != tc.want {
			t.Errorf("%s: TripLength = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTripTitle(t *testing.T) {
	d := date(2026, time.June, 1)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want string
	}{
		{"multi day", d, d.AddDate(0, 0, 5), "5 Days in Lisbon"},
		{"single day", d, d, "1 Day in Lisbon"},
		{"no start date", time.Time{}, d, "Trip to Lisbon"},
		{"no end date", d, time.Time{}, "Trip to Lisbon"},
		{"no range at all", time.Time{}, time.Time{}, "Trip to Lisbon"},
	}

	for _, tc := range tests {
		if got := TripTitle("Lisbon", tc.from, tc.to); got != tc.want {
			t.Errorf("%s: TripTitle = %q, want %q", tc.name, got, tc.want)
		}
	}
}
