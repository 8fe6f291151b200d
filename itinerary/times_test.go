package itinerary

import (
	"testing"
	"time"
)

func TestNormalizeTime(t *testing.T) {
	now := time.Date(2026, time.March, 14, 18, 45, 12, 0, time.UTC)

	tests := []struct {
		raw        string
		wantHour   int
		wantMinute int
	}{
		{"9:00 AM", 9, 0},
		{"9:00AM", 9, 0},
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"1:15 pm", 13, 15},
		{"11:59 PM", 23, 59},
		// Bare H:MM is read as 24-hour time.
		{"10:00", 10, 0},
		{"14:00", 14, 0},
		{"0:05", 0, 5},
	}

	for _, tc := range tests {
		got, err := NormalizeTime(tc.raw, now)
		if err != nil {
			t.Errorf("NormalizeTime(%q): unexpected error: %v", tc.raw, err)
			continue
		}
		if got.Hour() != tc.wantHour || got.Minute() != tc.wantMinute {
			t.Errorf("NormalizeTime(%q) = %02d:%02d, want %02d:%02d",
				tc.raw, got.Hour(), got.Minute(), tc.wantHour, tc.wantMinute)
		}
		if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
			t.Errorf("NormalizeTime(%q) not anchored to now's date: %v", tc.raw, got)
		}
		if got.Second() != 0 || got.Nanosecond() != 0 {
			t.Errorf("NormalizeTime(%q) should zero sub-minute parts: %v", tc.raw, got)
		}
	}
}

func TestNormalizeTime_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, loc)

	got, err := NormalizeTime("9:00 AM", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
	if want := "2026-03-14T09:00:00+09:00"; got.Format(time.RFC3339) != want {
		t.Errorf("expected %q, got %q", want, got.Format(time.RFC3339))
	}
}

func TestNormalizeTime_Malformed(t *testing.T) {
	now := time.Now()
	for _, raw := range []string{"", "banana", "25:99", "9 AM"} {
		if _, err := NormalizeTime(raw, now); err == nil {
			t.Errorf("NormalizeTime(%q): expected error", raw)
		}
	}
}
