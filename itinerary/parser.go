package itinerary

import (
	"strings"
	"time"
)

// Activity is one timed entry within a day. Time is always set, derived
// from the activity header line; the other fields stay empty unless a tag
// or bullet line follows before the next boundary.
type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Day is one parsed itinerary day. DayNumber is whatever the day header
// said; it is not required to be unique or sequential. Activities keep
// their order of appearance in the text, not time order.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Notes      string     `json:"notes"`
	Activities []Activity `json:"activities"`
}

// Parse runs the line state machine over generated itinerary text and
// returns the parsed days in order of appearance. It recomputes the full
// result from scratch on every call, so it is safe to re-run on a growing
// buffer while generation is still streaming.
//
// Activity times are anchored to now's calendar date and location; the
// text only carries a time of day and a day number, never a date.
func Parse(text string, now time.Time) []Day {
	days := []Day{}

	// Days commit on the next day boundary (or at end of input) so a
	// header with no following content still yields an empty day exactly
	// once. Activities commit immediately and are mutated by index, since
	// tag and bullet lines target the most recently created one.
	var current *Day
	lastActivity := -1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch classified := ClassifyLine(line); classified.Kind {
		case LineDayHeader:
			if current != nil {
				days = append(days, *current)
			}
			current = &Day{
				DayNumber:  classified.DayNumber,
				Notes:      classified.Notes,
				Activities: []Activity{},
			}
			lastActivity = -1

		case LineActivityHeader:
			// Text before the first day header is discarded.
			if current == nil {
				continue
			}
			at, err := NormalizeTime(classified.Time, now)
			if err != nil {
				continue
			}
			current.Activities = append(current.Activities, Activity{
				Time: at.Format(time.RFC3339),
				Name: classified.Text,
			})
			lastActivity = len(current.Activities) - 1

		case LineCategoryTag:
			if current == nil || lastActivity < 0 {
				continue
			}
			current.Activities[lastActivity].Category = classified.Text

		case LineLocationTag:
			if current == nil || lastActivity < 0 {
				continue
			}
			current.Activities[lastActivity].Location = classified.Text

		case LineBullet:
			if current == nil || lastActivity < 0 {
				continue
			}
			activity := &current.Activities[lastActivity]
			if activity.Description == "" {
				activity.Description = classified.Text
			} else {
				activity.Description += "\n" + classified.Text
			}
		}
	}

	// Final flush: without this the last day would be lost.
	if current != nil {
		days = append(days, *current)
	}

	return days
}
