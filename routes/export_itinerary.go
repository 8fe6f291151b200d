package routes

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"backend/itinerary"

	ics "github.com/arran4/golang-ical"
	"github.com/pocketbase/pocketbase/core"
)

// ExportItineraryCalendar serializes a saved itinerary to iCalendar so it
// can be imported into the traveler's own calendar app.
func ExportItineraryCalendar(e *core.RequestEvent) error {
	record, err := e.App.FindRecordById("itineraries", e.Request.PathValue("id"))
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{
			"error": "itinerary not found",
		})
	}

	if record.GetString("owner") != e.Auth.Id {
		return e.JSON(http.StatusForbidden, map[string]string{
			"error": "you do not have access to this itinerary",
		})
	}

	var days []itinerary.Day
	if err := record.UnmarshalJSONField("days", &days); err != nil {
		e.App.Logger().Error("unable to read itinerary days", "error", err, "itineraryId", record.Id)
		return e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "unable to export the itinerary",
		})
	}

	calendar := buildItineraryCalendar(record.Id, record.GetDateTime("startDate").Time(), days)

	e.Response.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.ics", record.Id))

	return e.String(http.StatusOK, calendar.Serialize())
}

// buildItineraryCalendar places each activity on the trip start date plus
// its day offset, keeping the activity's own hour and minute. Without a
// start date the activity timestamps are used as-is; they already carry
// the date they were parsed on.
func buildItineraryCalendar(itineraryId string, start time.Time, days []itinerary.Day) *ics.Calendar {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//travel//itinerary//EN")

	for _, day := range days {
		for i, activity := range day.Activities {
			at, err := time.Parse(time.RFC3339, activity.Time)
			if err != nil {
				continue
			}

			startAt := at
			if !start.IsZero() {
				dayDate := start.AddDate(0, 0, day.DayNumber-1)
				startAt = time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(),
					at.Hour(), at.Minute(), 0, 0, at.Location())
			}

			event := calendar.AddEvent(fmt.Sprintf("%s-day%d-%d", itineraryId, day.DayNumber, i))
			event.SetStartAt(startAt)
			event.SetEndAt(startAt.Add(time.Hour))
			event.SetSummary(activity.Name)
			if activity.Description != "" {
				event.SetDescription(activity.Description)
			}
			if location := strings.TrimSpace(strings.TrimPrefix(activity.Location, "📍")); location != "" {
				event.SetLocation(location)
			}
		}
	}

	return calendar
}
