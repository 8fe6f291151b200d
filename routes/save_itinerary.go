package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"backend/itinerary"

	"github.com/pocketbase/pocketbase/core"
)

type saveItineraryRequest struct {
	DestinationId string `json:"destinationId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Description   string `json:"description"`
	Content       string `json:"content"`
}

// SaveItinerary parses the fully generated text once and persists it
// together with the user-selected trip metadata. The raw text is stored
// alongside the parsed days so a later regeneration or reparse stays
// possible.
func SaveItinerary(e *core.RequestEvent) error {
	var req saveItineraryRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if req.DestinationId == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "select a destination before saving",
		})
	}
	if strings.TrimSpace(req.Content) == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "there is no generated itinerary to save",
		})
	}

	destination, err := e.App.FindRecordById("destinations", req.DestinationId)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{
			"error": "unknown destination",
		})
	}

	// Activity times carry only an hour and minute, so they are anchored
	// to today's date in the destination's timezone.
	now := time.Now()
	if tz := destination.GetString("timezone"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			now = now.In(loc)
		}
	}

	days := itinerary.Parse(req.Content, now)

	from, to := parseDateRange(req.StartDate, req.EndDate)
	title := itinerary.TripTitle(destinationName(destination), from, to)

	if !from.IsZero() && !to.IsZero() {
		if length := itinerary.TripLength(from, to); len(days) != length {
			e.App.Logger().Warn("generated day count differs from trip length",
				"parsedDays", len(days), "tripLength", length, "destinationId", destination.Id)
		}
	}

	collection, err := e.App.FindCollectionByNameOrId("itineraries")
	if err != nil {
		return err
	}

	record := core.NewRecord(collection)
	record.Set("title", title)
	record.Set("description", req.Description)
	record.Set("content", req.Content)
	record.Set("days", days)
	record.Set("destination", destination.Id)
	record.Set("startDate", req.StartDate)
	record.Set("endDate", req.EndDate)
	record.Set("owner", e.Auth.Id)

	if err := e.App.Save(record); err != nil {
		e.App.Logger().Error("failed to save itinerary", "error", err, "destinationId", destination.Id)
		return e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "unable to save the itinerary",
		})
	}

	return e.JSON(http.StatusOK, map[string]any{
		"id":    record.Id,
		"title": title,
		"days":  days,
	})
}
