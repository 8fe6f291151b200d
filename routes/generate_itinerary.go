package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/itinerary"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pocketbase/pocketbase/core"
)

const itineraryModel = "gpt-5-mini"

type generateItineraryRequest struct {
	DestinationId string `json:"destinationId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Preferences   string `json:"preferences"`
}

// GenerateItinerary streams a model-written itinerary to the client as
// server-sent events. Each event's data payload is the fragment envelope
// the accumulator accepts: {"delta": "..."} per chunk, {"done": true} once
// the model finishes. Generation failures are reported on the same channel
// without a done marker so the client never saves an incomplete buffer as
// if it were final.
func GenerateItinerary(e *core.RequestEvent) error {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return e.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "OPENAI_API_KEY is not configured on the server",
		})
	}

	var req generateItineraryRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if req.DestinationId == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "a destination is required",
		})
	}

	destination, err := e.App.FindRecordById("destinations", req.DestinationId)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{
			"error": "unknown destination",
		})
	}

	from, to := parseDateRange(req.StartDate, req.EndDate)
	systemPrompt, userPrompt := buildItineraryPrompt(destinationName(destination), from, to, req.Preferences)

	flusher, ok := e.Response.(http.Flusher)
	if !ok {
		return e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "streaming is not supported",
		})
	}

	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")
	e.Response.WriteHeader(http.StatusOK)

	writeEvent := func(payload any) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(e.Response, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	stream := client.Chat.Completions.NewStreaming(e.Request.Context(), openai.ChatCompletionNewParams{
		Model: itineraryModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		if err := writeEvent(map[string]string{"delta": delta}); err != nil {
			return err
		}
	}

	if err := stream.Err(); err != nil {
		e.App.Logger().Error("itinerary generation failed", "error", err, "destinationId", req.DestinationId)
		return writeEvent(map[string]string{"error": "generation failed"})
	}

	return writeEvent(map[string]bool{"done": true})
}

// buildItineraryPrompt writes the instructions that pin the model to the
// line grammar the parser recognizes. The day count comes from the trip
// date range when one was selected.
func buildItineraryPrompt(destination string, from, to time.Time, preferences string) (string, string) {
	var system strings.Builder
	system.WriteString("You write day-by-day travel itineraries. Use exactly this format:\n")
	system.WriteString("Day <number> (<optional note>)\n")
	system.WriteString("<H:MM AM/PM> — <activity name>\n")
	system.WriteString("Category: <category>\n")
	system.WriteString("Location: 📍 <address or area>\n")
	system.WriteString("• <detail about the activity>\n")
	system.WriteString("Category, Location and bullet lines are optional and always belong to the activity right above them. Do not add any other formatting.")

	var user strings.Builder
	if from.IsZero() || to.IsZero() {
		fmt.Fprintf(&user, "Plan an itinerary for a trip to %s.", destination)
	} else {
		fmt.Fprintf(&user, "Plan a %d-day itinerary for a trip to %s, %s to %s.",
			itinerary.TripLength(from, to), destination,
			from.Format("January 2, 2006"), to.Format("January 2, 2006"))
	}
	if preferences = strings.TrimSpace(preferences); preferences != "" {
		fmt.Fprintf(&user, " Traveler preferences: %s", preferences)
	}

	return system.String(), user.String()
}

func parseDateRange(start, end string) (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", start)
	to, _ := time.Parse("2006-01-02", end)
	return from, to
}
