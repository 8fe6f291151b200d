package routes

import (
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// Bind registers the travel API routes. All of them require an
// authenticated user; PocketBase owns sessions and auth records.
func Bind(se *core.ServeEvent) {
	group := se.Router.Group("/api/travel")
	group.Bind(apis.RequireAuth())

	group.GET("/destinations", SearchDestinations)
	group.POST("/itineraries/generate", GenerateItinerary)
	group.POST("/itineraries", SaveItinerary)
	group.GET("/itineraries/{id}/calendar", ExportItineraryCalendar)
}
