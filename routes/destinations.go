package routes

import (
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/ringsaturn/tzf"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type destinationSummary struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

var (
	destinationCache = gocache.New(5*time.Minute, 10*time.Minute)

	tzOnce   sync.Once
	tzFinder tzf.F
)

func timezoneFinder() tzf.F {
	tzOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err == nil {
			tzFinder = finder
		}
	})
	return tzFinder
}

// SearchDestinations looks up destinations by name prefix. Results are
// cached per query since the destination list changes rarely and the
// search box fires on every keystroke.
func SearchDestinations(e *core.RequestEvent) error {
	query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
	if query == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "missing search query",
		})
	}

	cacheKey := "destinations:" + strings.ToLower(query)
	if cached, ok := destinationCache.Get(cacheKey); ok {
		return e.JSON(http.StatusOK, cached)
	}

	records, err := e.App.FindAllRecords("destinations",
		dbx.Like("name", query),
	)
	if err != nil {
		e.App.Logger().Error("destination search failed", "error", err, "query", query)
		return e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "destination search failed",
		})
	}

	results := lo.Map(records, func(record *core.Record, _ int) destinationSummary {
		return destinationSummary{
			Id:       record.Id,
			Name:     destinationName(record),
			Country:  record.GetString("country"),
			State:    record.GetString("state"),
			Timezone: destinationTimezone(record),
		}
	})

	destinationCache.SetDefault(cacheKey, results)

	return e.JSON(http.StatusOK, results)
}

func destinationName(record *core.Record) string {
	// A cases.Caser is not safe for concurrent use, so build one per call.
	return cases.Title(language.English).String(strings.TrimSpace(record.GetString("name")))
}

// destinationTimezone prefers the stored timezone and falls back to
// resolving one from the destination's coordinates.
func destinationTimezone(record *core.Record) string {
	if tz := record.GetString("timezone"); tz != "" {
		return tz
	}

	lat := record.GetFloat("latitude")
	lng := record.GetFloat("longitude")
	if lat == 0 && lng == 0 {
		return ""
	}

	finder := timezoneFinder()
	if finder == nil {
		return ""
	}
	return finder.GetTimezoneName(lng, lat)
}
