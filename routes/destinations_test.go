package routes

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func destinationRecord(t *testing.T) *core.Record {
	t.Helper()
	collection := core.NewBaseCollection("destinations")
	collection.Fields.Add(
		&core.TextField{Name: "name"},
		&core.TextField{Name: "timezone"},
		&core.NumberField{Name: "latitude"},
		&core.NumberField{Name: "longitude"},
	)
	return core.NewRecord(collection)
}

func TestDestinationName(t *testing.T) {
	record := destinationRecord(t)
	record.Set("name", "  new york city ")

	if got := destinationName(record); got != "New York City" {
		t.Errorf("expected title-cased name, got %q", got)
	}
}

func TestDestinationTimezone_PrefersStored(t *testing.T) {
	record := destinationRecord(t)
	record.Set("timezone", "Europe/Lisbon")
	record.Set("latitude", 35.0)
	record.Set("longitude", 139.0)

	if got := destinationTimezone(record); got != "Europe/Lisbon" {
		t.Errorf("expected the stored timezone, got %q", got)
	}
}

func TestDestinationTimezone_NoCoordinates(t *testing.T) {
	record := destinationRecord(t)

	if got := destinationTimezone(record); got != "" {
		t.Errorf("expected empty timezone without coordinates, got %q", got)
	}
}
