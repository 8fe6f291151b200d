package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		destinations := core.NewBaseCollection("destinations")
		destinations.Fields.Add(
			&core.TextField{Name: "name", Required: true},
			&core.TextField{Name: "country"},
			&core.TextField{Name: "state"},
			&core.TextField{Name: "timezone"},
			&core.NumberField{Name: "latitude"},
			&core.NumberField{Name: "longitude"},
			&core.TextField{Name: "category"},
			&core.TextField{Name: "description"},
		)
		if err := app.Save(destinations); err != nil {
			return err
		}

		itineraries := core.NewBaseCollection("itineraries")
		itineraries.Fields.Add(
			&core.TextField{Name: "title", Required: true},
			&core.TextField{Name: "description"},
			&core.TextField{Name: "content"},
			&core.JSONField{Name: "days"},
			&core.RelationField{Name: "destination", CollectionId: destinations.Id, MaxSelect: 1},
			&core.DateField{Name: "startDate"},
			&core.DateField{Name: "endDate"},
			&core.RelationField{Name: "owner", CollectionId: users.Id, Required: true, MaxSelect: 1},
			&core.AutodateField{Name: "created", OnCreate: true},
			&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
		)
		return app.Save(itineraries)
	}, func(app core.App) error {
		for _, name := range []string{"itineraries", "destinations"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				continue
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}
