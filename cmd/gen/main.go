// Command gen generates type-safe query code for the donor database models.
package main

import (
	"pulse/internal/infra/persistence/model"

	"gorm.io/gen"
)

// DonorQuerier declares the PostGIS lookups that gen cannot derive from the model.
type DonorQuerier interface {
	// SELECT * FROM @@table
	// WHERE deleted_at IS NULL
	//   AND ST_DWithin(location, ST_SetSRID(ST_MakePoint(@lng, @lat), 4326)::geography, @meters)
	// ORDER BY created_at, id
	FindWithinMeters(lat, lng, meters float64) ([]gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.ConversationModel{},
		model.ConversationParticipantModel{},
	)
	g.ApplyInterface(func(DonorQuerier) {}, model.DonorModel{})

	g.Execute()
}
