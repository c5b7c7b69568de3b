package memory

import (
	"testing"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestTileIndex_Query(t *testing.T) {
	index := NewTileIndex(9)
	index.Insert("times-square", entity.Coordinate{Latitude: 40.7580, Longitude: -73.9855})
	index.Insert("london", entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278})
	index.Insert("newark", entity.Coordinate{Latitude: 40.7357, Longitude: -74.1724})

	ids := index.Query(geo.BoundAround(entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 50))

	assert.Equal(t, []string{"times-square", "newark"}, ids)
	assert.Equal(t, 3, index.Size())
}

func TestTileIndex_QueryAcrossAntimeridian(t *testing.T) {
	index := NewTileIndex(9)
	index.Insert("east", entity.Coordinate{Latitude: -17.0, Longitude: 179.9})
	index.Insert("west", entity.Coordinate{Latitude: -17.0, Longitude: -179.9})
	index.Insert("far", entity.Coordinate{Latitude: -17.0, Longitude: 170.0})

	bound := geo.BoundAround(entity.Coordinate{Latitude: -17.0, Longitude: 179.95}, 50)
	assert.True(t, geo.WrapsAntimeridian(bound))

	ids := index.Query(bound)

	assert.Equal(t, []string{"east", "west"}, ids)
}

func TestTileIndex_InsertReplacesPosition(t *testing.T) {
	index := NewTileIndex(9)
	index.Insert("mover", entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278})
	index.Insert("mover", entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060})

	nearNY := index.Query(geo.BoundAround(entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 10))
	nearLondon := index.Query(geo.BoundAround(entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, 10))

	assert.Equal(t, []string{"mover"}, nearNY)
	assert.Empty(t, nearLondon)
	assert.Equal(t, 1, index.Size())
}

func TestTileIndex_Remove(t *testing.T) {
	index := NewTileIndex(9)
	index.Insert("a", entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060})
	index.Insert("b", entity.Coordinate{Latitude: 40.7130, Longitude: -74.0062})

	index.Remove("a")
	index.Remove("unknown")

	ids := index.Query(geo.BoundAround(entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 5))
	assert.Equal(t, []string{"b"}, ids)
	assert.Equal(t, 1, index.Size())
}

func TestTileIndex_LargeBoundWalksOccupiedTiles(t *testing.T) {
	index := NewTileIndex(12)
	index.Insert("ny", entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060})
	index.Insert("boston", entity.Coordinate{Latitude: 42.3601, Longitude: -71.0589})
	index.Insert("tokyo", entity.Coordinate{Latitude: 35.6762, Longitude: 139.6503})

	ids := index.Query(geo.BoundAround(entity.Coordinate{Latitude: 41.5, Longitude: -72.5}, 400))

	assert.Equal(t, []string{"ny", "boston"}, ids)
}

func TestTileIndex_EmptyQuery(t *testing.T) {
	index := NewTileIndex(9)

	assert.Empty(t, index.Query(geo.BoundAround(entity.Coordinate{}, 50)))
}
