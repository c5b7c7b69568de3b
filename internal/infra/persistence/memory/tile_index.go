package memory

import (
	"cmp"
	"slices"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"
)

// TileIndex buckets candidate IDs by the web mercator tile holding their location.
// Lookups return IDs in insertion order so callers see a stable store order.
type TileIndex struct {
	zoom  maptile.Zoom
	tiles map[maptile.Tile][]tileEntry
	where map[string]maptile.Tile
	seq   uint64
}

type tileEntry struct {
	id  string
	seq uint64
}

// NewTileIndex creates an empty index at the given zoom.
// Zoom 9 gives tiles of roughly 78 km at the equator.
func NewTileIndex(zoom int) *TileIndex {
	return &TileIndex{
		zoom:  maptile.Zoom(zoom),
		tiles: make(map[maptile.Tile][]tileEntry),
		where: make(map[string]maptile.Tile),
	}
}

// Insert places id at location, replacing any previous position.
func (idx *TileIndex) Insert(id string, location entity.Coordinate) {
	idx.Remove(id)

	tile := maptile.At(geo.ToPoint(location), idx.zoom)
	idx.seq++
	idx.tiles[tile] = append(idx.tiles[tile], tileEntry{id: id, seq: idx.seq})
	idx.where[id] = tile
}

// Remove drops id from the index. Unknown IDs are ignored.
func (idx *TileIndex) Remove(id string) {
	tile, ok := idx.where[id]
	if !ok {
		return
	}
	delete(idx.where, id)

	entries := slices.DeleteFunc(idx.tiles[tile], func(e tileEntry) bool {
		return e.id == id
	})
	if len(entries) == 0 {
		delete(idx.tiles, tile)

		return
	}
	idx.tiles[tile] = entries
}

// Size returns the number of indexed IDs
func (idx *TileIndex) Size() int {
	return len(idx.where)
}

// Query returns the IDs in every tile intersecting bound. A bound whose
// Min.Lon is greater than its Max.Lon is treated as crossing the antimeridian.
func (idx *TileIndex) Query(bound orb.Bound) []string {
	if len(idx.where) == 0 {
		return nil
	}

	var found []tileEntry
	for _, part := range splitAntimeridian(bound) {
		found = append(found, idx.collect(part)...)
	}

	slices.SortFunc(found, func(a, b tileEntry) int {
		return cmp.Compare(a.seq, b.seq)
	})

	ids := make([]string, 0, len(found))
	for _, entry := range found {
		ids = append(ids, entry.id)
	}

	return ids
}

func (idx *TileIndex) collect(bound orb.Bound) []tileEntry {
	var found []tileEntry

	// Bounds spanning more tiles than are occupied walk the occupied ones.
	if coverSize(bound, idx.zoom) > len(idx.tiles) {
		for tile, entries := range idx.tiles {
			if tileIntersects(tile, bound, idx.zoom) {
				found = append(found, entries...)
			}
		}

		return found
	}

	for tile := range tilecover.Bound(bound, idx.zoom) {
		found = append(found, idx.tiles[tile]...)
	}

	return found
}

func splitAntimeridian(bound orb.Bound) []orb.Bound {
	if !geo.WrapsAntimeridian(bound) {
		return []orb.Bound{bound}
	}

	return []orb.Bound{
		{Min: bound.Min, Max: orb.Point{180, bound.Max.Lat()}},
		{Min: orb.Point{-180, bound.Min.Lat()}, Max: bound.Max},
	}
}

func coverSize(bound orb.Bound, zoom maptile.Zoom) int {
	lo := maptile.At(bound.Min, zoom)
	hi := maptile.At(bound.Max, zoom)

	return int(hi.X-lo.X+1) * int(lo.Y-hi.Y+1)
}

func tileIntersects(tile maptile.Tile, bound orb.Bound, zoom maptile.Zoom) bool {
	lo := maptile.At(bound.Min, zoom)
	hi := maptile.At(bound.Max, zoom)

	return tile.X >= lo.X && tile.X <= hi.X && tile.Y >= hi.Y && tile.Y <= lo.Y
}
