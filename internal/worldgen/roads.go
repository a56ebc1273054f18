package worldgen

import (
	"github.com/gridforge/tilemap/grid"
	"github.com/gridforge/tilemap/hex"
)

// BuildRoad routes the cheapest land path between two coordinates and marks
// every tile along it as road. Roads flatten movement cost, so later routes
// are drawn toward them. Reports false when no land route exists; nothing is
// marked in that case.
func BuildRoad(w *World, from, to hex.Axial[int]) ([]hex.Axial[int], bool) {
	path, ok := grid.FindPath(w.Tiles, from, to)
	if !ok {
		return nil, false
	}
	for _, coord := range path {
		if tile, ok := w.Tiles.Get(coord); ok {
			tile.Road = true
		}
	}
	return path, true
}
