// Package grid provides a generic coordinate→tile store for tile-based maps
// and a minimum-cost pathfinder over it. The package is topology-agnostic:
// any coordinate type that can enumerate its own neighbors works, so the
// same store and search serve hexagonal and square grids alike.
package grid

import (
	"iter"
	"maps"
)

// Coord constrains the coordinate types a Map can be keyed by: comparable
// values that enumerate their adjacent coordinates. The hex and square
// packages provide ready-made implementations.
type Coord[C any] interface {
	comparable
	Neighbors() []C
}

// Map stores tiles at arbitrary coordinates. The zero value is not usable;
// create with New. A Map has no internal locking: concurrent readers are
// safe only while no goroutine is mutating it.
type Map[C Coord[C], T any] struct {
	tiles map[C]T
}

// New creates an empty map.
func New[C Coord[C], T any]() *Map[C, T] {
	return &Map[C, T]{tiles: make(map[C]T)}
}

// Get returns the tile at the given coordinate.
func (m *Map[C, T]) Get(c C) (T, bool) {
	tile, ok := m.tiles[c]
	return tile, ok
}

// Insert places a tile at the given coordinate. If a tile is already stored
// there it is replaced and returned.
func (m *Map[C, T]) Insert(c C, tile T) (prev T, replaced bool) {
	prev, replaced = m.tiles[c]
	m.tiles[c] = tile
	return prev, replaced
}

// Contains reports whether a tile is stored at the given coordinate.
func (m *Map[C, T]) Contains(c C) bool {
	_, ok := m.tiles[c]
	return ok
}

// Len returns the number of stored tiles.
func (m *Map[C, T]) Len() int {
	return len(m.tiles)
}

// Adjacent returns the tiles stored at coordinates adjacent to c, skipping
// neighbors with no tile. The tile at c itself, if any, is not included.
func (m *Map[C, T]) Adjacent(c C) []T {
	var out []T
	for _, n := range c.Neighbors() {
		if tile, ok := m.tiles[n]; ok {
			out = append(out, tile)
		}
	}
	return out
}

// All returns an iterator over all stored coordinate/tile pairs, in no
// particular order.
func (m *Map[C, T]) All() iter.Seq2[C, T] {
	return maps.All(m.tiles)
}
