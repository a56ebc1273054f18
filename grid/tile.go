package grid

// Tile is implemented by tile types that carry their own traversal cost.
type Tile interface {
	// PathfindCost returns the cost of moving onto this tile. Costs must
	// be non-negative; zero is legal and models free movement. Negative
	// costs break the search's no-reopen assumption and are a contract
	// violation, not a checked error.
	PathfindCost() int
}

// DefaultCost is the traversal cost assumed for tile types that do not
// implement Tile.
const DefaultCost = 1

// TileCost returns the traversal cost of a tile: its own PathfindCost when
// the tile's type implements Tile, DefaultCost otherwise. This lets plain
// payload types (strings, structs without costs) back a uniform-cost map.
func TileCost[T any](tile T) int {
	if c, ok := any(tile).(Tile); ok {
		return c.PathfindCost()
	}
	return DefaultCost
}
