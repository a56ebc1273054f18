package worldgen

// Terrain types for generated land tiles. Open water has no terrain value
// because water tiles are never stored.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Open, fertile, easy going
	TerrainForest                  // Slows travel, good cover
	TerrainMountain                // Barely passable without a road
	TerrainCoast                   // Land bordering open water
	TerrainDesert                  // Harsh but flat
	TerrainSwamp                   // Slowest land there is
	TerrainTundra                  // Frozen ground
	TerrainOcean                   // Derivation result only, never stored
)

// RoadCost is the cost of entering any tile carrying a road, whatever
// terrain lies under it.
const RoadCost = 1

// Tile is one land hex of a generated world. Ocean is represented by
// absence: a coordinate with no tile cannot be entered, which is exactly
// the pathfinder's model of untraversable ground.
type Tile struct {
	Terrain     Terrain
	Elevation   float64
	Rainfall    float64
	Temperature float64
	Road        bool
}

// PathfindCost reports the cost of entering this tile. Roads flatten the
// terrain penalty.
func (t *Tile) PathfindCost() int {
	if t.Road {
		return RoadCost
	}
	return t.Terrain.MovementCost()
}

// MovementCost is the base cost of entering a tile of this terrain.
func (t Terrain) MovementCost() int {
	switch t {
	case TerrainPlains, TerrainCoast:
		return 1
	case TerrainForest, TerrainDesert:
		return 2
	case TerrainTundra:
		return 3
	case TerrainSwamp:
		return 4
	case TerrainMountain:
		return 5
	default:
		return 1
	}
}

func (t Terrain) String() string {
	switch t {
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainMountain:
		return "Mountain"
	case TerrainCoast:
		return "Coast"
	case TerrainDesert:
		return "Desert"
	case TerrainSwamp:
		return "Swamp"
	case TerrainTundra:
		return "Tundra"
	case TerrainOcean:
		return "Ocean"
	default:
		return "Unknown"
	}
}
