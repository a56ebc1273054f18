// Settlement site selection: scores every land tile for desirability and
// picks the best, spread out across the map.

package worldgen

import (
	"math/rand"
	"sort"

	"github.com/gridforge/tilemap/hex"
)

// Site is a scored settlement location on a generated world.
type Site struct {
	Coord hex.Axial[int]
	Name  string
	Score float64
}

// PickSites selects up to count settlement sites, best-scored first, keeping
// every pair at least minDist apart. Results and names are deterministic for
// a fixed seed.
func PickSites(w *World, count, minDist int, seed int64) []Site {
	rng := rand.New(rand.NewSource(seed + 200))

	type scored struct {
		coord hex.Axial[int]
		score float64
	}
	var candidates []scored

	for coord, tile := range w.Tiles.All() {
		if s := siteScore(w, coord, tile); s > 0 {
			candidates = append(candidates, scored{coord, s})
		}
	}

	// Map iteration order is random, so ties must break on the coordinate
	// for the same seed to yield the same sites.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		a, b := candidates[i].coord, candidates[j].coord
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})

	var sites []Site
	for _, c := range candidates {
		if len(sites) >= count {
			break
		}
		if tooClose(c.coord, sites, minDist) {
			continue
		}
		sites = append(sites, Site{Coord: c.coord, Score: c.score})
	}

	names := generateNames(rng, len(sites))
	for i := range sites {
		sites[i].Name = names[i]
	}

	return sites
}

// siteScore rates a tile's desirability for settlement. Harbors first, then
// fertile plains; harsh terrain scores near zero.
func siteScore(w *World, coord hex.Axial[int], tile *Tile) float64 {
	var score float64

	switch tile.Terrain {
	case TerrainCoast:
		score = 4.0
	case TerrainPlains:
		score = 3.0
	case TerrainForest:
		score = 1.5
	case TerrainDesert, TerrainSwamp, TerrainTundra:
		score = 0.5
	case TerrainMountain:
		score = 0.3
	default:
		return 0
	}

	// Terrain diversity within reach means economic range.
	kinds := make(map[Terrain]bool)
	for _, adj := range w.Tiles.Adjacent(coord) {
		kinds[adj.Terrain] = true
	}
	score += float64(len(kinds)) * 0.3

	// Water access next door is worth almost as much as being the harbor.
	for _, adj := range w.Tiles.Adjacent(coord) {
		if adj.Terrain == TerrainCoast {
			score += 0.5
			break
		}
	}

	return score
}

func tooClose(coord hex.Axial[int], existing []Site, minDist int) bool {
	for _, s := range existing {
		if coord.Distance(s.Coord) < minDist {
			return true
		}
	}
	return false
}

// generateNames produces procedural settlement names from syllable pairs.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Iron", "Ash", "Stone", "Mill", "Black", "Silver", "Red", "High",
		"Old", "New", "Deep", "Long", "Gold", "Frost", "Thorn", "Oak",
	}
	suffixes := []string{
		"haven", "ford", "hollow", "bridge", "gate", "stead", "wood",
		"field", "dale", "vale", "port", "bury", "brook", "cliff",
		"ridge", "reach",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
