// Package worldgen builds procedural hex worlds on top of the hex and grid
// packages: layered simplex noise shapes the terrain, settlement sites are
// scored and picked, and roads between them are routed with the pathfinder.
package worldgen

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gridforge/tilemap/grid"
	"github.com/gridforge/tilemap/hex"
)

// Config holds world generation parameters.
type Config struct {
	Radius        int     // Hex grid radius (~22 for ~1500 tiles)
	Seed          int64   // Random seed (0 = random)
	SeaLevel      float64 // Elevation threshold below which tiles become water (0.0–1.0)
	MountainLevel float64 // Elevation threshold for mountains (0.0–1.0)
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Radius:        22,
		Seed:          0,
		SeaLevel:      0.25,
		MountainLevel: 0.72,
	}
}

// SmallConfig returns a tiny world for rapid iteration and tests.
func SmallConfig() Config {
	return Config{
		Radius:        5,
		Seed:          42,
		SeaLevel:      0.30,
		MountainLevel: 0.75,
	}
}

// World is a generated map plus the identity the persistence layer needs.
type World struct {
	ID     uuid.UUID
	Name   string
	Seed   int64 // Seed actually used (resolved when Config.Seed is 0)
	Config Config
	Tiles  *grid.Map[hex.Axial[int], *Tile]
}

// Generate creates a complete world. The same non-zero seed always produces
// the same terrain; a zero seed draws one at random and records it in the
// returned World.
func Generate(cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent noise layers for elevation, rainfall and temperature.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	w := &World{
		ID:     uuid.New(),
		Seed:   seed,
		Config: cfg,
		Tiles:  grid.New[hex.Axial[int], *Tile](),
	}

	var origin hex.Axial[int]
	for _, coord := range origin.Area(cfg.Radius) {
		// Axial → cartesian so the noise field is sampled without shear:
		// x = q + r/2, y = r*sqrt(3)/2.
		x := float64(coord.Q) + float64(coord.R)*0.5
		y := float64(coord.R) * math.Sqrt(3.0) / 2.0

		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
		temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

		// Continental shaping: elevation falls away toward the rim so every
		// world is ringed by open water.
		distFromCenter := math.Sqrt(x*x+y*y) / float64(cfg.Radius)
		edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
		if edgeFalloff < 0 {
			edgeFalloff = 0
		}
		elev *= edgeFalloff

		// Cooler at altitude and away from the equator.
		temp = temp*0.6 + (1.0-math.Abs(y)/float64(cfg.Radius))*0.3 + (1.0-elev)*0.1

		terrain := deriveTerrain(elev, rain, temp, cfg)
		if terrain == TerrainOcean {
			// Water is absence. The coordinate is never stored, so no
			// route can pass through it.
			continue
		}

		w.Tiles.Insert(coord, &Tile{
			Terrain:     terrain,
			Elevation:   elev,
			Rainfall:    rain,
			Temperature: temp,
		})
	}

	markCoastal(w)

	return w
}

// deriveTerrain determines terrain type from the environmental parameters.
func deriveTerrain(elev, rain, temp float64, cfg Config) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainOcean
	}
	if elev > cfg.MountainLevel {
		return TerrainMountain
	}
	if temp < 0.25 {
		return TerrainTundra
	}
	if rain < 0.25 && temp > 0.5 {
		return TerrainDesert
	}
	if rain > 0.7 && elev < 0.45 {
		return TerrainSwamp
	}
	if rain > 0.45 && elev > 0.45 {
		return TerrainForest
	}
	return TerrainPlains
}

// markCoastal converts low-lying plains and forest bordering open water into
// coast. Water is any in-radius coordinate with no stored tile.
func markCoastal(w *World) {
	var origin hex.Axial[int]
	var coastal []*Tile

	for coord, tile := range w.Tiles.All() {
		if tile.Terrain != TerrainPlains && tile.Terrain != TerrainForest {
			continue
		}
		if tile.Elevation >= 0.5 {
			continue
		}
		for _, nc := range coord.Neighbors() {
			if w.Tiles.Contains(nc) {
				continue
			}
			if origin.Distance(nc) > w.Config.Radius {
				continue // Off the map entirely, not water.
			}
			coastal = append(coastal, tile)
			break
		}
	}

	for _, tile := range coastal {
		tile.Terrain = TerrainCoast
	}
}

// octaveNoise layers multiple noise frequencies into natural-looking fractal
// terrain.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// TerrainCounts summarizes the terrain distribution of a world.
func TerrainCounts(w *World) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, tile := range w.Tiles.All() {
		counts[tile.Terrain]++
	}
	return counts
}
