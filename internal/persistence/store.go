// Package persistence stores generated worlds in SQLite. Saves are full
// replaces: a world row plus one row per land tile, keyed by world id and
// axial coordinate.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gridforge/tilemap/grid"
	"github.com/gridforge/tilemap/hex"
	"github.com/gridforge/tilemap/internal/worldgen"
)

// Store wraps a SQLite connection for world persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the world database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		radius INTEGER NOT NULL,
		sea_level REAL NOT NULL,
		mountain_level REAL NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS tiles (
		world_id TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		road INTEGER NOT NULL,
		elevation REAL NOT NULL,
		rainfall REAL NOT NULL,
		temperature REAL NOT NULL,
		PRIMARY KEY (world_id, q, r)
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

type worldRow struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Seed          int64   `db:"seed"`
	Radius        int     `db:"radius"`
	SeaLevel      float64 `db:"sea_level"`
	MountainLevel float64 `db:"mountain_level"`
	CreatedAt     string  `db:"created_at"`
}

type tileRow struct {
	Q           int     `db:"q"`
	R           int     `db:"r"`
	Terrain     uint8   `db:"terrain"`
	Road        bool    `db:"road"`
	Elevation   float64 `db:"elevation"`
	Rainfall    float64 `db:"rainfall"`
	Temperature float64 `db:"temperature"`
}

// SaveWorld writes a world and all its tiles (full replace).
func (s *Store) SaveWorld(w *worldgen.World) error {
	slog.Info("saving world", "id", w.ID, "name", w.Name, "tiles", w.Tiles.Len())

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tiles WHERE world_id = ?", w.ID.String()); err != nil {
		return fmt.Errorf("clear tiles: %w", err)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO worlds
		(id, name, seed, radius, sea_level, mountain_level)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID.String(), w.Name, w.Seed,
		w.Config.Radius, w.Config.SeaLevel, w.Config.MountainLevel,
	)
	if err != nil {
		return fmt.Errorf("insert world: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(world_id, q, r, terrain, road, elevation, rainfall, temperature)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for coord, tile := range w.Tiles.All() {
		_, err := stmt.Exec(
			w.ID.String(), coord.Q, coord.R,
			tile.Terrain, tile.Road,
			tile.Elevation, tile.Rainfall, tile.Temperature,
		)
		if err != nil {
			return fmt.Errorf("insert tile (%d,%d): %w", coord.Q, coord.R, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("world saved", "id", w.ID)
	return nil
}

// LoadWorld reads a world and rebuilds its tile grid. The error wraps
// sql.ErrNoRows when no world has the given id.
func (s *Store) LoadWorld(id uuid.UUID) (*worldgen.World, error) {
	var wr worldRow
	if err := s.conn.Get(&wr, "SELECT * FROM worlds WHERE id = ?", id.String()); err != nil {
		return nil, fmt.Errorf("load world %s: %w", id, err)
	}

	var rows []tileRow
	err := s.conn.Select(&rows,
		"SELECT q, r, terrain, road, elevation, rainfall, temperature FROM tiles WHERE world_id = ?",
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("load tiles %s: %w", id, err)
	}

	w := &worldgen.World{
		ID:   id,
		Name: wr.Name,
		Seed: wr.Seed,
		Config: worldgen.Config{
			Radius:        wr.Radius,
			Seed:          wr.Seed,
			SeaLevel:      wr.SeaLevel,
			MountainLevel: wr.MountainLevel,
		},
		Tiles: grid.New[hex.Axial[int], *worldgen.Tile](),
	}

	for _, row := range rows {
		w.Tiles.Insert(hex.Axial[int]{Q: row.Q, R: row.R}, &worldgen.Tile{
			Terrain:     worldgen.Terrain(row.Terrain),
			Road:        row.Road,
			Elevation:   row.Elevation,
			Rainfall:    row.Rainfall,
			Temperature: row.Temperature,
		})
	}

	return w, nil
}

// WorldInfo is a listing entry for a stored world.
type WorldInfo struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Seed      int64     `db:"seed"`
	Radius    int       `db:"radius"`
	Tiles     int       `db:"tiles"`
	CreatedAt string    `db:"created_at"`
}

// ListWorlds returns every stored world with its tile count, newest first.
func (s *Store) ListWorlds() ([]WorldInfo, error) {
	var infos []WorldInfo
	err := s.conn.Select(&infos, `
		SELECT w.id, w.name, w.seed, w.radius, w.created_at,
		       COUNT(t.world_id) AS tiles
		FROM worlds w
		LEFT JOIN tiles t ON t.world_id = w.id
		GROUP BY w.id
		ORDER BY w.created_at DESC, w.id`)
	if err != nil {
		return nil, fmt.Errorf("list worlds: %w", err)
	}
	return infos, nil
}

// DeleteWorld removes a world and its tiles.
func (s *Store) DeleteWorld(id uuid.UUID) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tiles WHERE world_id = ?", id.String()); err != nil {
		return fmt.Errorf("delete tiles: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM worlds WHERE id = ?", id.String()); err != nil {
		return fmt.Errorf("delete world: %w", err)
	}

	return tx.Commit()
}
