package voxeldb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/voxel"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound indicates a grid id with no stored dataset.
var ErrNotFound = errors.New("voxeldb: grid not found")

// Store persists voxel grid datasets in a SQLite database.
type Store struct {
	db *sql.DB
}

// GridRecord is the stored metadata of one grid dataset.
type GridRecord struct {
	ID         string
	Name       string
	FrameID    frames.FrameID
	Resolution float64
	RowCount   int
	CreatedAt  time.Time
}

// Open opens (creating if necessary) the database at path and applies any
// pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("voxeldb: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("voxeldb: load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("voxeldb: migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("voxeldb: migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("voxeldb: migration up failed: %w", err)
	}
	return nil
}

// Save stores the grid's table and metadata under a fresh dataset id and
// returns the id. The grid's reference frame graph is not persisted.
func (s *Store) Save(name string, g *voxel.Grid) (string, error) {
	blob, err := encodeColumns(g.Table())
	if err != nil {
		return "", fmt.Errorf("voxeldb: serialize grid: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO voxel_grids
			(grid_id, name, frame_id, resolution, row_count, created_unix_nanos, column_blob)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, string(g.LocalFrameID()), g.Info().Resolution,
		g.NumRows(), time.Now().UnixNano(), blob,
	)
	if err != nil {
		return "", fmt.Errorf("voxeldb: insert grid: %w", err)
	}
	return id, nil
}

// Load rebuilds a stored grid, attaching the given reference frame resolver.
// It fails with ErrNotFound for unknown ids.
func (s *Store) Load(id string, resolver frames.Resolver) (*voxel.Grid, error) {
	var (
		frameID    string
		resolution float64
		blob       []byte
	)
	err := s.db.QueryRow(`
		SELECT frame_id, resolution, column_blob
		FROM voxel_grids WHERE grid_id = ?`, id,
	).Scan(&frameID, &resolution, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("voxeldb: query grid %s: %w", id, err)
	}

	tbl, err := decodeColumns(blob)
	if err != nil {
		return nil, err
	}
	info := voxel.GridInfo{Resolution: resolution, FrameID: frames.FrameID(frameID)}
	return voxel.New(tbl, info, resolver)
}

// List returns the metadata of all stored datasets, newest first.
func (s *Store) List() ([]GridRecord, error) {
	rows, err := s.db.Query(`
		SELECT grid_id, name, frame_id, resolution, row_count, created_unix_nanos
		FROM voxel_grids ORDER BY created_unix_nanos DESC`)
	if err != nil {
		return nil, fmt.Errorf("voxeldb: list grids: %w", err)
	}
	defer rows.Close()

	var records []GridRecord
	for rows.Next() {
		var (
			rec     GridRecord
			frameID string
			nanos   int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &frameID, &rec.Resolution, &rec.RowCount, &nanos); err != nil {
			return nil, err
		}
		rec.FrameID = frames.FrameID(frameID)
		rec.CreatedAt = time.Unix(0, nanos)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a stored dataset. Deleting an unknown id fails with
// ErrNotFound.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM voxel_grids WHERE grid_id = ?`, id)
	if err != nil {
		return fmt.Errorf("voxeldb: delete grid %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
