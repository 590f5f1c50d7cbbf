// Package storage provides SQLite-based persistence for precomputed curve
// lookup tables, so consumers without a curve builder can read the
// visiting order directly. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/spacefill/internal/core"
	"github.com/vovakirdan/spacefill/internal/registry"
)

// ErrNotFound is returned when no table is stored for a kind and order.
var ErrNotFound = errors.New("storage: curve not found")

// Store manages the SQLite database connection for lookup tables.
type Store struct {
	db *sql.DB
}

// CurveEntry describes one stored lookup table.
type CurveEntry struct {
	ID        int64
	Kind      string
	Order     int
	Side      int
	Size      int
	Closed    bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS curves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			curve_order INTEGER NOT NULL,
			side INTEGER NOT NULL,
			size INTEGER NOT NULL,
			closed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (kind, curve_order)
		);

		CREATE TABLE IF NOT EXISTS curve_points (
			curve_id INTEGER NOT NULL REFERENCES curves(id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			PRIMARY KEY (curve_id, step)
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_curve_points_cell ON curve_points(curve_id, x, y);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCurve stores the full visiting order of c, replacing any table
// previously stored for the same kind and order.
// Returns the ID of the inserted curve record.
func (s *Store) SaveCurve(c registry.Curve) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deletePoints(tx, c.Kind(), c.Order()); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(
		"DELETE FROM curves WHERE kind = ? AND curve_order = ?",
		c.Kind(), c.Order(),
	); err != nil {
		return 0, fmt.Errorf("storage: cannot replace curve: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO curves (kind, curve_order, side, size, closed) VALUES (?, ?, ?, ?, ?)",
		c.Kind(), c.Order(), c.Side(), c.Size(), c.Closed(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save curve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO curve_points (curve_id, step, x, y) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < c.Size(); i++ {
		p, _ := c.Forward(i)
		if _, err := stmt.Exec(id, i, p.X, p.Y); err != nil {
			return 0, fmt.Errorf("storage: cannot save step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit curve: %w", err)
	}
	return id, nil
}

func deletePoints(tx *sql.Tx, kind string, order int) error {
	_, err := tx.Exec(
		`DELETE FROM curve_points
		 WHERE curve_id IN (SELECT id FROM curves WHERE kind = ? AND curve_order = ?)`,
		kind, order,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear points: %w", err)
	}
	return nil
}

// ListCurves returns every stored table ordered by kind and order.
func (s *Store) ListCurves() ([]CurveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, curve_order, side, size, closed, created_at
		 FROM curves
		 ORDER BY kind, curve_order`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query curves: %w", err)
	}
	defer rows.Close()

	var entries []CurveEntry
	for rows.Next() {
		var e CurveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Kind, &e.Order, &e.Side, &e.Size, &e.Closed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadPoints returns the stored visiting order for kind and order.
// Returns ErrNotFound if no such table exists.
func (s *Store) LoadPoints(kind string, order int) ([]core.Coord, error) {
	id, size, err := s.curveID(kind, order)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT step, x, y FROM curve_points WHERE curve_id = ? ORDER BY step",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query points: %w", err)
	}
	defer rows.Close()

	points := make([]core.Coord, 0, size)
	for rows.Next() {
		var step int
		var p core.Coord
		if err := rows.Scan(&step, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if step != len(points) {
			return nil, fmt.Errorf("storage: %s order %d is missing step %d", kind, order, len(points))
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	if len(points) != size {
		return nil, fmt.Errorf("storage: %s order %d has %d of %d steps", kind, order, len(points), size)
	}

	return points, nil
}

// LookupStep returns the stored step index of cell (x, y).
// ok is false when the cell is not part of the stored table.
func (s *Store) LookupStep(kind string, order, x, y int) (step int, ok bool, err error) {
	id, _, err := s.curveID(kind, order)
	if err != nil {
		return 0, false, err
	}

	err = s.db.QueryRow(
		"SELECT step FROM curve_points WHERE curve_id = ? AND x = ? AND y = ?",
		id, x, y,
	).Scan(&step)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query step: %w", err)
	}
	return step, true, nil
}

// DeleteCurve removes the table stored for kind and order.
func (s *Store) DeleteCurve(kind string, order int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deletePoints(tx, kind, order); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM curves WHERE kind = ? AND curve_order = ?", kind, order); err != nil {
		return fmt.Errorf("storage: cannot delete curve: %w", err)
	}
	return tx.Commit()
}

func (s *Store) curveID(kind string, order int) (id int64, size int, err error) {
	err = s.db.QueryRow(
		"SELECT id, size FROM curves WHERE kind = ? AND curve_order = ?",
		kind, order,
	).Scan(&id, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w: %s order %d", ErrNotFound, kind, order)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot query curve: %w", err)
	}
	return id, size, nil
}
