// Package storage persists dockyard layout state in SQLite.
// One row per container holds the latest state; named snapshots keep
// user-saved presets alongside it.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	dockerrors "github.com/odvcencio/dockyard/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// Store manages SQLite database operations
type Store struct {
	db *sql.DB
}

// Snapshot is a named, user-saved layout preset.
type Snapshot struct {
	ID          string
	ContainerID string
	Name        string
	State       string
	CreatedAt   time.Time
}

// New creates a new store and initializes the database
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to create database directory").
					WithContext("dir", dir)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to open database").
			WithContext("path", dbPath)
	}

	// SQLite supports one writer at a time; WAL lets readers proceed
	// while the autosaver writes.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to configure database").
				WithContext("pragma", pragma)
		}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Migration represents a database schema migration
type Migration struct {
	Version int
	Name    string
	Apply   func(db *sql.DB) error
}

// migrations is the ordered list of all migrations. The base schema is
// version 1 and applied from schema.sql.
var migrations = []Migration{
	{1, "initial_schema", func(db *sql.DB) error { return nil }},
}

func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to apply base schema")
	}

	var current int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to read schema version")
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := m.Apply(db); err != nil {
			return dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen,
				fmt.Sprintf("migration %d (%s) failed", m.Version, m.Name))
		}
		if _, err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
			return dockerrors.Wrap(err, dockerrors.ErrCodeStorageOpen, "failed to record migration")
		}
	}
	return nil
}

// SaveState stores the latest serialized layout state for a container.
func (s *Store) SaveState(containerID, state string) error {
	_, err := s.db.Exec(`
		INSERT INTO container_state (container_id, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(container_id) DO UPDATE SET
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP`,
		containerID, state)
	if err != nil {
		return dockerrors.Wrap(err, dockerrors.ErrCodeStorageWrite, "failed to save container state").
			WithContext("container", containerID)
	}
	return nil
}

// LoadState returns the latest serialized state for a container.
// The second return is false when no state has been stored.
func (s *Store) LoadState(containerID string) (string, bool, error) {
	var state string
	err := s.db.QueryRow(
		"SELECT state FROM container_state WHERE container_id = ?",
		containerID).Scan(&state)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, dockerrors.Wrap(err, dockerrors.ErrCodeStorageRead, "failed to load container state").
			WithContext("container", containerID)
	}
	return state, true, nil
}

// DeleteState removes the stored state for a container.
func (s *Store) DeleteState(containerID string) error {
	_, err := s.db.Exec("DELETE FROM container_state WHERE container_id = ?", containerID)
	if err != nil {
		return dockerrors.Wrap(err, dockerrors.ErrCodeStorageWrite, "failed to delete container state").
			WithContext("container", containerID)
	}
	return nil
}

// SaveSnapshot stores a named layout preset, replacing any existing
// snapshot with the same name for the container.
func (s *Store) SaveSnapshot(containerID, name, state string) (*Snapshot, error) {
	snap := &Snapshot{
		ID:          ulid.Make().String(),
		ContainerID: containerID,
		Name:        name,
		State:       state,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.db.Exec(`
		INSERT INTO snapshots (id, container_id, name, state, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(container_id, name) DO UPDATE SET
			id = excluded.id,
			state = excluded.state,
			created_at = excluded.created_at`,
		snap.ID, snap.ContainerID, snap.Name, snap.State, snap.CreatedAt)
	if err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageWrite, "failed to save snapshot").
			WithContext("container", containerID).
			WithContext("name", name)
	}
	return snap, nil
}

// GetSnapshot returns a named snapshot for a container.
func (s *Store) GetSnapshot(containerID, name string) (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.db.QueryRow(`
		SELECT id, container_id, name, state, created_at
		FROM snapshots WHERE container_id = ? AND name = ?`,
		containerID, name).
		Scan(&snap.ID, &snap.ContainerID, &snap.Name, &snap.State, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, dockerrors.New(dockerrors.ErrCodeStateNotFound, "snapshot not found").
			WithContext("container", containerID).
			WithContext("name", name)
	}
	if err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageRead, "failed to load snapshot").
			WithContext("container", containerID).
			WithContext("name", name)
	}
	return snap, nil
}

// ListSnapshots returns all snapshots for a container, newest first.
func (s *Store) ListSnapshots(containerID string) ([]*Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, container_id, name, state, created_at
		FROM snapshots WHERE container_id = ?
		ORDER BY created_at DESC`, containerID)
	if err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageRead, "failed to list snapshots").
			WithContext("container", containerID)
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		snap := &Snapshot{}
		if err := rows.Scan(&snap.ID, &snap.ContainerID, &snap.Name, &snap.State, &snap.CreatedAt); err != nil {
			return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStorageRead, "failed to scan snapshot")
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// DeleteSnapshot removes a named snapshot. Returns whether it existed.
func (s *Store) DeleteSnapshot(containerID, name string) (bool, error) {
	res, err := s.db.Exec(
		"DELETE FROM snapshots WHERE container_id = ? AND name = ?",
		containerID, name)
	if err != nil {
		return false, dockerrors.Wrap(err, dockerrors.ErrCodeStorageWrite, "failed to delete snapshot").
			WithContext("container", containerID).
			WithContext("name", name)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection
func (s *Store) DB() *sql.DB {
	return s.db
}
