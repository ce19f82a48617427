package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

// dbFile is the SQLite database name inside the data directory.
const dbFile = "worksets.db"

// Schema DDL. The position column preserves listing order (0 = most
// recently defined); locators and hook sources are stored as JSON arrays.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS sets (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    locators TEXT NOT NULL,
    default_selection TEXT NOT NULL DEFAULT '',
    on_apply TEXT NOT NULL,
    on_remove TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activation (
    name TEXT PRIMARY KEY,
    handles TEXT NOT NULL
);
`

// sqliteStore persists definitions and activation state in a SQLite
// database. Unlike the JSONL backend there is no separate source of truth;
// the database file is it.
type sqliteStore struct {
	attached bool
	db       *sql.DB
}

func (s *sqliteStore) Attach(config types.Config) error {
	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFile))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

func (s *sqliteStore) Detach() error {
	if !s.attached {
		return nil
	}
	s.attached = false
	return s.db.Close()
}

func (s *sqliteStore) LoadSets() ([]Record, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		"SELECT name, locators, default_selection, on_apply, on_remove FROM sets ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var locators, onApply, onRemove string
		if err := rows.Scan(&r.Name, &locators, &r.DefaultSelection, &onApply, &onRemove); err != nil {
			return nil, fmt.Errorf("scanning set row: %w", err)
		}
		if err := json.Unmarshal([]byte(locators), &r.Locators); err != nil {
			return nil, fmt.Errorf("decoding locators for %s: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(onApply), &r.OnApply); err != nil {
			return nil, fmt.Errorf("decoding apply source for %s: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(onRemove), &r.OnRemove); err != nil {
			return nil, fmt.Errorf("decoding remove source for %s: %w", r.Name, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *sqliteStore) SaveSets(records []Record) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sets"); err != nil {
		return fmt.Errorf("clearing sets: %w", err)
	}

	for i, r := range records {
		locators, err := json.Marshal(emptyIfNil(r.Locators))
		if err != nil {
			return fmt.Errorf("encoding locators for %s: %w", r.Name, err)
		}
		onApply, err := json.Marshal(emptyIfNil(r.OnApply))
		if err != nil {
			return fmt.Errorf("encoding apply source for %s: %w", r.Name, err)
		}
		onRemove, err := json.Marshal(emptyIfNil(r.OnRemove))
		if err != nil {
			return fmt.Errorf("encoding remove source for %s: %w", r.Name, err)
		}

		_, err = tx.Exec(
			"INSERT INTO sets (name, position, locators, default_selection, on_apply, on_remove) VALUES (?, ?, ?, ?, ?, ?)",
			r.Name, i, string(locators), r.DefaultSelection, string(onApply), string(onRemove),
		)
		if err != nil {
			return fmt.Errorf("inserting set %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

func (s *sqliteStore) LoadActivation() (map[string][]types.Handle, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT name, handles FROM activation")
	if err != nil {
		return nil, fmt.Errorf("querying activation: %w", err)
	}
	defer rows.Close()

	state := make(map[string][]types.Handle)
	for rows.Next() {
		var name, handlesJSON string
		if err := rows.Scan(&name, &handlesJSON); err != nil {
			return nil, fmt.Errorf("scanning activation row: %w", err)
		}
		var handles []types.Handle
		if err := json.Unmarshal([]byte(handlesJSON), &handles); err != nil {
			return nil, fmt.Errorf("decoding handles for %s: %w", name, err)
		}
		state[name] = handles
	}
	return state, rows.Err()
}

func (s *sqliteStore) SaveActivation(state map[string][]types.Handle) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM activation"); err != nil {
		return fmt.Errorf("clearing activation: %w", err)
	}

	for name, handles := range state {
		handlesJSON, err := json.Marshal(emptyIfNil(handles))
		if err != nil {
			return fmt.Errorf("encoding handles for %s: %w", name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO activation (name, handles) VALUES (?, ?)",
			name, string(handlesJSON),
		); err != nil {
			return fmt.Errorf("inserting activation for %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// emptyIfNil keeps JSON columns as [] rather than null for nil slices.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
