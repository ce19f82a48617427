package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

// JSONL file names inside the data directory.
const (
	setsFile       = "sets.jsonl"
	activationFile = "activation.jsonl"
)

// jsonlStore persists definitions as one JSON record per line, written
// atomically. The file order is the listing order (most recently defined
// first).
type jsonlStore struct {
	attached bool
	dataDir  string
}

// activationRecord is one activation.jsonl line: an active set name and its
// recorded handles in locator order.
type activationRecord struct {
	Name    string         `json:"name"`
	Handles []types.Handle `json:"handles"`
}

func (s *jsonlStore) Attach(config types.Config) error {
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

	s.dataDir = dataDir
	s.attached = true
	return nil
}

func (s *jsonlStore) Detach() error {
	s.attached = false
	return nil
}

func (s *jsonlStore) LoadSets() ([]Record, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	raw, err := readJSONL(filepath.Join(s.dataDir, setsFile))
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for _, line := range raw {
		var r Record
		if err := json.Unmarshal(line, &r); err != nil || r.Name == "" {
			// Skip records that do not look like set definitions.
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *jsonlStore) SaveSets(records []Record) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	raw := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling set %s: %w", r.Name, err)
		}
		raw = append(raw, line)
	}
	return writeJSONL(filepath.Join(s.dataDir, setsFile), raw)
}

func (s *jsonlStore) LoadActivation() (map[string][]types.Handle, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	raw, err := readJSONL(filepath.Join(s.dataDir, activationFile))
	if err != nil {
		return nil, err
	}

	state := make(map[string][]types.Handle, len(raw))
	for _, line := range raw {
		var r activationRecord
		if err := json.Unmarshal(line, &r); err != nil || r.Name == "" {
			continue
		}
		state[r.Name] = r.Handles
	}
	return state, nil
}

func (s *jsonlStore) SaveActivation(state map[string][]types.Handle) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	raw := make([]json.RawMessage, 0, len(state))
	for name, handles := range state {
		line, err := json.Marshal(activationRecord{Name: name, Handles: handles})
		if err != nil {
			return fmt.Errorf("marshaling activation for %s: %w", name, err)
		}
		raw = append(raw, line)
	}
	return writeJSONL(filepath.Join(s.dataDir, activationFile), raw)
}
