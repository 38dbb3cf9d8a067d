// Package save persists the session-best record across runs
// Storage degrades gracefully: with no manager the store works in memory
// only and Save is a silent no-op
package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "records"
	recordProperty = "best"
)

// Record is the persisted session-best snapshot
type Record struct {
	HighScore int `yaml:"highScore"`
	HighWave  int `yaml:"highWave"`
}

// Store loads and saves the best record through gdata
// A nil manager puts the store in memory-only mode
type Store struct {
	manager *gdata.Manager
	record  Record
}

// Open creates the platform data manager for the game
// Callers may pass the error through NewStore's nil-manager degradation
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: "nova-strike"})
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	return m, nil
}

// NewStore wraps a manager and loads any existing record
// manager may be nil for memory-only operation
func NewStore(manager *gdata.Manager) (*Store, error) {
	s := &Store{manager: manager}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Store) load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	s.record = rec
	return nil
}

// Best returns the current best record
func (s *Store) Best() Record {
	return s.record
}

// Submit updates the record if the run beat it and persists the result
// Returns true when a new best was set
func (s *Store) Submit(score, wave int) (bool, error) {
	improved := false
	if score > s.record.HighScore {
		s.record.HighScore = score
		improved = true
	}
	if wave > s.record.HighWave {
		s.record.HighWave = wave
		improved = true
	}
	if !improved {
		return false, nil
	}
	return true, s.save()
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}
