// Package progress remembers which level the player last selected.
package progress

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "current"
)

// Record identifies a level by index and by map checksum, so a changed level
// file does not resume on the wrong map.
type Record struct {
	Level    int    `yaml:"level"`
	Checksum uint64 `yaml:"checksum"`
}

// Backend is the subset of *gdata.Manager the store needs.
type Backend interface {
	ObjectPropExists(object, property string) bool
	LoadObjectProp(object, property string) ([]byte, error)
	SaveObjectProp(object, property string, data []byte) error
}

// Store persists a Record. A Store with a nil backend keeps nothing and
// never fails.
type Store struct {
	backend Backend
}

// Open opens platform storage for appName.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data for %s: %w", appName, err)
	}
	return &Store{backend: manager}, nil
}

// NewStore wraps an existing backend. A nil backend yields a no-op store.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the saved record and whether one exists.
func (s *Store) Load() (Record, bool, error) {
	if s == nil || s.backend == nil {
		return Record{}, false, nil
	}
	if !s.backend.ObjectPropExists(progressObject, progressProperty) {
		return Record{}, false, nil
	}

	data, err := s.backend.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return Record{}, false, fmt.Errorf("load progress: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("decode progress: %w", err)
	}
	return rec, true, nil
}

// Save writes rec.
func (s *Store) Save(rec Record) error {
	if s == nil || s.backend == nil {
		return nil
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.backend.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
