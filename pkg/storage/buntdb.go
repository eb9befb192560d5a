// Package storage keeps named datasets in a BuntDB file or in memory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/tidwall/buntdb"
)

var (
	ErrNotFound    = errors.New("dataset not found")
	ErrInvalidName = errors.New("invalid dataset name")
)

const (
	keyPrefix  = "dataset:"
	savedIndex = "saved_index"
)

// Dataset is a stored set of series
type Dataset struct {
	Name    string        `json:"name"`
	SavedAt time.Time     `json:"saved_at"`
	Series  []core.Series `json:"series"`
}

// Store persists datasets by name
type Store struct {
	db  *buntdb.DB
	now func() time.Time
}

// FromMemory creates an in-memory store
func FromMemory() (*Store, error) {
	return NewStore(":memory:")
}

// FromFile creates a file-based store
func FromFile(file string) (*Store, error) {
	return NewStore(file)
}

// NewStore opens a BuntDB database; ":memory:" keeps it in memory
func NewStore(sourceFile string) (*Store, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(savedIndex, keyPrefix+"*", buntdb.IndexJSON("saved_at"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Save stores the series under name, replacing a previous dataset
func (s *Store) Save(name string, source []core.Series) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	content, err := json.Marshal(Dataset{Name: name, SavedAt: s.now().UTC(), Series: source})
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	return s.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(keyPrefix+name, string(content), nil); err != nil {
			return fmt.Errorf("failed to store dataset: %w", err)
		}
		return nil
	})
}

// Load returns the series stored under name
func (s *Store) Load(name string) ([]core.Series, error) {
	var dataset Dataset
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(keyPrefix + name)
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &dataset)
	})
	if err != nil {
		return nil, err
	}
	return dataset.Series, nil
}

// List returns the stored datasets, oldest first
func (s *Store) List() ([]Dataset, error) {
	datasets := make([]Dataset, 0)
	err := s.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Ascend(savedIndex, func(_, value string) bool {
			var dataset Dataset
			if decodeErr = json.Unmarshal([]byte(value), &dataset); decodeErr != nil {
				return false
			}
			datasets = append(datasets, dataset)
			return true
		})
		if err != nil {
			return fmt.Errorf("failed to iterate over datasets: %w", err)
		}
		return decodeErr
	})
	if err != nil {
		return nil, err
	}
	return datasets, nil
}

// Delete removes the dataset stored under name
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(keyPrefix + name)
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return err
	})
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
