// Package jsonstore persists each record collection as one JSON document on
// disk. Every mutation is a read-entire-collection, mutate, write-entire-
// collection cycle; a per-collection mutex serializes those cycles so
// concurrent requests cannot lose updates.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"blockbusted/internal/core/domain"
)

// Store manages the data directory holding one JSON file per collection
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open prepares a store rooted at dir, creating the directory if needed
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", domain.ErrStorage, err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the data directory path
func (s *Store) Dir() string {
	return s.dir
}

// guard returns the mutex serializing writers of one collection
func (s *Store) guard(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load reads an entire collection. A collection that has never been saved
// loads as an empty slice.
func Load[T any](s *Store, collection string) ([]T, error) {
	l := s.guard(collection)
	l.Lock()
	defer l.Unlock()
	return load[T](s, collection)
}

// Save replaces an entire collection on disk
func Save[T any](s *Store, collection string, records []T) error {
	l := s.guard(collection)
	l.Lock()
	defer l.Unlock()
	return save(s, collection, records)
}

// Update applies fn to the collection under its lock and writes the result
// back. fn receives the freshly loaded records and returns the replacement
// slice; returning an error leaves the file untouched.
func Update[T any](s *Store, collection string, fn func([]T) ([]T, error)) error {
	l := s.guard(collection)
	l.Lock()
	defer l.Unlock()

	records, err := load[T](s, collection)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return save(s, collection, records)
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func load[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, collection, err)
	}
	return records, nil
}

func save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, collection, err)
	}

	// Write to a temp file first so a failed write never truncates the
	// collection.
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStorage, collection, err)
	}
	return nil
}
