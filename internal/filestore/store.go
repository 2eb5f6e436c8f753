package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store owns the in-memory copy of the database file. Reads share a read lock; every write
// works on a clone that is persisted before it replaces the in-memory document.
type Store struct {
	path string

	mu  sync.RWMutex
	doc *document
}

// New opens the database file at path, creating an empty one when it does not exist.
func New(path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDocument(path, newDocument()); err != nil {
			return nil, fmt.Errorf("failed to create database file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat database file: %w", err)
	}

	s := &Store{path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Load replaces the in-memory document with the file contents.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := readDocument(s.path)
	if err != nil {
		return err
	}

	s.doc = doc
	return nil
}

// Save writes the in-memory document to the file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(s.path, s.doc)
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) read(fn func(doc *document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.doc)
}

func (s *Store) write(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := writeDocument(s.path, next); err != nil {
		return err
	}

	s.doc = next
	return nil
}

func readDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}

	doc := newDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse database file %s: %w", path, err)
	}
	doc.normalize()

	return doc, nil
}

// writeDocument replaces the file through a rename so a crash never leaves half a file behind.
func writeDocument(path string, doc *document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace database file: %w", err)
	}

	return nil
}
