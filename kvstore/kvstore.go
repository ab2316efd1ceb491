// Package kvstore implements durable small-value storage on BoltDB.
//
// It backs the favorites list and the persisted last-search query. When
// opened without a path it runs memory-only, which tests rely on.
package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// Store is a flat key/value store with write-through persistence.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory mirror; reads never touch disk after first load
	mem map[string]string
}

// Open opens (or creates) the store at path. An empty path yields a
// memory-only store with no persistence.
func Open(path string) (*Store, error) {
	s := &Store{mem: make(map[string]string)}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	// Load everything once; the store holds small values only
	err = db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).ForEach(func(k, v []byte) error {
			s.mem[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.mem[key]
	return v, ok
}

// Set stores value under key, writing through to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.mem[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), []byte(value))
	})
}

// Remove deletes key, writing through to disk. Removing an absent key is
// not an error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete([]byte(key))
	})
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
