// Package storage persists engine options and cumulative search
// statistics in a BadgerDB key-value store under the user's config
// directory. The engine stays fully functional when the store cannot
// be opened; callers treat a nil *Store as "no persistence".
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyOptions = "options"
	keyStats   = "stats"
)

// Options holds the UCI option values a GUI may set. All of them are
// reserved by the search core; persisting them keeps a GUI's settings
// across engine restarts.
type Options struct {
	Hash     int  `json:"hash"`
	Threads  int  `json:"threads"`
	OwnBook  bool `json:"own_book"`
	Contempt int  `json:"contempt"`
}

// DefaultOptions returns the UCI defaults.
func DefaultOptions() *Options {
	return &Options{
		Hash:     128,
		Threads:  1,
		OwnBook:  false,
		Contempt: 0,
	}
}

// SearchStats accumulates totals across searches.
type SearchStats struct {
	Searches   uint64        `json:"searches"`
	TotalNodes uint64        `json:"total_nodes"`
	TotalTime  time.Duration `json:"total_time"`
	LastSearch time.Time     `json:"last_search"`
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens the store at the default database directory.
func Open() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the store at the given directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // keep stdout clean for the UCI protocol

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveOptions writes the option values.
func (s *Store) SaveOptions(opts *Options) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyOptions), data)
	})
}

// LoadOptions reads the option values, returning defaults when the
// store holds none.
func (s *Store) LoadOptions() (*Options, error) {
	opts := DefaultOptions()
	if s == nil {
		return opts, nil
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyOptions))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, opts)
		})
	})

	return opts, err
}

// LoadStats reads the cumulative statistics, empty when none stored.
func (s *Store) LoadStats() (*SearchStats, error) {
	stats := &SearchStats{}
	if s == nil {
		return stats, nil
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordSearch folds one completed search into the running totals.
func (s *Store) RecordSearch(nodes uint64, elapsed time.Duration) error {
	if s == nil {
		return nil
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Searches++
	stats.TotalNodes += nodes
	stats.TotalTime += elapsed
	stats.LastSearch = time.Now()

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}
