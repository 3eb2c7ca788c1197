package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats    = "stats"
	perftPrefix = "perft:"
)

// perftEntry is the stored value of one cached subtree count.
type perftEntry struct {
	Nodes    uint64    `json:"nodes"`
	StoredAt time.Time `json:"stored_at"`
}

// RunStats accumulates perft runs across invocations.
type RunStats struct {
	Runs         int            `json:"runs"`
	TotalNodes   uint64         `json:"total_nodes"`
	TotalTime    time.Duration  `json:"total_time"`
	DeepestDepth int            `json:"deepest_depth"`
	RunsByDepth  map[string]int `json:"runs_by_depth"`
	LastFEN      string         `json:"last_fen"`
	LastRun      time.Time      `json:"last_run"`
}

// NewRunStats returns empty run statistics
func NewRunStats() *RunStats {
	return &RunStats{
		RunsByDepth: make(map[string]int),
	}
}

// NodesPerSecond returns the average speed over all recorded runs.
func (s *RunStats) NodesPerSecond() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.TotalNodes) / s.TotalTime.Seconds()
}

// RunResult describes one completed perft run.
type RunResult struct {
	FEN      string
	Depth    int
	Nodes    uint64
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens or creates a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open perft cache %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func perftKey(hash uint64, depth int) []byte {
	return []byte(fmt.Sprintf("%s%016x:%d", perftPrefix, hash, depth))
}

// Lookup returns the cached node count for a position hash at depth.
func (s *Storage) Lookup(hash uint64, depth int) (uint64, bool, error) {
	var entry perftEntry
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(hash, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return 0, false, err
	}
	return entry.Nodes, found, nil
}

// Store caches the node count for a position hash at depth.
func (s *Storage) Store(hash uint64, depth int, nodes uint64) error {
	data, err := json.Marshal(perftEntry{Nodes: nodes, StoredAt: time.Now()})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(hash, depth), data)
	})
}

// CachedEntries counts the stored subtree counts.
func (s *Storage) CachedEntries() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(perftPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// SaveStats saves run statistics
func (s *Storage) SaveStats(stats *RunStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads run statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*RunStats, error) {
	stats := NewRunStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
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

// RecordRun records a completed run and updates statistics
func (s *Storage) RecordRun(result RunResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	if stats.RunsByDepth == nil {
		stats.RunsByDepth = make(map[string]int)
	}

	stats.Runs++
	stats.TotalNodes += result.Nodes
	stats.TotalTime += result.Duration
	stats.RunsByDepth[fmt.Sprint(result.Depth)]++
	if result.Depth > stats.DeepestDepth {
		stats.DeepestDepth = result.Depth
	}
	stats.LastFEN = result.FEN
	stats.LastRun = time.Now()

	return s.SaveStats(stats)
}
