package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/savora-app/savora/internal/core/port"
)

var _ port.KeyValueStore = (*LevelDB)(nil)
var _ port.KeyValueStore = (*MemoryKV)(nil)

// LevelDB is the on-disk key-value store backing user-owned state.
type LevelDB struct {
	db *leveldb.DB
}

func OpenLevelDB(path string) (LevelDB, error) {
	const op = "OpenLevelDB"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return LevelDB{}, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("key-value store is open", "path", path)
	return LevelDB{db}, nil
}

func (s LevelDB) Get(key string) ([]byte, bool, error) {
	const op = "LevelDB.Get"

	value, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

func (s LevelDB) Set(key string, value []byte) error {
	const op = "LevelDB.Set"

	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s LevelDB) Delete(key string) error {
	const op = "LevelDB.Delete"

	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s LevelDB) Close() {
	const op = "LevelDB.Close"
	log := slog.With("op", op)

	log.Info("closing key-value store...")
	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("key-value store is closed")
}

// MemoryKV keeps blobs in a map. Used by tests and ephemeral runs.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (s *MemoryKV) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (s *MemoryKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
