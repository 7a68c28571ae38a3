package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the record in memory. Used with -data "" and in tests.
// Data is lost on exit.
type MemoryStore struct {
	mu sync.RWMutex
	kv map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string]string)}
}

func (s *MemoryStore) Load(ctx context.Context) (ScoreRecord, error) {
	select {
	case <-ctx.Done():
		return ScoreRecord{}, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return DecodeRecord(s.kv)
}

func (s *MemoryStore) Save(ctx context.Context, rec ScoreRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range rec.Encode() {
		s.kv[k] = v
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
