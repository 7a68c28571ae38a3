// internal/storage/badger_store.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

const keyPrefix = "score/"

// ErrStoreClosed is returned after Close.
var ErrStoreClosed = errors.New("score store is closed")

// BadgerStore keeps every record key as its own badger key under keyPrefix.
type BadgerStore struct {
	db      *badger.DB
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerStore opens (or creates) the store below dataPath.
func NewBadgerStore(dataPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(filepath.Join(dataPath, "scores"))
	opts.Logger = nil
	return openBadger(opts)
}

// NewInMemoryBadgerStore runs badger without touching the disk.
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}
	return &BadgerStore{db: db, isReady: true}, nil
}

func (s *BadgerStore) Load(ctx context.Context) (ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return ScoreRecord{}, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.isReady {
		return ScoreRecord{}, ErrStoreClosed
	}

	kv := make(map[string]string)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				kv[key] = string(val)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("read score record: %w", err)
	}
	return DecodeRecord(kv)
}

func (s *BadgerStore) Save(ctx context.Context, rec ScoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.isReady {
		return ErrStoreClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for k, v := range rec.Encode() {
			if err := txn.Set([]byte(keyPrefix+k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write score record: %w", err)
	}
	return nil
}

// Get reads one raw key. The bool is false when the key was never written.
func (s *BadgerStore) Get(key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.isReady {
		return "", false, ErrStoreClosed
	}

	var out string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

func (s *BadgerStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.isReady {
		return nil
	}
	s.isReady = false
	return s.db.Close()
}
