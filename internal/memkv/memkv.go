// Package memkv implements an in-memory host store modeled on the browser's
// local storage: synchronous, flat string-to-string, with an optional byte
// quota so write-capacity failures can be provoked in tests.
package memkv

import (
	"context"
	"sync"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Store is an in-memory types.KV. Enumeration order is insertion order, which
// matches how the reference host store hands back keys.
type Store struct {
	mu     sync.RWMutex
	closed bool
	data   map[string]string
	order  []string // insertion order of live keys
	used   int64    // total bytes of keys+values currently stored
	quota  int64    // 0 means unlimited
}

// New returns an empty store with no quota.
func New() *Store {
	return NewWithQuota(0)
}

// NewWithQuota returns an empty store that refuses writes once the total size
// of stored keys and values would exceed quota bytes. A zero quota disables
// the cap.
func NewWithQuota(quota int64) *Store {
	return &Store{
		data:  make(map[string]string),
		quota: quota,
	}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, types.ErrStoreClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set writes value under key. Returns ErrQuotaExceeded and leaves the previous
// value intact when the write would push the store past its quota.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	prev, exists := s.data[key]
	next := s.used + int64(len(value))
	if exists {
		next -= int64(len(prev))
	} else {
		next += int64(len(key))
	}
	if s.quota > 0 && next > s.quota {
		return types.ErrQuotaExceeded
	}

	s.data[key] = value
	s.used = next
	if !exists {
		s.order = append(s.order, key)
	}
	return nil
}

// Delete removes key. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil
	}
	delete(s.data, key)
	s.used -= int64(len(key) + len(v))
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Keys returns every key in insertion order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys, nil
}

// Close marks the store closed. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ types.KV = (*Store)(nil)
