// Package store implements the namespaced storage adapter: JSON-encoded CRUD
// over any types.KV host store, with all keys living under a fixed prefix.
//
// The adapter performs no caching, no batching, and no validation beyond JSON
// (de)serialization. Malformed stored JSON propagates to the caller as an
// unmarshal error and is never repaired; a write the host store refuses
// (quota, I/O) propagates untouched. A missing key on Get is not an error.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Store namespaces and JSON-encodes records over a host KV store. Two Stores
// with different namespaces over the same KV never see each other's keys.
type Store struct {
	kv     types.KV
	prefix string
}

// New returns a Store scoped to the given namespace. The namespace is fixed
// for the Store's lifetime; full host keys take the form "<namespace>-<key>".
func New(kv types.KV, namespace string) *Store {
	return &Store{
		kv:     kv,
		prefix: namespace + "-",
	}
}

// Namespace returns the namespace the Store was constructed with.
func (s *Store) Namespace() string {
	return strings.TrimSuffix(s.prefix, "-")
}

// Get looks up key within the namespace and unmarshals the stored JSON into v.
// Returns (false, nil) when the key is absent. A parse failure on present data
// is returned to the caller as-is; corrupt records are the caller's problem.
func (s *Store) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, s.prefix+key)
	if err != nil {
		return false, fmt.Errorf("reading %s%s: %w", s.prefix, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("parsing %s%s: %w", s.prefix, key, err)
	}
	return true, nil
}

// Set JSON-serializes v and writes it under key within the namespace,
// overwriting any previous value.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s%s: %w", s.prefix, key, err)
	}
	if err := s.kv.Set(ctx, s.prefix+key, string(raw)); err != nil {
		return fmt.Errorf("writing %s%s: %w", s.prefix, key, err)
	}
	return nil
}

// Delete removes key from the namespace. Succeeds whether or not the key
// existed.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, s.prefix+key); err != nil {
		return fmt.Errorf("deleting %s%s: %w", s.prefix, key, err)
	}
	return nil
}

// Keys scans the host store, filters to keys under the namespace, strips the
// prefix, and returns the remaining suffixes in the host store's native
// enumeration order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	all, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	keys := []string{}
	for _, k := range all {
		if strings.HasPrefix(k, s.prefix) {
			keys = append(keys, strings.TrimPrefix(k, s.prefix))
		}
	}
	return keys, nil
}
