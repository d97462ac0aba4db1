// Package filekv implements a file-backed host store: one file per key under a
// data directory, written atomically so a crash mid-write never leaves a
// half-serialized record behind.
package filekv

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

const fileExt = ".json"

// Store is a directory-backed types.KV. Keys map to file names; characters
// outside [A-Za-z0-9._-] are percent-style escaped so arbitrary keys stay
// round-trippable. Enumeration order is the directory listing order.
type Store struct {
	mu     sync.RWMutex
	closed bool
	dir    string
}

// Open creates the data directory if needed and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("data directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dir: dir}, nil
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
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key file: %w", err)
	}
	return string(b), true, nil
}

// Set writes value under key. The write goes through a temp file and rename so
// readers never observe a partial value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	if err := atomic.WriteFile(s.path(key), strings.NewReader(value)); err != nil {
		return fmt.Errorf("writing key file: %w", err)
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
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing key file: %w", err)
	}
	return nil
}

// Keys returns every key in directory listing order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing data dir: %w", err)
	}
	keys := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key, err := unescapeKey(strings.TrimSuffix(name, fileExt))
		if err != nil {
			// Foreign files in the data dir are not ours to report.
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Close marks the store closed. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, escapeKey(key)+fileExt)
}

// escapeKey maps a key to a safe file name. Alphanumerics, '.', '_' and '-'
// pass through; everything else becomes %XX.
func escapeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteString(strings.ToUpper(hex.EncodeToString([]byte{c})))
		}
	}
	return b.String()
}

// unescapeKey reverses escapeKey.
func unescapeKey(name string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+3 > len(name) {
			return "", fmt.Errorf("truncated escape in %q", name)
		}
		decoded, err := hex.DecodeString(name[i+1 : i+3])
		if err != nil {
			return "", fmt.Errorf("bad escape in %q: %w", name, err)
		}
		b.WriteByte(decoded[0])
		i += 2
	}
	return b.String(), nil
}

var _ types.KV = (*Store)(nil)
