package types

import (
	"context"
	"errors"
)

// KV is the host key-value store boundary: the flat get/set/delete/enumerate
// primitives that the namespaced store adapter builds on. Implementations are
// free to be in-process or remote; every method takes a context so call sites
// survive the swap to a genuinely asynchronous store.
type KV interface {
	// Get returns the raw value stored under key. A missing key is not an
	// error: ok is false and err is nil.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, overwriting any previous value. A store
	// that cannot accept the write (quota, I/O) returns an error and leaves
	// the previous value intact.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error

	// Keys enumerates every key in the store, in the store's native
	// enumeration order. The order is not guaranteed stable across
	// implementations.
	Keys(ctx context.Context) ([]string, error)

	// Close releases backend resources. Idempotent; operations after Close
	// return ErrStoreClosed.
	Close() error
}

// KV operation errors.
var (
	ErrStoreClosed   = errors.New("store is closed")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Record and entity errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record id")
	ErrInvalidTitle  = errors.New("title must not be empty")
	ErrInvalidTask   = errors.New("task must not be empty")
	ErrDuplicateTask = errors.New("task already exists")
	ErrTaskNotFound  = errors.New("task not found")
	ErrDoneNotSubset = errors.New("done contains a task not in tasks")
	ErrInvalidTheme  = errors.New("invalid theme name")
)

// Concurrency and locking errors.
var (
	ErrRevisionConflict = errors.New("record was modified by a concurrent write")
	ErrLockHeld         = errors.New("lock is held")
	ErrNotLockHolder    = errors.New("caller is not the lock holder")
)
