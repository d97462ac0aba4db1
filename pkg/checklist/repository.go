// Package checklist implements the repository service over the namespaced
// store: record lifecycle, id allocation, optimistic concurrency, display
// preferences, and the advisory session lock. UI surfaces talk to a
// Repository instance passed in explicitly; there is no ambient singleton.
package checklist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/mesh-intelligence/ticklist/pkg/store"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Namespaces carved out of the shared host store. Records, preferences, and
// bookkeeping never collide because each goes through its own adapter.
const (
	RecordNamespace = "checklist"
	PrefsNamespace  = "prefs"
	MetaNamespace   = "meta"
)

// Keys inside the prefs and meta namespaces.
const (
	prefsKey = "display"
	seqKey   = "seq"
	lockKey  = "lock"
)

// saveRetries bounds how often Update re-runs its mutation after losing a
// revision race.
const saveRetries = 3

// Repository owns checklist records persisted in a host store. Its mutex
// serializes in-process read-modify-write cycles; cross-process writers are
// covered by the advisory session lock.
type Repository struct {
	mu      sync.Mutex
	records *store.Store
	prefs   *store.Store
	meta    *store.Store
}

// NewRepository returns a repository over the given host store.
func NewRepository(kv types.KV) *Repository {
	return &Repository{
		records: store.New(kv, RecordNamespace),
		prefs:   store.New(kv, PrefsNamespace),
		meta:    store.New(kv, MetaNamespace),
	}
}

// Create validates the title, allocates the next id from the persisted
// sequence, stamps the creation time, and persists the new record.
func (r *Repository) Create(ctx context.Context, title string, tasks []string) (*types.ChecklistRecord, error) {
	rec := types.NewChecklistRecord(title, tasks)
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating id: %w", err)
	}
	rec.ID = id
	if err := r.records.Set(ctx, recordKey(id), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the record with the given id.
// Returns ErrNotFound when no such record exists.
func (r *Repository) Get(ctx context.Context, id int64) (*types.ChecklistRecord, error) {
	var rec types.ChecklistRecord
	found, err := r.records.Get(ctx, recordKey(id), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrNotFound
	}
	return &rec, nil
}

// List loads every checklist record, ordered by creation time (ties broken by
// id). The host store's key enumeration order is not stable across backends,
// so List imposes its own.
func (r *Repository) List(ctx context.Context) ([]*types.ChecklistRecord, error) {
	keys, err := r.records.Keys(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]*types.ChecklistRecord, 0, len(keys))
	for _, key := range keys {
		var rec types.ChecklistRecord
		found, err := r.records.Get(ctx, key, &rec)
		if err != nil {
			return nil, err
		}
		if !found {
			// Deleted between Keys and Get; races like this lose quietly.
			continue
		}
		recs = append(recs, &rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Time != recs[j].Time {
			return recs[i].Time < recs[j].Time
		}
		return recs[i].ID < recs[j].ID
	})
	return recs, nil
}

// Save persists an existing record. The stored revision must match rec.Rev;
// otherwise another write got there first and ErrRevisionConflict is
// returned. On success rec.Rev carries the new revision.
func (r *Repository) Save(ctx context.Context, rec *types.ChecklistRecord) error {
	if rec.ID <= 0 {
		return types.ErrInvalidID
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var stored types.ChecklistRecord
	found, err := r.records.Get(ctx, recordKey(rec.ID), &stored)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNotFound
	}
	if stored.Rev != rec.Rev {
		return types.ErrRevisionConflict
	}

	rec.Rev++
	if err := r.records.Set(ctx, recordKey(rec.ID), rec); err != nil {
		rec.Rev--
		return err
	}
	return nil
}

// Update runs a load-mutate-save cycle for the record with the given id,
// retrying the whole cycle a bounded number of times when a concurrent write
// wins the revision race. It returns the record as persisted.
func (r *Repository) Update(ctx context.Context, id int64, fn func(*types.ChecklistRecord) error) (*types.ChecklistRecord, error) {
	var err error
	for range saveRetries {
		var rec *types.ChecklistRecord
		rec, err = r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err = fn(rec); err != nil {
			return nil, err
		}
		if err = r.Save(ctx, rec); err == nil {
			return rec, nil
		}
		if !errors.Is(err, types.ErrRevisionConflict) {
			return nil, err
		}
	}
	return nil, err
}

// Delete removes the record with the given id. Succeeds whether or not the
// record existed, per the adapter's delete contract.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.records.Delete(ctx, recordKey(id))
}

// nextID increments and persists the monotonic id sequence. The sequence
// lives in the meta namespace so it never shows up when checklist keys are
// enumerated. Caller holds r.mu.
func (r *Repository) nextID(ctx context.Context) (int64, error) {
	var seq int64
	if _, err := r.meta.Get(ctx, seqKey, &seq); err != nil {
		return 0, err
	}
	seq++
	if err := r.meta.Set(ctx, seqKey, seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func recordKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
