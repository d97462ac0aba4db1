package checklist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// timePrecision trims lock ages down to something readable in error text.
const timePrecision = time.Second

// Preferences loads the display preferences, falling back to defaults when
// none have been saved yet.
func (r *Repository) Preferences(ctx context.Context) (types.Preferences, error) {
	prefs := types.DefaultPreferences()
	if _, err := r.prefs.Get(ctx, prefsKey, &prefs); err != nil {
		return types.Preferences{}, err
	}
	return prefs, nil
}

// SavePreferences persists the display preferences.
func (r *Repository) SavePreferences(ctx context.Context, prefs types.Preferences) error {
	if prefs.Theme != "" {
		// Route through the entity so unknown themes are rejected here
		// instead of surfacing later as a bad stored value.
		check := prefs
		if err := check.SetTheme(prefs.Theme); err != nil {
			return err
		}
	}
	return r.prefs.Set(ctx, prefsKey, prefs)
}

// AcquireLock takes the advisory session lock and returns the holder token.
// Returns ErrLockHeld when another session already holds it. The lock is
// cooperative: it only guards writers that bother to acquire it.
func (r *Repository) AcquireLock(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var held types.Lock
	found, err := r.meta.Get(ctx, lockKey, &held)
	if err != nil {
		return "", err
	}
	if found {
		return "", fmt.Errorf("%w (holder %s, age %s)",
			types.ErrLockHeld, held.Holder, held.Age().Round(timePrecision))
	}

	lock := types.NewLock(uuid.NewString())
	if err := r.meta.Set(ctx, lockKey, lock); err != nil {
		return "", err
	}
	return lock.Holder, nil
}

// ReleaseLock releases the session lock held by token. Releasing an unheld
// lock succeeds; releasing a lock held by someone else returns
// ErrNotLockHolder.
func (r *Repository) ReleaseLock(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var held types.Lock
	found, err := r.meta.Get(ctx, lockKey, &held)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if held.Holder != token {
		return types.ErrNotLockHolder
	}
	return r.meta.Delete(ctx, lockKey)
}

// BreakLock removes the session lock regardless of holder. For recovering
// from a crashed session that never released.
func (r *Repository) BreakLock(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.meta.Delete(ctx, lockKey)
}
