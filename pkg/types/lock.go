package types

import "time"

// Lock is the advisory session lock persisted under the "meta" namespace. It
// guards against two processes interleaving read-modify-write cycles on the
// same data directory. Holding it is cooperative; nothing at the KV layer
// enforces it.
type Lock struct {
	// Holder is an opaque token identifying the acquiring session.
	Holder string `json:"holder"`

	// Acquired is the acquisition time in milliseconds since epoch.
	Acquired int64 `json:"acquired"`
}

// NewLock returns a lock held by the given token, acquired now.
func NewLock(holder string) Lock {
	return Lock{
		Holder:   holder,
		Acquired: time.Now().UnixMilli(),
	}
}

// Age returns how long the lock has been held.
func (l Lock) Age() time.Duration {
	return time.Since(time.UnixMilli(l.Acquired))
}
