// Package kv exposes the factory for opening host stores while keeping the
// backend implementations internal.
//
// Example:
//
//	hs, err := kv.Open(types.Config{
//	    Backend: types.BackendFile,
//	    DataDir: ".ticklist-db",
//	})
//	defer hs.Close()
package kv

import (
	"fmt"

	"github.com/mesh-intelligence/ticklist/internal/filekv"
	"github.com/mesh-intelligence/ticklist/internal/memkv"
	"github.com/mesh-intelligence/ticklist/internal/sqlitekv"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Open validates config and returns the host store it describes.
func Open(cfg types.Config) (types.KV, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendMemory:
		return memkv.NewWithQuota(cfg.Quota), nil
	case types.BackendFile:
		return filekv.Open(cfg.DataDir)
	case types.BackendSQLite:
		return sqlitekv.Open(cfg.DataDir)
	default:
		// Validate covers this; kept so the switch stays total.
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
