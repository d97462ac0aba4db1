// Shared helpers for ticklist CLI commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/kv"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// openRepo resolves the data directory, opens the configured host store, and
// returns a repository over it. The caller must Close the returned KV.
func openRepo() (*checklist.Repository, types.KV, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: resolveBackend(),
		DataDir: dataDir,
		Quota:   configQuota,
	}

	hostStore, err := kv.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	return checklist.NewRepository(hostStore), hostStore, nil
}

// withRepo opens the repository, runs fn, and closes the host store.
// Read-only commands go through this.
func withRepo(fn func(ctx context.Context, repo *checklist.Repository) error) error {
	repo, hostStore, err := openRepo()
	if err != nil {
		return err
	}
	defer hostStore.Close()
	return fn(context.Background(), repo)
}

// withLockedRepo is withRepo plus the advisory session lock around fn.
// Mutating commands go through this so two ticklist processes do not
// interleave read-modify-write cycles on the same data directory.
func withLockedRepo(fn func(ctx context.Context, repo *checklist.Repository) error) error {
	return withRepo(func(ctx context.Context, repo *checklist.Repository) error {
		token, err := repo.AcquireLock(ctx)
		if err != nil {
			if errors.Is(err, types.ErrLockHeld) {
				return fmt.Errorf("%w; run \"ticklist unlock\" if the other session crashed", err)
			}
			return err
		}
		defer func() {
			if rerr := repo.ReleaseLock(ctx, token); rerr != nil {
				fmt.Fprintln(os.Stderr, "ticklist: release lock:", rerr)
			}
		}()
		return fn(ctx, repo)
	})
}

// parseID parses a checklist id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
