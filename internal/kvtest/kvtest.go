// Package kvtest provides a conformance suite run against every host store
// implementation, so the KV contract stays uniform across backends.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Factory returns a fresh, empty host store for one subtest.
type Factory func(t *testing.T) types.KV

// Run exercises the KV contract against stores built by the factory.
func Run(t *testing.T, factory Factory) {
	t.Run("missing key is not an error", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()

		_, ok, err := kv.Get(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "alpha", `{"v":1}`))
		got, ok, err := kv.Get(ctx, "alpha")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"v":1}`, got)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "alpha", "old"))
		require.NoError(t, kv.Set(ctx, "alpha", "new"))
		got, ok, err := kv.Get(ctx, "alpha")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "alpha", "v"))
		require.NoError(t, kv.Delete(ctx, "alpha"))
		require.NoError(t, kv.Delete(ctx, "alpha"), "deleting a missing key must succeed")

		_, ok, err := kv.Get(ctx, "alpha")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys reflects live entries", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a", "1"))
		require.NoError(t, kv.Set(ctx, "b", "2"))
		require.NoError(t, kv.Set(ctx, "c", "3"))
		require.NoError(t, kv.Delete(ctx, "b"))

		keys, err := kv.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "c"}, keys)
	})

	t.Run("empty store has no keys", func(t *testing.T) {
		kv := factory(t)
		defer kv.Close()

		keys, err := kv.Keys(context.Background())
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("operations after close fail", func(t *testing.T) {
		kv := factory(t)
		require.NoError(t, kv.Close())
		require.NoError(t, kv.Close(), "close must be idempotent")

		ctx := context.Background()
		_, _, err := kv.Get(ctx, "k")
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.ErrorIs(t, kv.Set(ctx, "k", "v"), types.ErrStoreClosed)
		assert.ErrorIs(t, kv.Delete(ctx, "k"), types.ErrStoreClosed)
		_, err = kv.Keys(ctx)
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})
}
