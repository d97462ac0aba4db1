package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ticklist/internal/kvtest"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

func TestConformance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) types.KV {
		return New()
	})
}

func TestKeysInsertionOrder(t *testing.T) {
	kv := New()
	defer kv.Close()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "c", "3"))
	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, keys, "enumeration follows insertion order")

	// Overwriting does not move a key.
	require.NoError(t, kv.Set(ctx, "a", "changed"))
	keys, err = kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestQuota(t *testing.T) {
	t.Run("write past quota is refused", func(t *testing.T) {
		kv := NewWithQuota(10)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", "12345"))
		err := kv.Set(ctx, "big", "1234567890")
		assert.ErrorIs(t, err, types.ErrQuotaExceeded)

		// The refused write left the store untouched.
		got, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "12345", got)
		_, ok, err = kv.Get(ctx, "big")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("overwrite counts the delta not the sum", func(t *testing.T) {
		kv := NewWithQuota(8)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", "1234567"))
		// Same key, same size: no growth, must succeed.
		require.NoError(t, kv.Set(ctx, "k", "abcdefg"))
		// Same key, smaller: frees room.
		require.NoError(t, kv.Set(ctx, "k", "ab"))
	})

	t.Run("delete frees quota", func(t *testing.T) {
		kv := NewWithQuota(10)
		defer kv.Close()
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", "123456789"))
		require.NoError(t, kv.Delete(ctx, "k"))
		require.NoError(t, kv.Set(ctx, "j", "123456789"))
	})

	t.Run("zero quota is unlimited", func(t *testing.T) {
		kv := NewWithQuota(0)
		defer kv.Close()
		ctx := context.Background()

		for i := 0; i < 100; i++ {
			require.NoError(t, kv.Set(ctx, string(rune('a'+i%26))+"x", "some value that adds up"))
		}
	})
}
