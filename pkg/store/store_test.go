package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ticklist/internal/memkv"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

func TestRoundTrip(t *testing.T) {
	s := New(memkv.New(), "checklist")
	ctx := context.Background()

	want := types.ChecklistRecord{
		ID:       1,
		Title:    "Groceries",
		Time:     1000,
		Tasks:    []string{"Milk", "Eggs"},
		Done:     []string{},
		Complete: false,
	}
	require.NoError(t, s.Set(ctx, "1", &want))

	var got types.ChecklistRecord
	found, err := s.Get(ctx, "1", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got, "set followed by get must yield a deep-equal record")
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	s := New(memkv.New(), "checklist")

	var got types.ChecklistRecord
	found, err := s.Get(context.Background(), "42", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteThenGet(t *testing.T) {
	s := New(memkv.New(), "checklist")
	ctx := context.Background()

	t.Run("existing key", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "1", map[string]any{"id": 1}))
		require.NoError(t, s.Delete(ctx, "1"))

		var got map[string]any
		found, err := s.Get(ctx, "1", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("missing key", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "never-set"))

		var got map[string]any
		found, err := s.Get(ctx, "never-set", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestKeysTracksSetAndDelete(t *testing.T) {
	s := New(memkv.New(), "checklist")
	ctx := context.Background()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "1", map[string]any{"title": "Groceries"}))
	require.NoError(t, s.Set(ctx, "2", map[string]any{"title": "Errands"}))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, keys)

	require.NoError(t, s.Delete(ctx, "1"))
	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, keys)
}

func TestNamespaceIsolation(t *testing.T) {
	kv := memkv.New()
	records := New(kv, "checklist")
	prefs := New(kv, "prefs")
	ctx := context.Background()

	require.NoError(t, records.Set(ctx, "1", map[string]any{"title": "Groceries"}))
	require.NoError(t, prefs.Set(ctx, "display", map[string]any{"theme": "dark"}))

	recordKeys, err := records.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, recordKeys)

	prefKeys, err := prefs.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"display"}, prefKeys)

	// The underlying store carries both, fully prefixed.
	hostKeys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"checklist-1", "prefs-display"}, hostKeys)
}

func TestPrefixMatchingIsExact(t *testing.T) {
	kv := memkv.New()
	ctx := context.Background()

	// A key that shares a namespace as substring must not leak in.
	require.NoError(t, kv.Set(ctx, "checklists-backup", "x"))
	require.NoError(t, kv.Set(ctx, "checklist-1", "{}"))

	s := New(kv, "checklist")
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, keys)
}

func TestGetCorruptJSON(t *testing.T) {
	kv := memkv.New()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "checklist-1", "{not json"))

	s := New(kv, "checklist")
	var got map[string]any
	_, err := s.Get(ctx, "1", &got)
	assert.Error(t, err, "corrupt data propagates as a parse error, never repaired")
}

func TestSetQuotaError(t *testing.T) {
	s := New(memkv.NewWithQuota(16), "checklist")
	ctx := context.Background()

	err := s.Set(ctx, "1", map[string]any{"title": "definitely too large for the quota"})
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)
}

func TestNamespace(t *testing.T) {
	s := New(memkv.New(), "checklist")
	assert.Equal(t, "checklist", s.Namespace())
}
