package filekv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ticklist/internal/kvtest"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

func TestConformance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) types.KV {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestOpenRejectsEmptyDir(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "checklist-1", `{"id":1}`))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get(ctx, "checklist-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, got)
}

func TestKeyEscaping(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "plain key", key: "checklist-42"},
		{name: "spaces", key: "my key"},
		{name: "path separators", key: "a/b\\c"},
		{name: "dots only", key: ".."},
		{name: "percent sign", key: "50%"},
		{name: "unicode", key: "липс-ключ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(t.TempDir())
			require.NoError(t, err)
			defer s.Close()
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, tt.key, "v"))
			got, ok, err := s.Get(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "v", got)

			keys, err := s.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.key}, keys, "key must round-trip through the file name")
		})
	}
}

func TestEscapedNamesStayInsideDir(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "../../escape", "v"))

	// The slashes were escaped, so the only file lives inside dir.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(filepath.Dir(dir)), "escape.json"))
}

func TestKeysIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "mine", "v"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("not ours"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, keys)
}
