package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/adapters/file"
	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

var _ ports.GraphStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	ports.RunGraphStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_WritesWireJSON(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sample", testutils.SampleGraph()))

	data, err := os.ReadFile(filepath.Join(dir, "sample.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"first": {`)
	assert.Contains(t, string(data), `"Node": {`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")

	loaded, err := store.Load(ctx, "sample")
	require.NoError(t, err)
	assert.Equal(t, testutils.SampleGraph(), loaded)
}

func TestFileStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-a-123.json"), []byte("{}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0o644))

	names, err := file.New(dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestFileStore_ListMissingDir(t *testing.T) {
	names, err := file.New(filepath.Join(t.TempDir(), "absent")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"first":`), 0o644))

	_, err := file.New(dir).Load(context.Background(), "bad")
	assert.ErrorContains(t, err, "graph bad")
}
