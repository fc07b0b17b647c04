package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// GraphRepo is a loam repository of wire JSON graph documents living in a
// test's temporary directory.
type GraphRepo struct {
	Dir  string
	Repo core.Repository
}

// SetupGraphRepo initializes a loam repository in a temporary directory and
// writes each graph as <name>.json in canonical indented form. It fails the
// test immediately on error.
func SetupGraphRepo(t *testing.T, graphs map[string]*domain.Graph, opts ...loam.Option) *GraphRepo {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(dir, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	r := &GraphRepo{Dir: dir, Repo: repo}
	for name, g := range graphs {
		r.WriteGraph(t, name, g)
	}
	return r
}

// WriteGraph encodes g and stores it as <name>.json.
func (r *GraphRepo) WriteGraph(t *testing.T, name string, g *domain.Graph) {
	t.Helper()
	data, err := codec.MarshalIndent(g, "  ")
	require.NoError(t, err)
	r.WriteRaw(t, name+".json", string(data))
}

// WriteRaw stores content verbatim under file, for documents the encoder
// would never produce.
func (r *GraphRepo) WriteRaw(t *testing.T, file, content string) {
	t.Helper()
	path := filepath.Join(r.Dir, file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
