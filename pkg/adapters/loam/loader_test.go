package loam

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

const flowDoc = `{
  "context": {"lang": "en"},
  "preserve_context": true,
  "first": {"Node": {
    "id": "start",
    "executor": {"ContextMut": []},
    "destination": [{"next": {"Node": "end"}, "condition": "True"}]
  }},
  "nodes": [
    {"Node": {"id": "end", "executor": {"ContextMut": []}, "destination": [{"next": {"ExitOk": []}, "condition": "True"}]}}
  ]
}`

func writeDocs(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestLoader_Contract(t *testing.T) {
	want, err := codec.Unmarshal([]byte(flowDoc))
	require.NoError(t, err)

	r := testutils.SetupGraphRepo(t, map[string]*domain.Graph{"flow": want})

	ports.RunGraphSourceContract(t, New(r.Repo), map[string]*domain.Graph{"flow": want})
}

func TestLoader_SampleGraphSurvives(t *testing.T) {
	r := testutils.SetupGraphRepo(t, map[string]*domain.Graph{"sample": testutils.SampleGraph()})

	data, err := codec.Marshal(testutils.SampleGraph())
	require.NoError(t, err)

	g, err := New(r.Repo).Load(context.Background(), "sample")
	require.NoError(t, err)

	again, err := codec.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestLoader_InvalidName(t *testing.T) {
	r := testutils.SetupGraphRepo(t, nil)

	_, err := New(r.Repo).Load(context.Background(), "../flow")
	assert.ErrorIs(t, err, domain.ErrInvalidGraphName)
}

func TestLoader_StrictDecoding(t *testing.T) {
	r := testutils.SetupGraphRepo(t, nil)
	r.WriteRaw(t, "odd.json", `{"first": {"Node": {"id": "a", "executor": {"ContextMut": []}, "destination": [{"next": {"ExitOk": []}, "condition": {"Teleport": {}}}]}}}`)

	_, err := New(r.Repo).Load(context.Background(), "odd")
	require.NoError(t, err, "lenient decoding falls back to the default comparator")

	_, err = New(r.Repo, codec.WithStrict(true)).Load(context.Background(), "odd")
	assert.Error(t, err)
}

func TestLoader_Open(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir, map[string]string{"flow.json": flowDoc})

	l, err := Open(dir)
	require.NoError(t, err)

	names, err := l.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"flow"}, names)
}

func TestLoader_Watch(t *testing.T) {
	r := testutils.SetupGraphRepo(t, nil)
	r.WriteRaw(t, "flow.json", flowDoc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := New(r.Repo).Watch(ctx)
	require.NoError(t, err)

	r.WriteRaw(t, "other.json", flowDoc)

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change signal")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
