package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/config"
	"github.com/afuentesan/awpak-builder/internal/logging"
	"github.com/afuentesan/awpak-builder/internal/metrics"
	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/persistence/middleware"
)

func TestOpenBackend_MemoryWithMiddlewares(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Store.Backend = config.BackendMemory
	cfg.Store.EncryptionKey = strings.Repeat("ab", 32)
	cfg.Store.Redact = []string{"^lang$"}

	b, err := OpenBackend(ctx, cfg, metrics.New(), logging.NewNop())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Store.Save(ctx, "sample", testutils.SampleGraph()))
	g, err := b.Store.Load(ctx, "sample")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, g.Context["lang"])
	// Keys are masked before sealing, so the mask round-trips.
	agent := g.Nodes[0].(*domain.PlainNode).Executor.(*domain.AIAgent)
	assert.Equal(t, middleware.Mask, agent.Provider.(*domain.ProviderAnthropic).APIKey)
}

func TestOpenBackend_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Store.Backend = config.BackendRedis
	cfg.Store.Redis.Addr = mr.Addr()

	b, err := OpenBackend(ctx, cfg, nil, logging.NewNop())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Store.Save(ctx, "sample", testutils.SampleGraph()))
	names, err := b.Store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sample"}, names)

	unlock, err := b.Locker.Lock(ctx, "sample", 0)
	require.NoError(t, err)
	require.NoError(t, unlock(ctx))
}

func TestOpenBackend_LoamIsReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	data, err := codec.Marshal(testutils.SampleGraph())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.json"), data, 0o600))

	cfg := config.Default()
	cfg.Store.Backend = config.BackendLoam
	cfg.Store.Loam.Dir = dir

	b, err := OpenBackend(ctx, cfg, metrics.New(), logging.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.NotNil(t, b.Watcher)
	g, err := b.Store.Load(ctx, "sample")
	require.NoError(t, err)
	assert.Equal(t, "start", g.First.NodeID())
	assert.ErrorIs(t, b.Store.Save(ctx, "sample", g), domain.ErrReadOnly)
}

func TestOpenBackend_Unknown(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "tape"
	_, err := OpenBackend(context.Background(), cfg, nil, logging.NewNop())
	assert.Error(t, err)
}
