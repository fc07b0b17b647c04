package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunGraphStoreContract(t, store)
}

func TestMemoryStore_SampleGraph(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Save(ctx, "sample", testutils.SampleGraph()))
	loaded, err := store.Load(ctx, "sample")
	require.NoError(t, err)
	assert.Equal(t, testutils.SampleGraph(), loaded)
}

func TestNewFromDocuments(t *testing.T) {
	raw, err := codec.Marshal(testutils.SampleGraph())
	require.NoError(t, err)

	store, err := memory.NewFromDocuments(map[string]string{"sample": string(raw)})
	require.NoError(t, err)
	ports.RunGraphSourceContract(t, store, map[string]*domain.Graph{"sample": testutils.SampleGraph()})

	_, err = memory.NewFromDocuments(map[string]string{"bad": `{"first":{"Foo":{}}}`})
	assert.Error(t, err)

	_, err = memory.NewFromDocuments(map[string]string{"../bad": string(raw)})
	assert.ErrorIs(t, err, domain.ErrInvalidGraphName)
}

func TestLocker_Serializes(t *testing.T) {
	ctx := context.Background()
	locker := memory.NewLocker()

	unlock, err := locker.Lock(ctx, "g", time.Second)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "g", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := locker.Lock(ctx, "h", time.Second)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, unlock(ctx))
	require.NoError(t, unlock(ctx))

	again, err := locker.Lock(ctx, "g", time.Second)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}
