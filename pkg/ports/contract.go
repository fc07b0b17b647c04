package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

func contractGraph(first string) *domain.Graph {
	g := domain.NewGraph(first)
	g.Context["lang"] = "en"
	g.PreserveContext = true
	g.InputType = domain.DataTypeString
	n := domain.NewPlainNode("second")
	g.Nodes = append(g.Nodes, n)
	g.First.(*domain.PlainNode).Destination = []domain.NodeDestination{
		{Next: &domain.NextNode{ID: "second"}, Condition: &domain.CmpTrue{}},
	}
	return g
}

// RunGraphStoreContract runs a suite of tests to verify that a GraphStore implementation
// adheres to the defined interface contract.
func RunGraphStoreContract(t *testing.T, store GraphStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		g := contractGraph("start")

		err := store.Save(ctx, name, g)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, g, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, contractGraph("entry")))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "entry", loaded.First.NodeID())
	})

	t.Run("Load Returns Copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		loaded.First.SetNodeID("mutated")

		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.First.NodeID())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+name)
		assert.ErrorIs(t, err, domain.ErrGraphNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		err := store.Save(ctx, "../escape", contractGraph("start"))
		assert.ErrorIs(t, err, domain.ErrInvalidGraphName)
	})

	t.Run("List", func(t *testing.T) {
		a, b := name+"-a", name+"-b"
		require.NoError(t, store.Save(ctx, b, contractGraph("start")))
		require.NoError(t, store.Save(ctx, a, contractGraph("start")))
		defer func() {
			_ = store.Delete(ctx, a)
			_ = store.Delete(ctx, b)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, a)
		assert.Contains(t, names, b)
		assert.IsNonDecreasing(t, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, contractGraph("start")))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrGraphNotFound, "Load after Delete should return ErrGraphNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing document should succeed")
	})
}

// RunGraphSourceContract verifies a read-only source seeded with want.
func RunGraphSourceContract(t *testing.T, src GraphSource, want map[string]*domain.Graph) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		for name, g := range want {
			loaded, err := src.Load(ctx, name)
			require.NoError(t, err, name)
			assert.Equal(t, g, loaded, name)
		}
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := src.Load(ctx, "non-existent-graph")
		assert.ErrorIs(t, err, domain.ErrGraphNotFound)
	})

	t.Run("List", func(t *testing.T) {
		names, err := src.List(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(want))
		for name := range want {
			assert.Contains(t, names, name)
		}
	})
}
