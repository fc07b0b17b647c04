package editor_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/editor"
	"github.com/afuentesan/awpak-builder/pkg/refs"
)

func TestAddNode(t *testing.T) {
	g := domain.NewGraph("first")

	id := editor.AddNode(g)

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	n, ok := g.NodeByID(id)
	require.True(t, ok)
	assert.Equal(t, domain.NewCommand(), n.(*domain.PlainNode).Executor)
	assert.NotEqual(t, id, editor.AddNode(g))
}

func TestRenameNode(t *testing.T) {
	g := testutils.SampleGraph()

	require.True(t, editor.RenameNode(g, "agent", " assistant "))

	_, ok := g.NodeByID("assistant")
	assert.True(t, ok)
	_, ok = g.NodeByID("agent")
	assert.False(t, ok)
	for _, r := range refs.Collect(g) {
		if r.NodeRef() {
			assert.NotEqual(t, "agent", r.ID, r.Path)
		}
	}
}

func TestRenameNode_First(t *testing.T) {
	g := testutils.SampleGraph()
	require.True(t, editor.RenameNode(g, "start", "entry"))
	assert.Equal(t, "entry", g.First.NodeID())
}

func TestRenameNode_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"blank old", " ", "x"},
		{"blank new", "agent", ""},
		{"same", "agent", "agent"},
		{"unknown", "nope", "x"},
		{"taken", "agent", "web"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutils.SampleGraph()
			assert.False(t, editor.RenameNode(g, tt.old, tt.new))
			assert.Equal(t, testutils.SampleGraph(), g)
		})
	}
}

func TestRemoveNode(t *testing.T) {
	g := testutils.SampleGraph()
	idx := g.NodeIndex("agent")
	require.GreaterOrEqual(t, idx, 0)

	require.True(t, editor.RemoveNode(g, idx))

	_, ok := g.NodeByID("agent")
	assert.False(t, ok)
	dest := g.First.(*domain.PlainNode).Destination[0].Next.(*domain.NextNode)
	assert.Equal(t, "", dest.ID)
	assert.Len(t, refs.Dangling(g), 5)
}

func TestRemoveNode_OutOfRange(t *testing.T) {
	g := testutils.SampleGraph()
	assert.False(t, editor.RemoveNode(g, -1))
	assert.False(t, editor.RemoveNode(g, len(g.Nodes)))
	assert.False(t, editor.RemoveNodeByID(g, "start"))
}

func TestChangeNodeKind(t *testing.T) {
	g := testutils.SampleGraph()

	require.True(t, editor.ChangeNodeKind(g, "exec", domain.NodeTagGraph))

	n, ok := g.NodeByID("exec")
	require.True(t, ok)
	sub, isGraph := n.(*domain.GraphNode)
	require.True(t, isGraph)
	assert.Equal(t, "inner.json", sub.Path)
	assert.Len(t, sub.NodeDestination, 1)

	assert.True(t, editor.ChangeNodeKind(g, "exec", domain.NodeTagGraph))
	assert.False(t, editor.ChangeNodeKind(g, "exec", domain.NodeTag("Bogus")))
	assert.False(t, editor.ChangeNodeKind(g, "missing", domain.NodeTagNode))
}

func TestChangeExecutorKind(t *testing.T) {
	g := testutils.SampleGraph()

	require.True(t, editor.ChangeExecutorKind(g, "web", domain.ExecutorCommand))
	n, _ := g.NodeByID("web")
	cmd := n.(*domain.PlainNode).Executor.(*domain.Command)
	assert.Equal(t, 10, cmd.Timeout)

	assert.False(t, editor.ChangeExecutorKind(g, "sub", domain.ExecutorCommand))
}

func TestDestinations(t *testing.T) {
	g := domain.NewGraph("a")
	editor.AddNode(g)

	require.True(t, editor.AddDestination(g, "a"))
	require.True(t, editor.SetDestinationTarget(g, "a", 0, domain.NextTagNode, "b"))
	assert.Equal(t, &domain.NextNode{ID: "b"}, g.First.(*domain.PlainNode).Destination[0].Next)

	assert.False(t, editor.AddExitText(g, "a", 0))

	require.True(t, editor.SetDestinationTarget(g, "a", 0, domain.NextTagExitOk, ""))
	require.True(t, editor.AddExitText(g, "a", 0))
	exit := g.First.(*domain.PlainNode).Destination[0].Next.(*domain.NextExitOk)
	assert.Equal(t, []domain.DataToString{domain.NewDataToString()}, exit.Value)

	assert.False(t, editor.AddExitText(g, "a", 1))
	assert.False(t, editor.SetDestinationTarget(g, "a", 3, domain.NextTagNode, "b"))
	require.True(t, editor.RemoveDestination(g, "a", 0))
	assert.Empty(t, g.First.(*domain.PlainNode).Destination)
	assert.False(t, editor.RemoveDestination(g, "a", 0))
}

func TestSetNodeOutputPath(t *testing.T) {
	g := domain.NewGraph("a")

	assert.False(t, editor.SetNodeOutputPath(g, "a", "  "))
	require.True(t, editor.SetNodeOutputPath(g, "a", "result"))
	assert.Equal(t, &domain.DataToContext{Path: "result"}, g.First.ContextOutput())

	assert.False(t, editor.SetNodeOutputPath(g, "a", "result"))
	require.True(t, editor.SetNodeOutputPath(g, "a", "other"))
	assert.Equal(t, "other", g.First.ContextOutput().Path)
	assert.False(t, editor.SetNodeOutputPath(g, "missing", "x"))
}

func TestGraphSettings(t *testing.T) {
	g := domain.NewGraph("a")

	editor.SetPreserveContext(g, true)
	assert.True(t, g.PreserveContext)

	assert.True(t, editor.SetInputType(g, "Object"))
	assert.Equal(t, domain.DataTypeObject, g.InputType)
	assert.False(t, editor.SetInputType(g, "object"))
	assert.Equal(t, domain.DataType(""), g.InputType)

	assert.True(t, editor.SetContext(g, ` {"a": 1, "b": "x"} `))
	assert.Equal(t, map[string]any{"a": json.Number("1"), "b": "x"}, g.Context)
	assert.False(t, editor.SetContext(g, `[1]`))
	assert.False(t, editor.SetContext(g, `{"a":`))
	assert.Equal(t, "x", g.Context["b"])
}

func TestStores(t *testing.T) {
	g := domain.NewGraph("a")

	require.True(t, editor.AddStore(g, "docs"))
	assert.False(t, editor.AddStore(g, "docs"))
	assert.False(t, editor.AddStore(g, " "))
	assert.Equal(t, []domain.StoreConfig{domain.NewStoreConfig("docs")}, g.Stores)

	assert.True(t, editor.RemoveStore(g, "docs"))
	assert.False(t, editor.RemoveStore(g, "docs"))
	assert.Empty(t, g.Stores)
}
