package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/refs"
)

func scenarioGraph() *domain.Graph {
	deep := &domain.FromConcat{Value: []domain.DataFrom{
		&domain.FromConcat{Value: []domain.DataFrom{
			&domain.FromConcat{Value: []domain.DataFrom{
				&domain.FromAgentHistory{ID: "B", Content: &domain.ContentFull{}},
			}},
		}},
	}}
	a := domain.NewPlainNode("A")
	a.Executor = &domain.Command{Command: &domain.FromStatic{Value: "cat"}, Args: []domain.DataFrom{deep}}
	a.Destination = []domain.NodeDestination{{Next: &domain.NextNode{ID: "B"}, Condition: &domain.CmpTrue{}}}

	g := domain.NewGraph("A")
	g.First = a
	g.Nodes = []domain.Node{domain.NewPlainNode("B")}
	return g
}

func TestRename_NestedAgentHistoryAndDestination(t *testing.T) {
	g := scenarioGraph()

	changed := refs.Rename(g, "B", "C")
	assert.Equal(t, 2, changed)

	a := g.First.(*domain.PlainNode)
	assert.Equal(t, "C", a.Destination[0].Next.(*domain.NextNode).ID)

	deep := a.Executor.(*domain.Command).Args[0].(*domain.FromConcat).
		Value[0].(*domain.FromConcat).
		Value[0].(*domain.FromConcat).
		Value[0].(*domain.FromAgentHistory)
	assert.Equal(t, "C", deep.ID)
}

func TestCollect_Paths(t *testing.T) {
	got := refs.Collect(scenarioGraph())
	require.Len(t, got, 2)

	assert.Equal(t, refs.KindAgentHistory, got[0].Kind)
	assert.Equal(t, "A", got[0].Owner)
	assert.Equal(t, "/first/Node/executor/Command/args/0/Concat/0/Concat/0/Concat/0/AgentHistory/id", got[0].Path)

	assert.Equal(t, refs.KindDestination, got[1].Kind)
	assert.Equal(t, "/first/Node/destination/0/next/Node", got[1].Path)
}

func TestCollect_SampleGraph(t *testing.T) {
	got := refs.Collect(testutils.SampleGraph())

	counts := map[refs.Kind]int{}
	for _, r := range got {
		counts[r.Kind]++
	}
	assert.Equal(t, 7, counts[refs.KindDestination])
	assert.Equal(t, 2, counts[refs.KindAgentHistory])
	assert.Equal(t, 2, counts[refs.KindAgentHistoryMut])
	assert.Equal(t, 1, counts[refs.KindStore])
}

func TestRename_SampleGraphLeavesNoOldID(t *testing.T) {
	g := testutils.SampleGraph()

	changed := refs.Rename(g, "agent", "assistant")
	assert.Equal(t, 5, changed)

	for _, r := range refs.Collect(g) {
		if r.NodeRef() {
			assert.NotEqual(t, "agent", r.ID, r.Path)
		}
	}
}

func TestRename_EveryNodeID(t *testing.T) {
	for _, id := range testutils.SampleGraph().NodeIDs() {
		t.Run(id, func(t *testing.T) {
			g := testutils.SampleGraph()
			refs.Rename(g, id, id+"-renamed")
			for _, r := range refs.Collect(g) {
				if r.NodeRef() {
					assert.NotEqual(t, id, r.ID, r.Path)
				}
			}
		})
	}
}

func TestRename_StoreIDsUntouched(t *testing.T) {
	g := testutils.SampleGraph()

	assert.Zero(t, refs.Rename(g, "docs", "other"))

	var stores []string
	for _, r := range refs.Collect(g) {
		if r.Kind == refs.KindStore {
			stores = append(stores, r.ID)
		}
	}
	assert.Equal(t, []string{"docs"}, stores)
}

func TestDelete_ClearsReferences(t *testing.T) {
	g := scenarioGraph()

	assert.Equal(t, 2, refs.Delete(g, "B"))

	a := g.First.(*domain.PlainNode)
	assert.Equal(t, "", a.Destination[0].Next.(*domain.NextNode).ID)

	dangling := refs.Dangling(g)
	require.Len(t, dangling, 2)
	for _, r := range dangling {
		assert.Empty(t, r.ID)
	}
}

func TestRewrite_NoOps(t *testing.T) {
	tests := []struct {
		name  string
		old   string
		newID *string
	}{
		{name: "empty old id", old: "", newID: strPtr("x")},
		{name: "same id", old: "B", newID: strPtr("B")},
		{name: "unknown id", old: "Z", newID: strPtr("Y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scenarioGraph()
			assert.Zero(t, refs.Rewrite(g, tt.old, tt.newID))
			assert.Equal(t, scenarioGraph(), g)
		})
	}
}

func TestDangling_UnknownTarget(t *testing.T) {
	g := scenarioGraph()
	g.Nodes = nil

	dangling := refs.Dangling(g)
	require.Len(t, dangling, 2)
	assert.Equal(t, "B", dangling[0].ID)
}

func TestCollect_NilGraph(t *testing.T) {
	assert.Nil(t, refs.Collect(nil))
}

func TestCollect_SkipsNilNodes(t *testing.T) {
	g := scenarioGraph()
	g.Nodes = append([]domain.Node{nil}, g.Nodes...)

	require.NotPanics(t, func() {
		assert.Len(t, refs.Collect(g), 2)
		assert.Empty(t, refs.Dangling(g))
		assert.Equal(t, 2, refs.Rename(g, "B", "C"))
		assert.Equal(t, 2, refs.Delete(g, "C"))
	})
	assert.Len(t, refs.Dangling(g), 2)
}

// recorder counts visits so dispatch can be checked per variant.
type recorder struct{ seen []string }

func (r *recorder) PlainNode(*domain.PlainNode) { r.seen = append(r.seen, "Node") }
func (r *recorder) GraphNode(*domain.GraphNode) { r.seen = append(r.seen, "Graph") }

func TestVisitNode_Dispatch(t *testing.T) {
	r := &recorder{}
	refs.VisitNode(domain.NewPlainNode("a"), r)
	refs.VisitNode(domain.NewGraphNode("b"), r)
	refs.VisitNode(nil, r)
	assert.Equal(t, []string{"Node", "Graph"}, r.seen)
}

func strPtr(s string) *string { return &s }
