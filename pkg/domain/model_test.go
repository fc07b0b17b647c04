package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

func TestConstructors_CoverEveryTag(t *testing.T) {
	t.Run("DataFrom", func(t *testing.T) {
		for _, tag := range domain.DataFromTags() {
			v, ok := domain.NewDataFrom(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("DataOperation", func(t *testing.T) {
		for _, tag := range domain.DataOperationTags() {
			v, ok := domain.NewDataOperation(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("DataComparator", func(t *testing.T) {
		for _, tag := range domain.DataComparatorTags() {
			v, ok := domain.NewDataComparator(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("FromAgentHistoryContent", func(t *testing.T) {
		for _, tag := range domain.FromAgentHistoryContentTags() {
			v, ok := domain.NewFromAgentHistoryContent(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("DataToAgentHistory", func(t *testing.T) {
		for _, tag := range domain.DataToAgentHistoryTags() {
			v, ok := domain.NewDataToAgentHistory(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("NodeExecutor", func(t *testing.T) {
		for _, tag := range domain.NodeExecutorTags() {
			v, ok := domain.NewNodeExecutor(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("NodeNext", func(t *testing.T) {
		for _, tag := range domain.NodeNextTags() {
			v, ok := domain.NewNodeNext(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("Outputs", func(t *testing.T) {
		for _, tag := range domain.CommandOutputTags() {
			v, ok := domain.NewCommandOutput(tag, domain.Affix{Prefix: "p"})
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
			assert.Equal(t, "p", v.Affixes().Prefix)
		}
		for _, tag := range domain.GraphNodeOutputTags() {
			v, ok := domain.NewGraphNodeOutput(tag, domain.Affix{Suffix: "s"})
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
			assert.Equal(t, "s", v.Affixes().Suffix)
		}
		for _, tag := range domain.WebClientOutputTags() {
			v, ok := domain.NewWebClientOutput(tag, domain.Affix{})
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
	t.Run("Providers and stores", func(t *testing.T) {
		for _, tag := range domain.AIAgentProviderTags() {
			v, ok := domain.NewAIAgentProvider(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
		for _, tag := range domain.StoreModelTags() {
			v, ok := domain.NewStoreModel(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
		for _, tag := range domain.StoreDocumentTags() {
			v, ok := domain.NewStoreDocument(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
		for _, tag := range domain.StoreDocumentSizerTags() {
			v, ok := domain.NewStoreDocumentSizer(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
		for _, tag := range domain.ParallelExecutorTags() {
			v, ok := domain.NewParallelExecutor(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
		for _, tag := range domain.WebClientBodyTags() {
			v, ok := domain.NewWebClientBody(tag)
			require.True(t, ok, tag)
			assert.Equal(t, tag, v.Tag())
		}
	})
}

func TestParseTags(t *testing.T) {
	tag, ok := domain.ParseDataFromTag("Concat")
	assert.True(t, ok)
	assert.Equal(t, domain.DataFromConcat, tag)

	_, ok = domain.ParseDataFromTag("Foo")
	assert.False(t, ok)

	tag2, ok := domain.ParseDataToAgentHistoryTag("RelaceLast")
	assert.True(t, ok)
	assert.Equal(t, domain.ToHistoryTagReplaceLast, tag2)

	_, ok = domain.ParseAwpakMethod("GET")
	assert.False(t, ok, "methods are case sensitive")
}

func TestDefaults(t *testing.T) {
	cmd := domain.NewCommand()
	assert.Equal(t, &domain.FromStatic{Value: ""}, cmd.Command)
	assert.Empty(t, cmd.Args)
	assert.Empty(t, cmd.Output)

	store, _ := domain.NewDataFrom(domain.DataFromStore)
	assert.Equal(t, 1, store.(*domain.FromStore).Samples)

	sizer, _ := domain.NewStoreDocumentSizer(domain.SizerTagChars)
	assert.Equal(t, domain.DefaultSizerMax, sizer.(*domain.SizerChars).Max)
}

func TestGraph_Lookup(t *testing.T) {
	g := domain.NewGraph("start")
	g.Nodes = append(g.Nodes, domain.NewPlainNode("a"), domain.NewGraphNode("b"))
	g.Stores = append(g.Stores, domain.NewStoreConfig("docs"))

	assert.Equal(t, []string{"start", "a", "b"}, g.NodeIDs())

	n, ok := g.NodeByID("b")
	require.True(t, ok)
	assert.Equal(t, domain.NodeTagGraph, n.Tag())

	_, ok = g.NodeByID("missing")
	assert.False(t, ok)

	assert.Equal(t, 0, g.NodeIndex("a"))
	assert.Equal(t, -1, g.NodeIndex("start"))

	s, ok := g.StoreByID("docs")
	require.True(t, ok)
	assert.Equal(t, domain.StoreProviderInMemory, s.Provider)

	repl := domain.NewGraphNode("start")
	assert.True(t, g.ReplaceNode(g.First, repl))
	assert.Same(t, repl, g.First)
}

func TestNode_DestinationsAreMutable(t *testing.T) {
	n := domain.NewGraphNode("g")
	*n.Destinations() = append(*n.Destinations(), domain.NewNodeDestination())
	assert.Len(t, n.NodeDestination, 1)

	n.SetContextOutput(&domain.DataToContext{Path: "out"})
	assert.Equal(t, "out", n.ContextOutput().Path)
}
