package domain

// Graph is the root aggregate of a workflow document.
// Every id in Nodes plus First's id is unique within the graph.
type Graph struct {
	Stores          []StoreConfig
	Context         map[string]any
	PreserveContext bool
	InputType       DataType
	First           Node
	Nodes           []Node
}

// NewGraph returns a graph whose entry point is a default PlainNode.
func NewGraph(firstID string) *Graph {
	return &Graph{
		Stores:  []StoreConfig{},
		Context: map[string]any{},
		First:   NewPlainNode(firstID),
		Nodes:   []Node{},
	}
}

// AllNodes returns First followed by Nodes, skipping nil entries.
func (g *Graph) AllNodes() []Node {
	all := make([]Node, 0, len(g.Nodes)+1)
	if g.First != nil {
		all = append(all, g.First)
	}
	for _, n := range g.Nodes {
		if n != nil {
			all = append(all, n)
		}
	}
	return all
}

// NodeIDs returns every node id in document order.
func (g *Graph) NodeIDs() []string {
	nodes := g.AllNodes()
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.NodeID())
	}
	return ids
}

// NodeByID returns the first node with the given id.
func (g *Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.AllNodes() {
		if n.NodeID() == id {
			return n, true
		}
	}
	return nil, false
}

// NodeIndex returns the position of id in Nodes, or -1. First is not indexed.
func (g *Graph) NodeIndex(id string) int {
	for i, n := range g.Nodes {
		if n != nil && n.NodeID() == id {
			return i
		}
	}
	return -1
}

// StoreByID returns the store declared with the given id.
func (g *Graph) StoreByID(id string) (*StoreConfig, bool) {
	for i := range g.Stores {
		if g.Stores[i].ID == id {
			return &g.Stores[i], true
		}
	}
	return nil, false
}

// ReplaceNode swaps old for repl in First or Nodes.
func (g *Graph) ReplaceNode(old, repl Node) bool {
	if g.First == old {
		g.First = repl
		return true
	}
	for i, n := range g.Nodes {
		if n == old {
			g.Nodes[i] = repl
			return true
		}
	}
	return false
}
