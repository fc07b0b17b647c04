package refs

import (
	"strconv"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Kind identifies where a reference lives.
type Kind string

const (
	// KindDestination is a NodeDestination targeting a node.
	KindDestination Kind = "destination"
	// KindAgentHistory is an AgentHistory expression reading a node's history.
	KindAgentHistory Kind = "agent_history"
	// KindAgentHistoryMut is an AgentHistoryMut item writing a node's history.
	KindAgentHistoryMut Kind = "agent_history_mut"
	// KindStore is a Store expression naming a graph store.
	KindStore Kind = "store"
)

// Ref is one id reference found in a graph.
type Ref struct {
	Kind Kind
	// Owner is the id of the node holding the reference.
	Owner string
	ID    string
	// Path locates the reference in wire terms, e.g.
	// /nodes/0/Node/destination/1/next/Node.
	Path string

	target *string
}

// NodeRef reports whether r points at a node rather than a store.
func (r Ref) NodeRef() bool { return r.Kind != KindStore }

// Collect lists every reference in g in traversal order: first, then nodes.
func Collect(g *domain.Graph) []Ref {
	c := &collector{}
	if g == nil {
		return nil
	}
	if g.First != nil {
		c.node("/first", g.First)
	}
	for i, n := range g.Nodes {
		if n == nil {
			continue
		}
		c.node("/nodes/"+strconv.Itoa(i), n)
	}
	return c.refs
}

// Rewrite replaces every node reference equal to oldID with *newID, or
// clears it when newID is nil. Store references are left alone. It returns
// the number of references changed.
func Rewrite(g *domain.Graph, oldID string, newID *string) int {
	if oldID == "" {
		return 0
	}
	repl := ""
	if newID != nil {
		repl = *newID
	}
	if repl == oldID {
		return 0
	}
	changed := 0
	for _, r := range Collect(g) {
		if !r.NodeRef() || r.ID != oldID {
			continue
		}
		*r.target = repl
		changed++
	}
	return changed
}

// Rename points every reference to oldID at newID.
func Rename(g *domain.Graph, oldID, newID string) int {
	return Rewrite(g, oldID, &newID)
}

// Delete leaves every reference to id unresolved. Callers are expected to
// refuse to persist a graph that still has unresolved destinations.
func Delete(g *domain.Graph, id string) int {
	return Rewrite(g, id, nil)
}

// Dangling returns the node references in g whose id is empty or names no
// node of g.
func Dangling(g *domain.Graph) []Ref {
	known := make(map[string]struct{})
	for _, id := range g.NodeIDs() {
		known[id] = struct{}{}
	}
	var out []Ref
	for _, r := range Collect(g) {
		if !r.NodeRef() {
			continue
		}
		if _, ok := known[r.ID]; !ok || r.ID == "" {
			out = append(out, r)
		}
	}
	return out
}
