package editor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/refs"
	"github.com/afuentesan/awpak-builder/pkg/transition"
)

// AddNode appends a PlainNode with a fresh id and the default command
// executor. It returns the new id.
func AddNode(g *domain.Graph) string {
	id := uuid.NewString()
	g.Nodes = append(g.Nodes, domain.NewPlainNode(id))
	return id
}

// RenameNode changes the id of node oldID to newID and rewrites every
// reference to it. Blank ids, equal ids, an unknown oldID or an already
// taken newID are rejected.
func RenameNode(g *domain.Graph, oldID, newID string) bool {
	oldID, newID = strings.TrimSpace(oldID), strings.TrimSpace(newID)
	if oldID == "" || newID == "" || oldID == newID {
		return false
	}
	n, ok := g.NodeByID(oldID)
	if !ok {
		return false
	}
	if _, taken := g.NodeByID(newID); taken {
		return false
	}
	n.SetNodeID(newID)
	refs.Rename(g, oldID, newID)
	return true
}

// RemoveNode removes g.Nodes[idx] and leaves every reference to it
// unresolved. The first node cannot be removed.
func RemoveNode(g *domain.Graph, idx int) bool {
	if idx < 0 || idx >= len(g.Nodes) {
		return false
	}
	id := g.Nodes[idx].NodeID()
	g.Nodes = append(g.Nodes[:idx], g.Nodes[idx+1:]...)
	if _, stillThere := g.NodeByID(id); !stillThere {
		refs.Delete(g, id)
	}
	return true
}

// RemoveNodeByID removes the node with id from g.Nodes.
func RemoveNodeByID(g *domain.Graph, id string) bool {
	return RemoveNode(g, g.NodeIndex(id))
}

// ChangeNodeKind switches node id between PlainNode and GraphNode.
func ChangeNodeKind(g *domain.Graph, id string, tag domain.NodeTag) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	next, ok := transition.Node(n, tag)
	if !ok {
		return false
	}
	if next == n {
		return true
	}
	return g.ReplaceNode(n, next)
}

// ChangeExecutorKind retags the executor of PlainNode id.
func ChangeExecutorKind(g *domain.Graph, id string, tag domain.NodeExecutorTag) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	plain, ok := n.(*domain.PlainNode)
	if !ok {
		return false
	}
	next, ok := transition.NodeExecutor(plain.Executor, tag)
	if !ok {
		return false
	}
	plain.Executor = next
	return true
}

// AddDestination appends an unconditional, unresolved destination to node id.
func AddDestination(g *domain.Graph, id string) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	dests := n.Destinations()
	*dests = append(*dests, domain.NewNodeDestination())
	return true
}

// RemoveDestination removes destination idx of node id.
func RemoveDestination(g *domain.Graph, id string, idx int) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	dests := n.Destinations()
	if idx < 0 || idx >= len(*dests) {
		return false
	}
	*dests = append((*dests)[:idx], (*dests)[idx+1:]...)
	return true
}

// SetDestinationTarget retags destination idx of node id to tag. For
// NextTagNode, target becomes the referenced node id.
func SetDestinationTarget(g *domain.Graph, id string, idx int, tag domain.NodeNextTag, target string) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	dests := *n.Destinations()
	if idx < 0 || idx >= len(dests) {
		return false
	}
	next, ok := transition.NodeNext(dests[idx].Next, tag)
	if !ok {
		return false
	}
	if to, isNode := next.(*domain.NextNode); isNode {
		to.ID = strings.TrimSpace(target)
	}
	dests[idx].Next = next
	return true
}

// SetNodeOutputPath sets the context path node id writes its result to,
// creating the output when absent. A blank path is rejected.
func SetNodeOutputPath(g *domain.Graph, id, path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	out := n.ContextOutput()
	if out == nil {
		n.SetContextOutput(&domain.DataToContext{Path: path})
		return true
	}
	if out.Path == path {
		return false
	}
	out.Path = path
	return true
}

// AddExitText appends an empty text part to the ExitOk or ExitErr target of
// destination idx of node id.
func AddExitText(g *domain.Graph, id string, idx int) bool {
	n, ok := g.NodeByID(id)
	if !ok {
		return false
	}
	dests := *n.Destinations()
	if idx < 0 || idx >= len(dests) {
		return false
	}
	switch next := dests[idx].Next.(type) {
	case *domain.NextExitOk:
		next.Value = append(next.Value, domain.NewDataToString())
	case *domain.NextExitErr:
		next.Value = append(next.Value, domain.NewDataToString())
	default:
		return false
	}
	return true
}

// SetPreserveContext sets whether the engine keeps context between runs.
func SetPreserveContext(g *domain.Graph, preserve bool) {
	g.PreserveContext = preserve
}

// SetInputType sets the expected input type. An unknown or blank name
// clears it and reports false.
func SetInputType(g *domain.Graph, name string) bool {
	ty, ok := domain.ParseDataType(strings.TrimSpace(name))
	if !ok {
		g.InputType = ""
		return false
	}
	g.InputType = ty
	return true
}

// SetContext replaces the initial context with the JSON object in raw.
// Anything that is not a JSON object is rejected.
func SetContext(g *domain.Graph, raw string) bool {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return false
	}
	v, err := codec.ParseJSON([]byte(raw))
	if err != nil {
		return false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	g.Context = obj
	return true
}

// AddStore appends a store with the default model and no documents. Blank
// or duplicate ids are rejected.
func AddStore(g *domain.Graph, id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if _, exists := g.StoreByID(id); exists {
		return false
	}
	g.Stores = append(g.Stores, domain.NewStoreConfig(id))
	return true
}

// RemoveStore removes the store id. Store expressions naming it are kept
// and reported by validation.
func RemoveStore(g *domain.Graph, id string) bool {
	for i := range g.Stores {
		if g.Stores[i].ID == id {
			g.Stores = append(g.Stores[:i], g.Stores[i+1:]...)
			return true
		}
	}
	return false
}

// NodeIDs returns the ids of first and nodes in order.
func NodeIDs(g *domain.Graph) []string { return g.NodeIDs() }

// NodeByID returns the node with id, searching first then nodes.
func NodeByID(g *domain.Graph, id string) (domain.Node, bool) { return g.NodeByID(id) }
