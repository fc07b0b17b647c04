package domain

// NodeTag identifies a Node variant.
type NodeTag string

const (
	NodeTagNode  NodeTag = "Node"
	NodeTagGraph NodeTag = "Graph"
)

var nodeTags = []NodeTag{NodeTagNode, NodeTagGraph}

// NodeTags returns every Node tag.
func NodeTags() []NodeTag { return cloneTags(nodeTags) }

// ParseNodeTag resolves a wire tag into a NodeTag.
func ParseNodeTag(s string) (NodeTag, bool) { return parseTag(nodeTags, s) }

// Node is a unit of the workflow graph. Destinations reference other nodes
// by id only; a node never owns another node.
type Node interface {
	Tag() NodeTag
	NodeID() string
	SetNodeID(id string)
	// Destinations returns the routing table so callers can append in place.
	Destinations() *[]NodeDestination
	// ContextOutput returns where the node result is written in the context.
	ContextOutput() *DataToContext
	SetContextOutput(out *DataToContext)
	isNode()
}

// PlainNode runs an executor.
type PlainNode struct {
	ID          string
	Executor    NodeExecutor
	Output      *DataToContext
	Destination []NodeDestination
}

// GraphNode runs the sub-graph file at Path.
type GraphNode struct {
	ID              string
	Path            string
	Input           []DataToString
	Output          []GraphNodeOutput
	NodeOutput      *DataToContext
	NodeDestination []NodeDestination
}

func (*PlainNode) Tag() NodeTag { return NodeTagNode }
func (*GraphNode) Tag() NodeTag { return NodeTagGraph }

func (n *PlainNode) NodeID() string { return n.ID }
func (n *GraphNode) NodeID() string { return n.ID }

func (n *PlainNode) SetNodeID(id string) { n.ID = id }
func (n *GraphNode) SetNodeID(id string) { n.ID = id }

func (n *PlainNode) Destinations() *[]NodeDestination { return &n.Destination }
func (n *GraphNode) Destinations() *[]NodeDestination { return &n.NodeDestination }

func (n *PlainNode) ContextOutput() *DataToContext { return n.Output }
func (n *GraphNode) ContextOutput() *DataToContext { return n.NodeOutput }

func (n *PlainNode) SetContextOutput(out *DataToContext) { n.Output = out }
func (n *GraphNode) SetContextOutput(out *DataToContext) { n.NodeOutput = out }

func (*PlainNode) isNode() {}
func (*GraphNode) isNode() {}

// NewPlainNode returns a node running the default command with no routes.
func NewPlainNode(id string) *PlainNode {
	return &PlainNode{ID: id, Executor: NewCommand(), Destination: []NodeDestination{}}
}

// NewGraphNode returns a sub-graph node with an empty path.
func NewGraphNode(id string) *GraphNode {
	return &GraphNode{
		ID:              id,
		Input:           []DataToString{},
		Output:          []GraphNodeOutput{},
		NodeDestination: []NodeDestination{},
	}
}

// NodeDestination routes to Next when Condition holds. A nil Condition is
// treated as always true.
type NodeDestination struct {
	Next      NodeNext
	Condition DataComparator
}

// NewNodeDestination returns an unconditional route to an unresolved node.
func NewNodeDestination() NodeDestination {
	return NodeDestination{Next: &NextNode{}, Condition: DefaultComparator()}
}

// NodeNextTag identifies a NodeNext variant.
type NodeNextTag string

const (
	NextTagNode    NodeNextTag = "Node"
	NextTagExitOk  NodeNextTag = "ExitOk"
	NextTagExitErr NodeNextTag = "ExitErr"
)

var nextTags = []NodeNextTag{NextTagNode, NextTagExitOk, NextTagExitErr}

// NodeNextTags returns every NodeNext tag.
func NodeNextTags() []NodeNextTag { return cloneTags(nextTags) }

// ParseNodeNextTag resolves a wire tag into a NodeNextTag.
func ParseNodeNextTag(s string) (NodeNextTag, bool) { return parseTag(nextTags, s) }

// NodeNext is the target of a destination: another node or a graph exit.
type NodeNext interface {
	Tag() NodeNextTag
	isNodeNext()
}

// NextNode continues at node ID. An empty ID is unresolved.
type NextNode struct {
	ID string
}

// NextExitOk ends the graph successfully with the rendered Value as output.
type NextExitOk struct {
	Value []DataToString
}

// NextExitErr ends the graph with the rendered Value as error.
type NextExitErr struct {
	Value []DataToString
}

func (*NextNode) Tag() NodeNextTag    { return NextTagNode }
func (*NextExitOk) Tag() NodeNextTag  { return NextTagExitOk }
func (*NextExitErr) Tag() NodeNextTag { return NextTagExitErr }

func (*NextNode) isNodeNext()    {}
func (*NextExitOk) isNodeNext()  {}
func (*NextExitErr) isNodeNext() {}

// NewNodeNext returns the default instance of the variant tag.
func NewNodeNext(tag NodeNextTag) (NodeNext, bool) {
	switch tag {
	case NextTagNode:
		return &NextNode{}, true
	case NextTagExitOk:
		return &NextExitOk{Value: []DataToString{}}, true
	case NextTagExitErr:
		return &NextExitErr{Value: []DataToString{}}, true
	}
	return nil, false
}
