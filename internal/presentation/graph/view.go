// Package graph renders graph documents as Mermaid flowcharts and Graphviz DOT.
package graph

import (
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Terminal pseudo-node ids used for ExitOk and ExitErr destinations.
const (
	ExitOkID  = "__exit_ok"
	ExitErrID = "__exit_err"
)

// Shape classifies how a node is drawn.
type Shape int

const (
	ShapeDefault Shape = iota
	ShapeStart
	ShapeSubgraph
	ShapeAgent
	ShapeExitOk
	ShapeExitErr
)

type vertex struct {
	ID    string
	Label string
	Shape Shape
}

type edge struct {
	From string
	To   string
	// Label is the condition tag; empty for True.
	Label string
	// Dangling marks targets that resolve to no node.
	Dangling bool
}

type view struct {
	Vertices []vertex
	Edges    []edge
}

// Overlay marks nodes to highlight on the rendered graph.
type Overlay struct {
	Unreachable []string
	Selected    string
}

func buildView(g *domain.Graph) view {
	var v view
	if g == nil {
		return v
	}

	known := map[string]bool{}
	for _, n := range g.AllNodes() {
		known[n.NodeID()] = true
	}

	var exitOk, exitErr bool
	for i, n := range g.AllNodes() {
		v.Vertices = append(v.Vertices, vertex{ID: n.NodeID(), Label: label(n), Shape: shape(n, i == 0)})

		for _, d := range *n.Destinations() {
			e := edge{From: n.NodeID(), Label: conditionLabel(d.Condition)}
			switch next := d.Next.(type) {
			case *domain.NextNode:
				e.To = next.ID
				e.Dangling = !known[next.ID]
			case *domain.NextExitOk:
				e.To = ExitOkID
				exitOk = true
			case *domain.NextExitErr:
				e.To = ExitErrID
				exitErr = true
			default:
				continue
			}
			v.Edges = append(v.Edges, e)
		}
	}

	if exitOk {
		v.Vertices = append(v.Vertices, vertex{ID: ExitOkID, Label: "ExitOk", Shape: ShapeExitOk})
	}
	if exitErr {
		v.Vertices = append(v.Vertices, vertex{ID: ExitErrID, Label: "ExitErr", Shape: ShapeExitErr})
	}
	return v
}

func label(n domain.Node) string {
	switch n := n.(type) {
	case *domain.PlainNode:
		if n.Executor != nil {
			return n.ID + " (" + string(n.Executor.Tag()) + ")"
		}
	case *domain.GraphNode:
		if n.Path != "" {
			return n.ID + " (" + n.Path + ")"
		}
	}
	return n.NodeID()
}

func shape(n domain.Node, first bool) Shape {
	if first {
		return ShapeStart
	}
	switch n := n.(type) {
	case *domain.GraphNode:
		return ShapeSubgraph
	case *domain.PlainNode:
		switch n.Executor.(type) {
		case *domain.GraphExecutor:
			return ShapeSubgraph
		case *domain.AIAgent:
			return ShapeAgent
		}
	}
	return ShapeDefault
}

func conditionLabel(c domain.DataComparator) string {
	if c == nil || c.Tag() == domain.ComparatorTrue {
		return ""
	}
	return string(c.Tag())
}
