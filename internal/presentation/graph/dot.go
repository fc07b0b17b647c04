package graph

import (
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

const dotGraphName = "awpak"

var dotShapes = map[Shape]string{
	ShapeDefault:  "box",
	ShapeStart:    "doublecircle",
	ShapeSubgraph: "component",
	ShapeAgent:    "parallelogram",
	ShapeExitOk:   "oval",
	ShapeExitErr:  "octagon",
}

// GenerateDOT renders the node routing as a directed Graphviz graph.
func GenerateDOT(g *domain.Graph, overlay *Overlay) (string, error) {
	v := buildView(g)

	out := gographviz.NewGraph()
	if err := out.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := out.SetDir(true); err != nil {
		return "", err
	}

	unreachable := map[string]bool{}
	selected := ""
	if overlay != nil {
		for _, id := range overlay.Unreachable {
			unreachable[id] = true
		}
		selected = overlay.Selected
	}

	for _, vx := range v.Vertices {
		attrs := map[string]string{
			"label": strconv.Quote(vx.Label),
			"shape": dotShapes[vx.Shape],
		}
		switch {
		case vx.ID == selected:
			attrs["style"] = "filled"
			attrs["fillcolor"] = strconv.Quote("#ffeb3b")
		case unreachable[vx.ID]:
			attrs["style"] = "dashed"
			attrs["color"] = "gray"
		}
		if err := out.AddNode(dotGraphName, strconv.Quote(vx.ID), attrs); err != nil {
			return "", err
		}
	}

	for _, e := range v.Edges {
		attrs := map[string]string{}
		if e.Label != "" {
			attrs["label"] = strconv.Quote(e.Label)
		}
		if e.Dangling {
			attrs["style"] = "dotted"
			attrs["color"] = "red"
			// Dangling targets still need a node for the edge to attach to.
			if !out.IsNode(strconv.Quote(e.To)) {
				if err := out.AddNode(dotGraphName, strconv.Quote(e.To), map[string]string{"shape": "plaintext"}); err != nil {
					return "", err
				}
			}
		}
		if err := out.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), true, attrs); err != nil {
			return "", err
		}
	}

	return out.String(), nil
}
