package graph

import (
	"fmt"
	"strings"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) of the node routing.
// It applies semantic styling:
// - First node: ((Circle))
// - Sub-graph: [[Subroutine]]
// - Agent: [/Parallelogram/]
// - Exits: ([Stadium])
// - Default: [Rectangle]
// Destinations to unknown nodes are drawn dotted.
func GenerateMermaid(g *domain.Graph, overlay *Overlay) string {
	v := buildView(g)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, vx := range v.Vertices {
		opener, closer := "[", "]"
		switch vx.Shape {
		case ShapeStart:
			opener, closer = "((", "))"
		case ShapeSubgraph:
			opener, closer = "[[", "]]"
		case ShapeAgent:
			opener, closer = "[/", "/]"
		case ShapeExitOk, ShapeExitErr:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(vx.ID), opener, escapeLabel(vx.Label), closer)
	}

	for _, e := range v.Edges {
		arrow := "-->"
		if e.Dangling {
			arrow = "-.->"
		}
		if e.Label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(e.Label))
			if e.Dangling {
				arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(e.Label))
			}
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(e.From), arrow, sanitizeMermaidID(e.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high contrast on light and dark themes.
		sb.WriteString("    classDef unreachable fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray: 5 5,color:#000;\n")
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Unreachable {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s unreachable;\n", safeID)
			}
		}
		if overlay.Selected != "" {
			fmt.Fprintf(&sb, "    class %s selected;\n", sanitizeMermaidID(overlay.Selected))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		return "_empty"
	}
	return s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
