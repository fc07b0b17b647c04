package tui

import (
	"fmt"
	"strings"

	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/refs"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// Describe summarizes a graph as markdown: settings, nodes, stores and
// validation findings.
func Describe(name string, g *domain.Graph) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", name)
	if g == nil {
		sb.WriteString("_empty document_\n")
		return sb.String()
	}

	inputType := "any"
	if g.InputType != "" {
		inputType = string(g.InputType)
	}
	fmt.Fprintf(&sb, "- **Input type:** %s\n", inputType)
	fmt.Fprintf(&sb, "- **Preserve context:** %t\n", g.PreserveContext)
	fmt.Fprintf(&sb, "- **Context keys:** %d\n", len(g.Context))
	fmt.Fprintf(&sb, "- **References:** %d\n\n", len(refs.Collect(g)))

	sb.WriteString("## Nodes\n\n")
	sb.WriteString("| id | kind | executor | routes |\n")
	sb.WriteString("|---|---|---|---|\n")
	for i, n := range g.AllNodes() {
		id := n.NodeID()
		if i == 0 {
			id += " (first)"
		}
		executor := "-"
		if pn, ok := n.(*domain.PlainNode); ok && pn.Executor != nil {
			executor = string(pn.Executor.Tag())
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", cell(id), n.Tag(), executor, routes(n))
	}

	if len(g.Stores) > 0 {
		sb.WriteString("\n## Stores\n\n")
		for _, s := range g.Stores {
			model := "-"
			if s.Model != nil {
				model = string(s.Model.Tag())
			}
			fmt.Fprintf(&sb, "- `%s`: %s, %s embeddings, %d documents\n", s.ID, s.Provider, model, len(s.Documents))
		}
	}

	issues := validate.Issues(validate.Graph(g))
	unreachable := validate.Unreachable(g)
	if len(issues) == 0 && len(unreachable) == 0 {
		sb.WriteString("\n**No issues found.**\n")
		return sb.String()
	}

	sb.WriteString("\n## Issues\n\n")
	for _, issue := range issues {
		fmt.Fprintf(&sb, "- %s\n", issue.Error())
	}
	for _, id := range unreachable {
		fmt.Fprintf(&sb, "- node %q is unreachable from the first node\n", id)
	}
	return sb.String()
}

func routes(n domain.Node) string {
	dests := *n.Destinations()
	if len(dests) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(dests))
	for _, d := range dests {
		var target string
		switch next := d.Next.(type) {
		case *domain.NextNode:
			target = "→ " + next.ID
		case nil:
			target = "?"
		default:
			target = string(next.Tag())
		}
		if d.Condition != nil && d.Condition.Tag() != domain.ComparatorTrue {
			target += " if " + string(d.Condition.Tag())
		}
		parts = append(parts, target)
	}
	return cell(strings.Join(parts, ", "))
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
