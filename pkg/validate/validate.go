// Package validate checks a graph for structural problems the codec accepts
// but the engine would reject or mis-route: duplicate ids, unresolved
// destinations, history and store references to nothing.
package validate

import (
	"fmt"
	"strconv"

	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/refs"
)

// Graph returns an *AggregateError listing every issue in g, or nil.
func Graph(g *domain.Graph) error {
	if g == nil {
		return &AggregateError{Issues: []*Issue{{Reason: "graph is nil"}}}
	}

	var issues []*Issue
	add := func(node, field, format string, args ...any) {
		issues = append(issues, &Issue{NodeID: node, Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if g.First == nil {
		add("", "/first", "first node is missing")
	}

	seen := make(map[string]bool)
	for i, n := range g.AllNodes() {
		at := "/first"
		if g.First == nil || i > 0 {
			at = nodePath(g, n)
		}
		id := n.NodeID()
		switch {
		case id == "":
			add("", at, "node id is empty")
		case seen[id]:
			add(id, at, "duplicate node id")
		}
		seen[id] = true

		switch n := n.(type) {
		case *domain.GraphNode:
			if n.Path == "" {
				add(id, at+"/Graph/path", "sub-graph path is empty")
			}
		case *domain.PlainNode:
			if e, ok := n.Executor.(*domain.GraphExecutor); ok && e.Path == "" {
				add(id, at+"/Node/executor/Graph/path", "sub-graph path is empty")
			}
		}
	}

	stores := make(map[string]bool)
	for i, s := range g.Stores {
		at := "/stores/" + strconv.Itoa(i)
		switch {
		case s.ID == "":
			add("", at+"/id", "store id is empty")
		case stores[s.ID]:
			add("", at+"/id", "duplicate store id %q", s.ID)
		}
		stores[s.ID] = true
		for j, doc := range s.Documents {
			if limit, ok := sizerMax(doc); ok && limit <= 0 {
				add("", at+"/documents/"+strconv.Itoa(j), "sizer max must be positive")
			}
		}
	}

	for _, r := range refs.Collect(g) {
		switch {
		case r.Kind == refs.KindStore:
			if !stores[r.ID] {
				add(r.Owner, r.Path, "unknown store %q", r.ID)
			}
		case r.ID == "":
			add(r.Owner, r.Path, "%s is unresolved", describe(r.Kind))
		case !seen[r.ID]:
			add(r.Owner, r.Path, "%s targets unknown node %q", describe(r.Kind), r.ID)
		}
	}

	if len(issues) > 0 {
		return &AggregateError{Issues: issues}
	}
	return nil
}

// Unreachable returns the ids of nodes no destination path from first
// reaches, in document order.
func Unreachable(g *domain.Graph) []string {
	if g == nil || g.First == nil {
		return nil
	}
	visited := map[string]bool{}
	queue := []string{g.First.NodeID()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		n, ok := g.NodeByID(id)
		if !ok {
			continue
		}
		for _, d := range *n.Destinations() {
			if next, ok := d.Next.(*domain.NextNode); ok && next.ID != "" && !visited[next.ID] {
				queue = append(queue, next.ID)
			}
		}
	}

	var out []string
	for _, n := range g.Nodes {
		if !visited[n.NodeID()] {
			out = append(out, n.NodeID())
		}
	}
	return out
}

func nodePath(g *domain.Graph, n domain.Node) string {
	for i, m := range g.Nodes {
		if m == n {
			return "/nodes/" + strconv.Itoa(i)
		}
	}
	return ""
}

func sizerMax(doc domain.StoreDocument) (int, bool) {
	var sizer domain.StoreDocumentSizer
	switch d := doc.(type) {
	case *domain.DocumentText:
		sizer = d.Sizer
	case *domain.DocumentPdf:
		sizer = d.Sizer
	}
	switch s := sizer.(type) {
	case *domain.SizerChars:
		return s.Max, true
	case *domain.SizerMarkdown:
		return s.Max, true
	}
	return 0, false
}

func describe(k refs.Kind) string {
	switch k {
	case refs.KindDestination:
		return "destination"
	case refs.KindAgentHistory:
		return "agent history"
	case refs.KindAgentHistoryMut:
		return "agent history mutation"
	}
	return string(k)
}
