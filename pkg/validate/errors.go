package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue is a single structural problem in a graph.
type Issue struct {
	NodeID string // Owning node, empty for graph-level issues
	Field  string // Wire location, e.g. /nodes/1/Node/destination/0/next/Node
	Reason string
}

func (e *Issue) Error() string {
	var b strings.Builder
	if e.NodeID != "" {
		fmt.Fprintf(&b, "node %q: ", e.NodeID)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Reason)
	return b.String()
}

// AggregateError collects every issue found in one pass.
type AggregateError struct {
	Issues []*Issue
}

func (e *AggregateError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Issues))
	for i, issue := range e.Issues {
		msg += fmt.Sprintf("  %d. %s\n", i+1, issue.Error())
	}
	return msg
}

// Unwrap exposes each issue to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	out := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		out[i] = issue
	}
	return out
}

// Issues returns the issues carried by err, or nil when err is not an
// *AggregateError.
func Issues(err error) []*Issue {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Issues
	}
	return nil
}
