package dsl

import "github.com/afuentesan/awpak-builder/pkg/domain"

// Ctx reads path from the context.
func Ctx(path string) domain.DataFrom { return &domain.FromContext{Path: path} }

// MustCtx reads path from the context and fails when it is missing.
func MustCtx(path string) domain.DataFrom { return &domain.FromContext{Path: path, Required: true} }

// Static is a literal value.
func Static(v any) domain.DataFrom { return &domain.FromStatic{Value: v} }

// Input reads the raw graph input.
func Input() domain.DataFrom { return &domain.FromInput{} }

// ParsedInput reads path from the graph input parsed as JSON.
func ParsedInput(path string) domain.DataFrom { return &domain.FromParsedInput{Path: path} }

// Concat joins the string form of values.
func Concat(values ...domain.DataFrom) domain.DataFrom {
	return &domain.FromConcat{Value: append([]domain.DataFrom{}, values...)}
}

// History reads the last message of the agent node id.
func History(id string) domain.DataFrom {
	return &domain.FromAgentHistory{ID: id, Content: &domain.ContentLastMessage{}}
}

// Query searches store id for the closest samples to query.
func Query(store string, query domain.DataFrom, samples int) domain.DataFrom {
	return &domain.FromStore{ID: store, Query: query, Samples: samples}
}

// Eq holds when both values are equal.
func Eq(a, b domain.DataFrom) domain.DataComparator { return &domain.CmpEq{From1: a, From2: b} }

// NotEq holds when the values differ.
func NotEq(a, b domain.DataFrom) domain.DataComparator { return &domain.CmpNotEq{From1: a, From2: b} }

// Empty holds when v is null or empty.
func Empty(v domain.DataFrom) domain.DataComparator { return &domain.CmpEmpty{Value: v} }

// Not negates c.
func Not(c domain.DataComparator) domain.DataComparator { return &domain.CmpNot{Value: c} }

// And holds when both comparators hold.
func And(a, b domain.DataComparator) domain.DataComparator { return &domain.CmpAnd{Comp1: a, Comp2: b} }

// Or holds when either comparator holds.
func Or(a, b domain.DataComparator) domain.DataComparator { return &domain.CmpOr{Comp1: a, Comp2: b} }
