package refs

import "github.com/afuentesan/awpak-builder/pkg/domain"

// DataFromVisitor has one method per DataFrom variant.
type DataFromVisitor interface {
	Context(*domain.FromContext)
	ParsedInput(*domain.FromParsedInput)
	Input(*domain.FromInput)
	Static(*domain.FromStatic)
	Concat(*domain.FromConcat)
	Operation(*domain.FromOperation)
	Null(*domain.FromNull)
	AgentHistory(*domain.FromAgentHistory)
	Store(*domain.FromStore)
}

// VisitDataFrom dispatches d to the matching method of v. A nil d is skipped.
func VisitDataFrom(d domain.DataFrom, v DataFromVisitor) {
	switch d := d.(type) {
	case *domain.FromContext:
		v.Context(d)
	case *domain.FromParsedInput:
		v.ParsedInput(d)
	case *domain.FromInput:
		v.Input(d)
	case *domain.FromStatic:
		v.Static(d)
	case *domain.FromConcat:
		v.Concat(d)
	case *domain.FromOperation:
		v.Operation(d)
	case *domain.FromNull:
		v.Null(d)
	case *domain.FromAgentHistory:
		v.AgentHistory(d)
	case *domain.FromStore:
		v.Store(d)
	}
}

// DataOperationVisitor has one method per DataOperation variant.
type DataOperationVisitor interface {
	Len(*domain.OpLen)
	Add(*domain.OpAdd)
	Substract(*domain.OpSubstract)
	StringSplit(*domain.OpStringSplit)
}

// VisitDataOperation dispatches op to the matching method of v.
func VisitDataOperation(op domain.DataOperation, v DataOperationVisitor) {
	switch op := op.(type) {
	case *domain.OpLen:
		v.Len(op)
	case *domain.OpAdd:
		v.Add(op)
	case *domain.OpSubstract:
		v.Substract(op)
	case *domain.OpStringSplit:
		v.StringSplit(op)
	}
}

// DataComparatorVisitor has one method per DataComparator variant.
type DataComparatorVisitor interface {
	Eq(*domain.CmpEq)
	NotEq(*domain.CmpNotEq)
	Gt(*domain.CmpGt)
	Lt(*domain.CmpLt)
	Regex(*domain.CmpRegex)
	And(*domain.CmpAnd)
	Or(*domain.CmpOr)
	Xor(*domain.CmpXor)
	Nand(*domain.CmpNand)
	Not(*domain.CmpNot)
	Empty(*domain.CmpEmpty)
	NotEmpty(*domain.CmpNotEmpty)
	True(*domain.CmpTrue)
	False(*domain.CmpFalse)
}

// VisitDataComparator dispatches c to the matching method of v. A nil c is
// skipped.
func VisitDataComparator(c domain.DataComparator, v DataComparatorVisitor) {
	switch c := c.(type) {
	case *domain.CmpEq:
		v.Eq(c)
	case *domain.CmpNotEq:
		v.NotEq(c)
	case *domain.CmpGt:
		v.Gt(c)
	case *domain.CmpLt:
		v.Lt(c)
	case *domain.CmpRegex:
		v.Regex(c)
	case *domain.CmpAnd:
		v.And(c)
	case *domain.CmpOr:
		v.Or(c)
	case *domain.CmpXor:
		v.Xor(c)
	case *domain.CmpNand:
		v.Nand(c)
	case *domain.CmpNot:
		v.Not(c)
	case *domain.CmpEmpty:
		v.Empty(c)
	case *domain.CmpNotEmpty:
		v.NotEmpty(c)
	case *domain.CmpTrue:
		v.True(c)
	case *domain.CmpFalse:
		v.False(c)
	}
}

// NodeExecutorVisitor has one method per NodeExecutor variant.
type NodeExecutorVisitor interface {
	Command(*domain.Command)
	ContextMut(*domain.ContextMutExecutor)
	AgentHistoryMut(*domain.AgentHistoryMutExecutor)
	Agent(*domain.AIAgent)
	WebClient(*domain.WebClient)
	Parallel(*domain.Parallel)
	Graph(*domain.GraphExecutor)
}

// VisitNodeExecutor dispatches e to the matching method of v.
func VisitNodeExecutor(e domain.NodeExecutor, v NodeExecutorVisitor) {
	switch e := e.(type) {
	case *domain.Command:
		v.Command(e)
	case *domain.ContextMutExecutor:
		v.ContextMut(e)
	case *domain.AgentHistoryMutExecutor:
		v.AgentHistoryMut(e)
	case *domain.AIAgent:
		v.Agent(e)
	case *domain.WebClient:
		v.WebClient(e)
	case *domain.Parallel:
		v.Parallel(e)
	case *domain.GraphExecutor:
		v.Graph(e)
	}
}

// NodeVisitor has one method per Node variant.
type NodeVisitor interface {
	PlainNode(*domain.PlainNode)
	GraphNode(*domain.GraphNode)
}

// VisitNode dispatches n to the matching method of v.
func VisitNode(n domain.Node, v NodeVisitor) {
	switch n := n.(type) {
	case *domain.PlainNode:
		v.PlainNode(n)
	case *domain.GraphNode:
		v.GraphNode(n)
	}
}
