package refs

import (
	"strconv"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

var (
	_ NodeVisitor           = (*collector)(nil)
	_ NodeExecutorVisitor   = (*collector)(nil)
	_ DataFromVisitor       = (*collector)(nil)
	_ DataOperationVisitor  = (*collector)(nil)
	_ DataComparatorVisitor = (*collector)(nil)
)

// collector records every reference below the node being visited. path and
// owner track the current position.
type collector struct {
	refs  []Ref
	owner string
	path  string
}

func (c *collector) at(seg string, fn func()) {
	saved := c.path
	c.path += "/" + seg
	fn()
	c.path = saved
}

func (c *collector) atIndex(i int, fn func()) { c.at(strconv.Itoa(i), fn) }

func (c *collector) add(kind Kind, field string, target *string) {
	c.refs = append(c.refs, Ref{
		Kind:   kind,
		Owner:  c.owner,
		ID:     *target,
		Path:   c.path + "/" + field,
		target: target,
	})
}

func (c *collector) node(path string, n domain.Node) {
	c.owner = n.NodeID()
	c.path = path
	VisitNode(n, c)
}

func (c *collector) dataFrom(seg string, d domain.DataFrom) {
	if d == nil {
		return
	}
	c.at(seg, func() { VisitDataFrom(d, c) })
}

func (c *collector) comparator(seg string, cmp domain.DataComparator) {
	if cmp == nil {
		return
	}
	c.at(seg, func() { VisitDataComparator(cmp, c) })
}

func (c *collector) strings(seg string, items []domain.DataToString) {
	c.at(seg, func() {
		for i := range items {
			c.atIndex(i, func() { c.dataFrom("from", items[i].From) })
		}
	})
}

func (c *collector) nameValues(seg string, items []domain.WebClientNameValue) {
	c.at(seg, func() {
		for i := range items {
			c.atIndex(i, func() {
				c.dataFrom("name", items[i].Name)
				c.dataFrom("value", items[i].Value)
			})
		}
	})
}

func (c *collector) destinations(seg string, dests []domain.NodeDestination) {
	c.at(seg, func() {
		for i := range dests {
			c.atIndex(i, func() {
				switch next := dests[i].Next.(type) {
				case *domain.NextNode:
					c.at("next", func() { c.add(KindDestination, "Node", &next.ID) })
				case *domain.NextExitOk:
					c.at("next/ExitOk", func() { c.exit(next.Value) })
				case *domain.NextExitErr:
					c.at("next/ExitErr", func() { c.exit(next.Value) })
				}
				c.comparator("condition", dests[i].Condition)
			})
		}
	})
}

func (c *collector) exit(items []domain.DataToString) {
	for i := range items {
		c.atIndex(i, func() { c.dataFrom("from", items[i].From) })
	}
}

// Nodes

func (c *collector) PlainNode(n *domain.PlainNode) {
	c.at("Node", func() {
		if n.Executor != nil {
			c.at("executor", func() { VisitNodeExecutor(n.Executor, c) })
		}
		c.destinations("destination", n.Destination)
	})
}

func (c *collector) GraphNode(n *domain.GraphNode) {
	c.at("Graph", func() {
		c.strings("input", n.Input)
		c.destinations("node_destination", n.NodeDestination)
	})
}

// Executors

func (c *collector) Command(e *domain.Command) {
	c.at("Command", func() { c.command(e) })
}

func (c *collector) command(e *domain.Command) {
	c.dataFrom("command", e.Command)
	c.at("args", func() {
		for i := range e.Args {
			c.dataFrom(strconv.Itoa(i), e.Args[i])
		}
	})
}

func (c *collector) ContextMut(e *domain.ContextMutExecutor) {
	c.at("ContextMut", func() {
		for i := range e.Items {
			c.atIndex(i, func() {
				c.dataFrom("from", e.Items[i].From)
				c.comparator("condition", e.Items[i].Condition)
			})
		}
	})
}

func (c *collector) AgentHistoryMut(e *domain.AgentHistoryMutExecutor) {
	c.at("AgentHistoryMut", func() {
		for i := range e.Items {
			c.atIndex(i, func() {
				c.add(KindAgentHistoryMut, "id", &e.Items[i].ID)
				c.dataFrom("from", e.Items[i].From)
				c.comparator("condition", e.Items[i].Condition)
			})
		}
	})
}

func (c *collector) Agent(e *domain.AIAgent) {
	c.at("Agent", func() {
		c.at("servers", func() {
			for i := range e.Servers {
				c.atIndex(i, func() {
					c.at("arguments", func() {
						for j := range e.Servers[i].Arguments {
							c.dataFrom(strconv.Itoa(j), e.Servers[i].Arguments[j])
						}
					})
				})
			}
		})
		c.strings("prompt", e.Prompt)
	})
}

func (c *collector) WebClient(e *domain.WebClient) {
	c.at("WebClient", func() { c.webClient(e) })
}

func (c *collector) webClient(e *domain.WebClient) {
	c.dataFrom("url", e.URL)
	c.nameValues("headers", e.Headers)
	c.nameValues("query_params", e.QueryParams)
	switch body := e.Body.(type) {
	case *domain.BodyJSON:
		c.dataFrom("body/Json", body.Value)
	case *domain.BodyForm:
		c.nameValues("body/Form", body.Fields)
	}
}

func (c *collector) Parallel(e *domain.Parallel) {
	c.at("Parallel/executors", func() {
		for i := range e.Executors {
			c.atIndex(i, func() {
				switch p := e.Executors[i].(type) {
				case *domain.ParallelCommand:
					c.at("Command", func() {
						if p.Executor != nil {
							c.at("executor", func() { c.command(p.Executor) })
						}
						c.comparator("condition", p.Condition)
					})
				case *domain.ParallelWebClient:
					c.at("WebClient", func() {
						if p.Executor != nil {
							c.at("executor", func() { c.webClient(p.Executor) })
						}
						c.comparator("condition", p.Condition)
					})
				}
			})
		}
	})
}

func (c *collector) Graph(e *domain.GraphExecutor) {
	c.at("Graph", func() { c.strings("input", e.Input) })
}

// Expressions

func (c *collector) Context(*domain.FromContext)         {}
func (c *collector) ParsedInput(*domain.FromParsedInput) {}
func (c *collector) Input(*domain.FromInput)             {}
func (c *collector) Static(*domain.FromStatic)           {}
func (c *collector) Null(*domain.FromNull)               {}

func (c *collector) Concat(d *domain.FromConcat) {
	c.at("Concat", func() {
		for i := range d.Value {
			c.dataFrom(strconv.Itoa(i), d.Value[i])
		}
	})
}

func (c *collector) Operation(d *domain.FromOperation) {
	if d.Value == nil {
		return
	}
	c.at("Operation", func() { VisitDataOperation(d.Value, c) })
}

func (c *collector) AgentHistory(d *domain.FromAgentHistory) {
	c.at("AgentHistory", func() { c.add(KindAgentHistory, "id", &d.ID) })
}

func (c *collector) Store(d *domain.FromStore) {
	c.at("Store", func() {
		c.add(KindStore, "id", &d.ID)
		c.dataFrom("query", d.Query)
	})
}

// Operations

func (c *collector) Len(op *domain.OpLen) { c.dataFrom("Len", op.Value) }

func (c *collector) Add(op *domain.OpAdd) {
	c.at("Add", func() {
		c.dataFrom("num_1", op.Num1)
		c.dataFrom("num_2", op.Num2)
	})
}

func (c *collector) Substract(op *domain.OpSubstract) {
	c.at("Substract", func() {
		c.dataFrom("num_1", op.Num1)
		c.dataFrom("num_2", op.Num2)
	})
}

func (c *collector) StringSplit(op *domain.OpStringSplit) {
	c.at("StringSplit", func() { c.dataFrom("from", op.From) })
}

// Comparators

func (c *collector) pair(tag string, a, b domain.DataFrom) {
	c.at(tag, func() {
		c.dataFrom("from_1", a)
		c.dataFrom("from_2", b)
	})
}

func (c *collector) branches(tag string, a, b domain.DataComparator) {
	c.at(tag, func() {
		c.comparator("comp_1", a)
		c.comparator("comp_2", b)
	})
}

func (c *collector) Eq(v *domain.CmpEq)       { c.pair("Eq", v.From1, v.From2) }
func (c *collector) NotEq(v *domain.CmpNotEq) { c.pair("NotEq", v.From1, v.From2) }
func (c *collector) Gt(v *domain.CmpGt)       { c.pair("Gt", v.From1, v.From2) }
func (c *collector) Lt(v *domain.CmpLt)       { c.pair("Lt", v.From1, v.From2) }

func (c *collector) Regex(v *domain.CmpRegex) {
	c.at("Regex", func() { c.dataFrom("from", v.From) })
}

func (c *collector) And(v *domain.CmpAnd)   { c.branches("And", v.Comp1, v.Comp2) }
func (c *collector) Or(v *domain.CmpOr)     { c.branches("Or", v.Comp1, v.Comp2) }
func (c *collector) Xor(v *domain.CmpXor)   { c.branches("Xor", v.Comp1, v.Comp2) }
func (c *collector) Nand(v *domain.CmpNand) { c.branches("Nand", v.Comp1, v.Comp2) }

func (c *collector) Not(v *domain.CmpNot)           { c.comparator("Not", v.Value) }
func (c *collector) Empty(v *domain.CmpEmpty)       { c.dataFrom("Empty", v.Value) }
func (c *collector) NotEmpty(v *domain.CmpNotEmpty) { c.dataFrom("NotEmpty", v.Value) }
func (c *collector) True(*domain.CmpTrue)           {}
func (c *collector) False(*domain.CmpFalse)         {}
