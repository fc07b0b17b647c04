package transition

import "github.com/afuentesan/awpak-builder/pkg/domain"

// retag implements the shared contract. carry moves compatible fields from
// old into the freshly built next value.
func retag[V interface{ Tag() T }, T comparable](cur V, tag T, build func(T) (V, bool), carry func(old, next V)) (V, bool) {
	next, ok := build(tag)
	if !ok {
		var zero V
		return zero, false
	}
	if any(cur) == nil {
		return next, true
	}
	if cur.Tag() == tag {
		return cur, true
	}
	carry(cur, next)
	return next, true
}

// DataFrom retags an expression.
//
//	Context <-> ParsedInput           path, required
//	Context/ParsedInput <-> Input     required
func DataFrom(cur domain.DataFrom, tag domain.DataFromTag) (domain.DataFrom, bool) {
	return retag(cur, tag, domain.NewDataFrom, func(old, next domain.DataFrom) {
		path, hasPath, required, hasRequired := inputFields(old)
		switch n := next.(type) {
		case *domain.FromContext:
			if hasPath {
				n.Path = path
			}
			if hasRequired {
				n.Required = required
			}
		case *domain.FromParsedInput:
			if hasPath {
				n.Path = path
			}
			if hasRequired {
				n.Required = required
			}
		case *domain.FromInput:
			if hasRequired {
				n.Required = required
			}
		}
	})
}

func inputFields(v domain.DataFrom) (path string, hasPath bool, required, hasRequired bool) {
	switch v := v.(type) {
	case *domain.FromContext:
		return v.Path, true, v.Required, true
	case *domain.FromParsedInput:
		return v.Path, true, v.Required, true
	case *domain.FromInput:
		return "", false, v.Required, true
	}
	return "", false, false, false
}

// DataOperation retags an operation.
//
//	Add <-> Substract                 num_1, num_2
func DataOperation(cur domain.DataOperation, tag domain.DataOperationTag) (domain.DataOperation, bool) {
	return retag(cur, tag, domain.NewDataOperation, func(old, next domain.DataOperation) {
		var num1, num2 domain.DataFrom
		switch o := old.(type) {
		case *domain.OpAdd:
			num1, num2 = o.Num1, o.Num2
		case *domain.OpSubstract:
			num1, num2 = o.Num1, o.Num2
		default:
			return
		}
		switch n := next.(type) {
		case *domain.OpAdd:
			n.Num1, n.Num2 = num1, num2
		case *domain.OpSubstract:
			n.Num1, n.Num2 = num1, num2
		}
	})
}

// DataComparator retags a condition.
//
//	Eq/NotEq/Gt/Lt among themselves   from_1, from_2
//	And/Or/Xor/Nand among themselves  comp_1, comp_2
//	Empty <-> NotEmpty                value
func DataComparator(cur domain.DataComparator, tag domain.DataComparatorTag) (domain.DataComparator, bool) {
	return retag(cur, tag, domain.NewDataComparator, func(old, next domain.DataComparator) {
		if a, b, ok := operands(old); ok {
			setOperands(next, a, b)
		}
		if a, b, ok := branches(old); ok {
			setBranches(next, a, b)
		}
		if v, ok := emptiness(old); ok {
			switch n := next.(type) {
			case *domain.CmpEmpty:
				n.Value = v
			case *domain.CmpNotEmpty:
				n.Value = v
			}
		}
	})
}

func operands(c domain.DataComparator) (domain.DataFrom, domain.DataFrom, bool) {
	switch c := c.(type) {
	case *domain.CmpEq:
		return c.From1, c.From2, true
	case *domain.CmpNotEq:
		return c.From1, c.From2, true
	case *domain.CmpGt:
		return c.From1, c.From2, true
	case *domain.CmpLt:
		return c.From1, c.From2, true
	}
	return nil, nil, false
}

func setOperands(c domain.DataComparator, a, b domain.DataFrom) {
	switch c := c.(type) {
	case *domain.CmpEq:
		c.From1, c.From2 = a, b
	case *domain.CmpNotEq:
		c.From1, c.From2 = a, b
	case *domain.CmpGt:
		c.From1, c.From2 = a, b
	case *domain.CmpLt:
		c.From1, c.From2 = a, b
	}
}

func branches(c domain.DataComparator) (domain.DataComparator, domain.DataComparator, bool) {
	switch c := c.(type) {
	case *domain.CmpAnd:
		return c.Comp1, c.Comp2, true
	case *domain.CmpOr:
		return c.Comp1, c.Comp2, true
	case *domain.CmpXor:
		return c.Comp1, c.Comp2, true
	case *domain.CmpNand:
		return c.Comp1, c.Comp2, true
	}
	return nil, nil, false
}

func setBranches(c domain.DataComparator, a, b domain.DataComparator) {
	switch c := c.(type) {
	case *domain.CmpAnd:
		c.Comp1, c.Comp2 = a, b
	case *domain.CmpOr:
		c.Comp1, c.Comp2 = a, b
	case *domain.CmpXor:
		c.Comp1, c.Comp2 = a, b
	case *domain.CmpNand:
		c.Comp1, c.Comp2 = a, b
	}
}

func emptiness(c domain.DataComparator) (domain.DataFrom, bool) {
	switch c := c.(type) {
	case *domain.CmpEmpty:
		return c.Value, true
	case *domain.CmpNotEmpty:
		return c.Value, true
	}
	return nil, false
}

// FromAgentHistoryContent retags a history selector.
//
//	Range <-> RangeMessages           from, to
//	Item <-> ItemMessage              value
func FromAgentHistoryContent(cur domain.FromAgentHistoryContent, tag domain.FromAgentHistoryContentTag) (domain.FromAgentHistoryContent, bool) {
	return retag(cur, tag, domain.NewFromAgentHistoryContent, func(old, next domain.FromAgentHistoryContent) {
		switch o := old.(type) {
		case *domain.ContentRange:
			if n, ok := next.(*domain.ContentRangeMessages); ok {
				n.From, n.To = o.From, o.To
			}
		case *domain.ContentRangeMessages:
			if n, ok := next.(*domain.ContentRange); ok {
				n.From, n.To = o.From, o.To
			}
		case *domain.ContentItem:
			if n, ok := next.(*domain.ContentItemMessage); ok {
				n.Value = o.Value
			}
		case *domain.ContentItemMessage:
			if n, ok := next.(*domain.ContentItem); ok {
				n.Value = o.Value
			}
		}
	})
}

// DataToAgentHistory retags a history write mode.
//
//	ReplaceItem <-> StringToItem      value
func DataToAgentHistory(cur domain.DataToAgentHistory, tag domain.DataToAgentHistoryTag) (domain.DataToAgentHistory, bool) {
	return retag(cur, tag, domain.NewDataToAgentHistory, func(old, next domain.DataToAgentHistory) {
		switch o := old.(type) {
		case *domain.ToHistoryReplaceItem:
			if n, ok := next.(*domain.ToHistoryStringToItem); ok {
				n.Value = o.Value
			}
		case *domain.ToHistoryStringToItem:
			if n, ok := next.(*domain.ToHistoryReplaceItem); ok {
				n.Value = o.Value
			}
		}
	})
}

// NodeNext retags a destination target.
//
//	ExitOk <-> ExitErr                value
func NodeNext(cur domain.NodeNext, tag domain.NodeNextTag) (domain.NodeNext, bool) {
	return retag(cur, tag, domain.NewNodeNext, func(old, next domain.NodeNext) {
		switch o := old.(type) {
		case *domain.NextExitOk:
			if n, ok := next.(*domain.NextExitErr); ok {
				n.Value = o.Value
			}
		case *domain.NextExitErr:
			if n, ok := next.(*domain.NextExitOk); ok {
				n.Value = o.Value
			}
		}
	})
}
