package domain

// DataComparatorTag identifies a DataComparator variant.
type DataComparatorTag string

const (
	ComparatorEq       DataComparatorTag = "Eq"
	ComparatorNotEq    DataComparatorTag = "NotEq"
	ComparatorGt       DataComparatorTag = "Gt"
	ComparatorLt       DataComparatorTag = "Lt"
	ComparatorRegex    DataComparatorTag = "Regex"
	ComparatorAnd      DataComparatorTag = "And"
	ComparatorOr       DataComparatorTag = "Or"
	ComparatorXor      DataComparatorTag = "Xor"
	ComparatorNand     DataComparatorTag = "Nand"
	ComparatorNot      DataComparatorTag = "Not"
	ComparatorEmpty    DataComparatorTag = "Empty"
	ComparatorNotEmpty DataComparatorTag = "NotEmpty"
	ComparatorTrue     DataComparatorTag = "True"
	ComparatorFalse    DataComparatorTag = "False"
)

var comparatorTags = []DataComparatorTag{
	ComparatorEq, ComparatorNotEq, ComparatorGt, ComparatorLt, ComparatorRegex,
	ComparatorAnd, ComparatorOr, ComparatorXor, ComparatorNand, ComparatorNot,
	ComparatorEmpty, ComparatorNotEmpty, ComparatorTrue, ComparatorFalse,
}

// DataComparatorTags returns every DataComparator tag.
func DataComparatorTags() []DataComparatorTag { return cloneTags(comparatorTags) }

// ParseDataComparatorTag resolves a wire tag into a DataComparatorTag.
func ParseDataComparatorTag(s string) (DataComparatorTag, bool) {
	return parseTag(comparatorTags, s)
}

// DataComparator is a boolean condition. And, Or, Xor, Nand and Not nest
// other comparators.
type DataComparator interface {
	Tag() DataComparatorTag
	isDataComparator()
}

type CmpEq struct{ From1, From2 DataFrom }
type CmpNotEq struct{ From1, From2 DataFrom }
type CmpGt struct{ From1, From2 DataFrom }
type CmpLt struct{ From1, From2 DataFrom }

type CmpRegex struct {
	Regex string
	From  DataFrom
}

type CmpAnd struct{ Comp1, Comp2 DataComparator }
type CmpOr struct{ Comp1, Comp2 DataComparator }
type CmpXor struct{ Comp1, Comp2 DataComparator }
type CmpNand struct{ Comp1, Comp2 DataComparator }

type CmpNot struct{ Value DataComparator }

type CmpEmpty struct{ Value DataFrom }
type CmpNotEmpty struct{ Value DataFrom }

type CmpTrue struct{}
type CmpFalse struct{}

func (*CmpEq) Tag() DataComparatorTag       { return ComparatorEq }
func (*CmpNotEq) Tag() DataComparatorTag    { return ComparatorNotEq }
func (*CmpGt) Tag() DataComparatorTag       { return ComparatorGt }
func (*CmpLt) Tag() DataComparatorTag       { return ComparatorLt }
func (*CmpRegex) Tag() DataComparatorTag    { return ComparatorRegex }
func (*CmpAnd) Tag() DataComparatorTag      { return ComparatorAnd }
func (*CmpOr) Tag() DataComparatorTag       { return ComparatorOr }
func (*CmpXor) Tag() DataComparatorTag      { return ComparatorXor }
func (*CmpNand) Tag() DataComparatorTag     { return ComparatorNand }
func (*CmpNot) Tag() DataComparatorTag      { return ComparatorNot }
func (*CmpEmpty) Tag() DataComparatorTag    { return ComparatorEmpty }
func (*CmpNotEmpty) Tag() DataComparatorTag { return ComparatorNotEmpty }
func (*CmpTrue) Tag() DataComparatorTag     { return ComparatorTrue }
func (*CmpFalse) Tag() DataComparatorTag    { return ComparatorFalse }

func (*CmpEq) isDataComparator()       {}
func (*CmpNotEq) isDataComparator()    {}
func (*CmpGt) isDataComparator()       {}
func (*CmpLt) isDataComparator()       {}
func (*CmpRegex) isDataComparator()    {}
func (*CmpAnd) isDataComparator()      {}
func (*CmpOr) isDataComparator()       {}
func (*CmpXor) isDataComparator()      {}
func (*CmpNand) isDataComparator()     {}
func (*CmpNot) isDataComparator()      {}
func (*CmpEmpty) isDataComparator()    {}
func (*CmpNotEmpty) isDataComparator() {}
func (*CmpTrue) isDataComparator()     {}
func (*CmpFalse) isDataComparator()    {}

// DefaultComparator is the value a new condition starts with.
func DefaultComparator() DataComparator { return &CmpTrue{} }

// NewDataComparator returns the default instance of the variant tag.
func NewDataComparator(tag DataComparatorTag) (DataComparator, bool) {
	switch tag {
	case ComparatorEq:
		return &CmpEq{From1: DefaultDataFrom(), From2: DefaultDataFrom()}, true
	case ComparatorNotEq:
		return &CmpNotEq{From1: DefaultDataFrom(), From2: DefaultDataFrom()}, true
	case ComparatorGt:
		return &CmpGt{From1: DefaultDataFrom(), From2: DefaultDataFrom()}, true
	case ComparatorLt:
		return &CmpLt{From1: DefaultDataFrom(), From2: DefaultDataFrom()}, true
	case ComparatorRegex:
		return &CmpRegex{From: DefaultDataFrom()}, true
	case ComparatorAnd:
		return &CmpAnd{Comp1: DefaultComparator(), Comp2: DefaultComparator()}, true
	case ComparatorOr:
		return &CmpOr{Comp1: DefaultComparator(), Comp2: DefaultComparator()}, true
	case ComparatorXor:
		return &CmpXor{Comp1: DefaultComparator(), Comp2: DefaultComparator()}, true
	case ComparatorNand:
		return &CmpNand{Comp1: DefaultComparator(), Comp2: DefaultComparator()}, true
	case ComparatorNot:
		return &CmpNot{Value: DefaultComparator()}, true
	case ComparatorEmpty:
		return &CmpEmpty{Value: DefaultDataFrom()}, true
	case ComparatorNotEmpty:
		return &CmpNotEmpty{Value: DefaultDataFrom()}, true
	case ComparatorTrue:
		return &CmpTrue{}, true
	case ComparatorFalse:
		return &CmpFalse{}, true
	}
	return nil, false
}

// DataToAgentHistoryTag identifies a DataToAgentHistory variant.
type DataToAgentHistoryTag string

const (
	ToHistoryTagReplace       DataToAgentHistoryTag = "Replace"
	ToHistoryTagReplaceFirst  DataToAgentHistoryTag = "ReplaceFirst"
	ToHistoryTagReplaceLast   DataToAgentHistoryTag = "ReplaceLast"
	ToHistoryTagReplaceItem   DataToAgentHistoryTag = "ReplaceItem"
	ToHistoryTagStringToLast  DataToAgentHistoryTag = "StringToLast"
	ToHistoryTagStringToFirst DataToAgentHistoryTag = "StringToFirst"
	ToHistoryTagStringToItem  DataToAgentHistoryTag = "StringToItem"
)

// ToHistoryTagReplaceLastLegacy is the spelling the engine historically
// accepted for ReplaceLast. It is read, never written.
const ToHistoryTagReplaceLastLegacy = "RelaceLast"

var toHistoryTags = []DataToAgentHistoryTag{
	ToHistoryTagReplace, ToHistoryTagReplaceFirst, ToHistoryTagReplaceLast, ToHistoryTagReplaceItem,
	ToHistoryTagStringToLast, ToHistoryTagStringToFirst, ToHistoryTagStringToItem,
}

// DataToAgentHistoryTags returns every DataToAgentHistory tag.
func DataToAgentHistoryTags() []DataToAgentHistoryTag { return cloneTags(toHistoryTags) }

// ParseDataToAgentHistoryTag resolves a wire tag, including the legacy
// ReplaceLast spelling.
func ParseDataToAgentHistoryTag(s string) (DataToAgentHistoryTag, bool) {
	if s == ToHistoryTagReplaceLastLegacy {
		return ToHistoryTagReplaceLast, true
	}
	return parseTag(toHistoryTags, s)
}

// DataToAgentHistory selects how a value is written into an agent history.
type DataToAgentHistory interface {
	Tag() DataToAgentHistoryTag
	isToHistory()
}

type ToHistoryReplace struct{}
type ToHistoryReplaceFirst struct{}
type ToHistoryReplaceLast struct{}
type ToHistoryReplaceItem struct{ Value int }
type ToHistoryStringToLast struct{}
type ToHistoryStringToFirst struct{}
type ToHistoryStringToItem struct{ Value int }

func (*ToHistoryReplace) Tag() DataToAgentHistoryTag       { return ToHistoryTagReplace }
func (*ToHistoryReplaceFirst) Tag() DataToAgentHistoryTag  { return ToHistoryTagReplaceFirst }
func (*ToHistoryReplaceLast) Tag() DataToAgentHistoryTag   { return ToHistoryTagReplaceLast }
func (*ToHistoryReplaceItem) Tag() DataToAgentHistoryTag   { return ToHistoryTagReplaceItem }
func (*ToHistoryStringToLast) Tag() DataToAgentHistoryTag  { return ToHistoryTagStringToLast }
func (*ToHistoryStringToFirst) Tag() DataToAgentHistoryTag { return ToHistoryTagStringToFirst }
func (*ToHistoryStringToItem) Tag() DataToAgentHistoryTag  { return ToHistoryTagStringToItem }

func (*ToHistoryReplace) isToHistory()       {}
func (*ToHistoryReplaceFirst) isToHistory()  {}
func (*ToHistoryReplaceLast) isToHistory()   {}
func (*ToHistoryReplaceItem) isToHistory()   {}
func (*ToHistoryStringToLast) isToHistory()  {}
func (*ToHistoryStringToFirst) isToHistory() {}
func (*ToHistoryStringToItem) isToHistory()  {}

// NewDataToAgentHistory returns the default instance of the variant tag.
func NewDataToAgentHistory(tag DataToAgentHistoryTag) (DataToAgentHistory, bool) {
	switch tag {
	case ToHistoryTagReplace:
		return &ToHistoryReplace{}, true
	case ToHistoryTagReplaceFirst:
		return &ToHistoryReplaceFirst{}, true
	case ToHistoryTagReplaceLast:
		return &ToHistoryReplaceLast{}, true
	case ToHistoryTagReplaceItem:
		return &ToHistoryReplaceItem{}, true
	case ToHistoryTagStringToLast:
		return &ToHistoryStringToLast{}, true
	case ToHistoryTagStringToFirst:
		return &ToHistoryStringToFirst{}, true
	case ToHistoryTagStringToItem:
		return &ToHistoryStringToItem{}, true
	}
	return nil, false
}
