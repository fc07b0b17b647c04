package domain

// DataFromTag identifies a DataFrom variant.
type DataFromTag string

const (
	DataFromContext      DataFromTag = "Context"
	DataFromParsedInput  DataFromTag = "ParsedInput"
	DataFromInput        DataFromTag = "Input"
	DataFromStatic       DataFromTag = "Static"
	DataFromConcat       DataFromTag = "Concat"
	DataFromOperation    DataFromTag = "Operation"
	DataFromNull         DataFromTag = "Null"
	DataFromAgentHistory DataFromTag = "AgentHistory"
	DataFromStore        DataFromTag = "Store"
)

var dataFromTags = []DataFromTag{
	DataFromContext, DataFromParsedInput, DataFromInput, DataFromStatic, DataFromConcat,
	DataFromOperation, DataFromNull, DataFromAgentHistory, DataFromStore,
}

// DataFromTags returns every DataFrom tag.
func DataFromTags() []DataFromTag { return cloneTags(dataFromTags) }

// ParseDataFromTag resolves a wire tag into a DataFromTag.
func ParseDataFromTag(s string) (DataFromTag, bool) { return parseTag(dataFromTags, s) }

// DataFrom is an expression describing where a runtime value comes from.
// Concat and Operation make it recursive.
type DataFrom interface {
	Tag() DataFromTag
	isDataFrom()
}

// FromContext reads a value from the graph context by path.
type FromContext struct {
	Path     string
	Required bool
}

// FromParsedInput reads a value from the graph input parsed as JSON.
// An empty Path selects the whole input.
type FromParsedInput struct {
	Path     string
	Required bool
}

// FromInput reads the raw graph input.
type FromInput struct {
	Required bool
}

// FromStatic is a literal. Value holds any JSON value; strings are
// interpreted as literals when encoded.
type FromStatic struct {
	Value any
}

// FromConcat joins the string form of every element.
type FromConcat struct {
	Value []DataFrom
}

// FromOperation computes a value from nested expressions.
type FromOperation struct {
	Value DataOperation
}

// FromNull is the null value.
type FromNull struct{}

// FromAgentHistory reads the conversation history of the agent node ID.
type FromAgentHistory struct {
	ID      string
	Content FromAgentHistoryContent
}

// FromStore queries the vector store ID.
type FromStore struct {
	ID      string
	Query   DataFrom
	Samples int
}

func (*FromContext) Tag() DataFromTag      { return DataFromContext }
func (*FromParsedInput) Tag() DataFromTag  { return DataFromParsedInput }
func (*FromInput) Tag() DataFromTag        { return DataFromInput }
func (*FromStatic) Tag() DataFromTag       { return DataFromStatic }
func (*FromConcat) Tag() DataFromTag       { return DataFromConcat }
func (*FromOperation) Tag() DataFromTag    { return DataFromOperation }
func (*FromNull) Tag() DataFromTag         { return DataFromNull }
func (*FromAgentHistory) Tag() DataFromTag { return DataFromAgentHistory }
func (*FromStore) Tag() DataFromTag        { return DataFromStore }

func (*FromContext) isDataFrom()      {}
func (*FromParsedInput) isDataFrom()  {}
func (*FromInput) isDataFrom()        {}
func (*FromStatic) isDataFrom()       {}
func (*FromConcat) isDataFrom()       {}
func (*FromOperation) isDataFrom()    {}
func (*FromNull) isDataFrom()         {}
func (*FromAgentHistory) isDataFrom() {}
func (*FromStore) isDataFrom()        {}

// NewDataFrom returns the default instance of the variant tag.
func NewDataFrom(tag DataFromTag) (DataFrom, bool) {
	switch tag {
	case DataFromContext:
		return &FromContext{}, true
	case DataFromParsedInput:
		return &FromParsedInput{}, true
	case DataFromInput:
		return &FromInput{}, true
	case DataFromStatic:
		return &FromStatic{Value: ""}, true
	case DataFromConcat:
		return &FromConcat{Value: []DataFrom{}}, true
	case DataFromOperation:
		return &FromOperation{Value: &OpLen{Value: &FromContext{}}}, true
	case DataFromNull:
		return &FromNull{}, true
	case DataFromAgentHistory:
		return &FromAgentHistory{Content: &ContentFull{}}, true
	case DataFromStore:
		return &FromStore{Query: &FromStatic{Value: ""}, Samples: 1}, true
	}
	return nil, false
}

// DefaultDataFrom is the value a new DataFrom slot starts with.
func DefaultDataFrom() DataFrom { return &FromContext{} }

// DataOperationTag identifies a DataOperation variant.
type DataOperationTag string

const (
	DataOperationLen         DataOperationTag = "Len"
	DataOperationAdd         DataOperationTag = "Add"
	DataOperationSubstract   DataOperationTag = "Substract"
	DataOperationStringSplit DataOperationTag = "StringSplit"
)

var dataOperationTags = []DataOperationTag{DataOperationLen, DataOperationAdd, DataOperationSubstract, DataOperationStringSplit}

// DataOperationTags returns every DataOperation tag.
func DataOperationTags() []DataOperationTag { return cloneTags(dataOperationTags) }

// ParseDataOperationTag resolves a wire tag into a DataOperationTag.
func ParseDataOperationTag(s string) (DataOperationTag, bool) {
	return parseTag(dataOperationTags, s)
}

// DataOperation computes a value from one or two DataFrom operands.
type DataOperation interface {
	Tag() DataOperationTag
	isDataOperation()
}

type OpLen struct {
	Value DataFrom
}

type OpAdd struct {
	Num1 DataFrom
	Num2 DataFrom
}

type OpSubstract struct {
	Num1 DataFrom
	Num2 DataFrom
}

type OpStringSplit struct {
	From DataFrom
	Sep  string
}

func (*OpLen) Tag() DataOperationTag         { return DataOperationLen }
func (*OpAdd) Tag() DataOperationTag         { return DataOperationAdd }
func (*OpSubstract) Tag() DataOperationTag   { return DataOperationSubstract }
func (*OpStringSplit) Tag() DataOperationTag { return DataOperationStringSplit }

func (*OpLen) isDataOperation()         {}
func (*OpAdd) isDataOperation()         {}
func (*OpSubstract) isDataOperation()   {}
func (*OpStringSplit) isDataOperation() {}

// NewDataOperation returns the default instance of the variant tag.
func NewDataOperation(tag DataOperationTag) (DataOperation, bool) {
	switch tag {
	case DataOperationLen:
		return &OpLen{Value: DefaultDataFrom()}, true
	case DataOperationAdd:
		return &OpAdd{Num1: DefaultDataFrom(), Num2: DefaultDataFrom()}, true
	case DataOperationSubstract:
		return &OpSubstract{Num1: DefaultDataFrom(), Num2: DefaultDataFrom()}, true
	case DataOperationStringSplit:
		return &OpStringSplit{From: DefaultDataFrom()}, true
	}
	return nil, false
}

// FromAgentHistoryContentTag identifies a FromAgentHistoryContent variant.
type FromAgentHistoryContentTag string

const (
	ContentTagFull          FromAgentHistoryContentTag = "Full"
	ContentTagFullMessages  FromAgentHistoryContentTag = "FullMessages"
	ContentTagFirst         FromAgentHistoryContentTag = "First"
	ContentTagFirstMessage  FromAgentHistoryContentTag = "FirstMessage"
	ContentTagLast          FromAgentHistoryContentTag = "Last"
	ContentTagLastMessage   FromAgentHistoryContentTag = "LastMessage"
	ContentTagRange         FromAgentHistoryContentTag = "Range"
	ContentTagRangeMessages FromAgentHistoryContentTag = "RangeMessages"
	ContentTagItem          FromAgentHistoryContentTag = "Item"
	ContentTagItemMessage   FromAgentHistoryContentTag = "ItemMessage"
)

var contentTags = []FromAgentHistoryContentTag{
	ContentTagFull, ContentTagFullMessages, ContentTagFirst, ContentTagFirstMessage,
	ContentTagLast, ContentTagLastMessage, ContentTagRange, ContentTagRangeMessages,
	ContentTagItem, ContentTagItemMessage,
}

// FromAgentHistoryContentTags returns every FromAgentHistoryContent tag.
func FromAgentHistoryContentTags() []FromAgentHistoryContentTag { return cloneTags(contentTags) }

// ParseFromAgentHistoryContentTag resolves a wire tag.
func ParseFromAgentHistoryContentTag(s string) (FromAgentHistoryContentTag, bool) {
	return parseTag(contentTags, s)
}

// FromAgentHistoryContent selects which part of an agent history is read.
type FromAgentHistoryContent interface {
	Tag() FromAgentHistoryContentTag
	isHistoryContent()
}

type ContentFull struct{}
type ContentFullMessages struct{}
type ContentFirst struct{}
type ContentFirstMessage struct{}
type ContentLast struct{}
type ContentLastMessage struct{}

type ContentRange struct {
	From int
	To   int
}

type ContentRangeMessages struct {
	From int
	To   int
}

type ContentItem struct {
	Value int
}

type ContentItemMessage struct {
	Value int
}

func (*ContentFull) Tag() FromAgentHistoryContentTag          { return ContentTagFull }
func (*ContentFullMessages) Tag() FromAgentHistoryContentTag  { return ContentTagFullMessages }
func (*ContentFirst) Tag() FromAgentHistoryContentTag         { return ContentTagFirst }
func (*ContentFirstMessage) Tag() FromAgentHistoryContentTag  { return ContentTagFirstMessage }
func (*ContentLast) Tag() FromAgentHistoryContentTag          { return ContentTagLast }
func (*ContentLastMessage) Tag() FromAgentHistoryContentTag   { return ContentTagLastMessage }
func (*ContentRange) Tag() FromAgentHistoryContentTag         { return ContentTagRange }
func (*ContentRangeMessages) Tag() FromAgentHistoryContentTag { return ContentTagRangeMessages }
func (*ContentItem) Tag() FromAgentHistoryContentTag          { return ContentTagItem }
func (*ContentItemMessage) Tag() FromAgentHistoryContentTag   { return ContentTagItemMessage }

func (*ContentFull) isHistoryContent()          {}
func (*ContentFullMessages) isHistoryContent()  {}
func (*ContentFirst) isHistoryContent()         {}
func (*ContentFirstMessage) isHistoryContent()  {}
func (*ContentLast) isHistoryContent()          {}
func (*ContentLastMessage) isHistoryContent()   {}
func (*ContentRange) isHistoryContent()         {}
func (*ContentRangeMessages) isHistoryContent() {}
func (*ContentItem) isHistoryContent()          {}
func (*ContentItemMessage) isHistoryContent()   {}

// NewFromAgentHistoryContent returns the default instance of the variant tag.
func NewFromAgentHistoryContent(tag FromAgentHistoryContentTag) (FromAgentHistoryContent, bool) {
	switch tag {
	case ContentTagFull:
		return &ContentFull{}, true
	case ContentTagFullMessages:
		return &ContentFullMessages{}, true
	case ContentTagFirst:
		return &ContentFirst{}, true
	case ContentTagFirstMessage:
		return &ContentFirstMessage{}, true
	case ContentTagLast:
		return &ContentLast{}, true
	case ContentTagLastMessage:
		return &ContentLastMessage{}, true
	case ContentTagRange:
		return &ContentRange{}, true
	case ContentTagRangeMessages:
		return &ContentRangeMessages{}, true
	case ContentTagItem:
		return &ContentItem{}, true
	case ContentTagItemMessage:
		return &ContentItemMessage{}, true
	}
	return nil, false
}

// DataToString renders a DataFrom as text wrapped in an optional prefix and suffix.
type DataToString struct {
	From   DataFrom
	Prefix string
	Suffix string
}

// NewDataToString returns a DataToString reading the default expression.
func NewDataToString() DataToString {
	return DataToString{From: DefaultDataFrom()}
}

// DataToContext describes where a node result is written in the context.
// A blank Path makes the whole value meaningless and it is dropped on encode.
type DataToContext struct {
	Path     string
	Ty       DataType
	Merge    DataMerge
	Optional bool
}
