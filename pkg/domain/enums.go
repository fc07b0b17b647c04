package domain

// DataType is the target type used when a value is written to the context.
// The empty value means the field is absent.
type DataType string

const (
	DataTypeNull   DataType = "Null"
	DataTypeBool   DataType = "Bool"
	DataTypeNumber DataType = "Number"
	DataTypeString DataType = "String"
	DataTypeArray  DataType = "Array"
	DataTypeObject DataType = "Object"
)

var dataTypes = []DataType{DataTypeNull, DataTypeBool, DataTypeNumber, DataTypeString, DataTypeArray, DataTypeObject}

// DataTypes returns the DataType vocabulary in wire order.
func DataTypes() []DataType { return cloneTags(dataTypes) }

// ParseDataType resolves a wire name into a DataType.
func ParseDataType(s string) (DataType, bool) { return parseTag(dataTypes, s) }

// DataMerge selects how a value is merged into an existing context entry.
// The empty value means the field is absent.
type DataMerge string

const (
	DataMergeInsert        DataMerge = "Insert"
	DataMergeAppend        DataMerge = "Append"
	DataMergeAppendToArray DataMerge = "AppendToArray"
)

var dataMerges = []DataMerge{DataMergeInsert, DataMergeAppend, DataMergeAppendToArray}

// DataMerges returns the DataMerge vocabulary in wire order.
func DataMerges() []DataMerge { return cloneTags(dataMerges) }

// ParseDataMerge resolves a wire name into a DataMerge.
func ParseDataMerge(s string) (DataMerge, bool) { return parseTag(dataMerges, s) }

// AwpakMethod is the HTTP method of a WebClient executor.
type AwpakMethod string

const (
	MethodOptions AwpakMethod = "Options"
	MethodGet     AwpakMethod = "Get"
	MethodPost    AwpakMethod = "Post"
	MethodPut     AwpakMethod = "Put"
	MethodDelete  AwpakMethod = "Delete"
	MethodHead    AwpakMethod = "Head"
	MethodTrace   AwpakMethod = "Trace"
	MethodConnect AwpakMethod = "Connect"
	MethodPatch   AwpakMethod = "Patch"
)

var awpakMethods = []AwpakMethod{
	MethodOptions, MethodGet, MethodPost, MethodPut, MethodDelete,
	MethodHead, MethodTrace, MethodConnect, MethodPatch,
}

// AwpakMethods returns the AwpakMethod vocabulary in wire order.
func AwpakMethods() []AwpakMethod { return cloneTags(awpakMethods) }

// ParseAwpakMethod resolves a wire name into an AwpakMethod.
func ParseAwpakMethod(s string) (AwpakMethod, bool) { return parseTag(awpakMethods, s) }

// StoreProvider names the vector store implementation behind a StoreConfig.
type StoreProvider string

const StoreProviderInMemory StoreProvider = "InMemoryVectorStore"

var storeProviders = []StoreProvider{StoreProviderInMemory}

// ParseStoreProvider resolves a wire name into a StoreProvider.
func ParseStoreProvider(s string) (StoreProvider, bool) { return parseTag(storeProviders, s) }
