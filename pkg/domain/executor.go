package domain

// NodeExecutorTag identifies a NodeExecutor variant.
type NodeExecutorTag string

const (
	ExecutorCommand         NodeExecutorTag = "Command"
	ExecutorContextMut      NodeExecutorTag = "ContextMut"
	ExecutorAgentHistoryMut NodeExecutorTag = "AgentHistoryMut"
	ExecutorAgent           NodeExecutorTag = "Agent"
	ExecutorWebClient       NodeExecutorTag = "WebClient"
	ExecutorParallel        NodeExecutorTag = "Parallel"
	ExecutorGraph           NodeExecutorTag = "Graph"
)

var executorTags = []NodeExecutorTag{
	ExecutorCommand, ExecutorContextMut, ExecutorAgentHistoryMut, ExecutorAgent,
	ExecutorWebClient, ExecutorParallel, ExecutorGraph,
}

// NodeExecutorTags returns every NodeExecutor tag.
func NodeExecutorTags() []NodeExecutorTag { return cloneTags(executorTags) }

// ParseNodeExecutorTag resolves a wire tag into a NodeExecutorTag.
func ParseNodeExecutorTag(s string) (NodeExecutorTag, bool) { return parseTag(executorTags, s) }

// NodeExecutor is the work a PlainNode performs. Execution itself belongs to
// the engine; the model only carries configuration.
type NodeExecutor interface {
	Tag() NodeExecutorTag
	isNodeExecutor()
}

// Command runs an external program.
type Command struct {
	Command DataFrom
	Args    []DataFrom
	Output  []CommandOutput
	// Timeout in seconds. Zero means no timeout.
	Timeout int
}

// ContextMutExecutor applies context mutations in order.
type ContextMutExecutor struct {
	Items []ContextMut
}

// ContextMut writes a value into the context when Condition holds.
// A nil To leaves the value unwritten.
type ContextMut struct {
	From      DataFrom
	To        *DataToContext
	Condition DataComparator
}

// AgentHistoryMutExecutor applies agent history mutations in order.
type AgentHistoryMutExecutor struct {
	Items []AgentHistoryMut
}

// AgentHistoryMut rewrites the history of the agent node ID.
type AgentHistoryMut struct {
	ID        string
	From      DataFrom
	To        DataToAgentHistory
	Condition DataComparator
}

// AIAgent sends a prompt to a language model provider.
type AIAgent struct {
	Provider     AIAgentProvider
	SystemPrompt string
	SaveHistory  bool
	Servers      []NodeMCPServer
	Prompt       []DataToString
}

// NodeMCPServer is an MCP server process made available to an agent.
type NodeMCPServer struct {
	Command   string
	Arguments []DataFrom
	Env       map[string]string
}

// WebClient performs an HTTP request.
type WebClient struct {
	URL         DataFrom
	Method      AwpakMethod
	Headers     []WebClientNameValue
	QueryParams []WebClientNameValue
	Body        WebClientBody
	Output      []WebClientOutput
	// Timeout in seconds. Zero means no timeout.
	Timeout int
}

// WebClientNameValue is a header, query parameter or form field.
type WebClientNameValue struct {
	Name  DataFrom
	Value DataFrom
}

// Parallel runs several executors concurrently.
type Parallel struct {
	Executors []ParallelExecutor
}

// GraphExecutor runs a sub-graph file as an executor.
type GraphExecutor struct {
	ID     string
	Path   string
	Input  []DataToString
	Output []GraphNodeOutput
}

func (*Command) Tag() NodeExecutorTag                 { return ExecutorCommand }
func (*ContextMutExecutor) Tag() NodeExecutorTag      { return ExecutorContextMut }
func (*AgentHistoryMutExecutor) Tag() NodeExecutorTag { return ExecutorAgentHistoryMut }
func (*AIAgent) Tag() NodeExecutorTag                 { return ExecutorAgent }
func (*WebClient) Tag() NodeExecutorTag               { return ExecutorWebClient }
func (*Parallel) Tag() NodeExecutorTag                { return ExecutorParallel }
func (*GraphExecutor) Tag() NodeExecutorTag           { return ExecutorGraph }

func (*Command) isNodeExecutor()                 {}
func (*ContextMutExecutor) isNodeExecutor()      {}
func (*AgentHistoryMutExecutor) isNodeExecutor() {}
func (*AIAgent) isNodeExecutor()                 {}
func (*WebClient) isNodeExecutor()               {}
func (*Parallel) isNodeExecutor()                {}
func (*GraphExecutor) isNodeExecutor()           {}

// NewCommand returns a command with an empty static program, no arguments
// and no output specs.
func NewCommand() *Command {
	return &Command{
		Command: &FromStatic{Value: ""},
		Args:    []DataFrom{},
		Output:  []CommandOutput{},
	}
}

// NewWebClient returns a GET request to an empty static URL.
func NewWebClient() *WebClient {
	return &WebClient{
		URL:         &FromStatic{Value: ""},
		Method:      MethodGet,
		Headers:     []WebClientNameValue{},
		QueryParams: []WebClientNameValue{},
		Output:      []WebClientOutput{},
	}
}

// NewContextMut returns a mutation writing an empty literal unconditionally.
func NewContextMut() ContextMut {
	return ContextMut{From: &FromStatic{Value: ""}, Condition: DefaultComparator()}
}

// NewAgentHistoryMut returns a mutation replacing a history unconditionally.
func NewAgentHistoryMut() AgentHistoryMut {
	return AgentHistoryMut{From: DefaultDataFrom(), To: &ToHistoryReplace{}, Condition: DefaultComparator()}
}

// NewNodeExecutor returns the default instance of the variant tag.
func NewNodeExecutor(tag NodeExecutorTag) (NodeExecutor, bool) {
	switch tag {
	case ExecutorCommand:
		return NewCommand(), true
	case ExecutorContextMut:
		return &ContextMutExecutor{Items: []ContextMut{}}, true
	case ExecutorAgentHistoryMut:
		return &AgentHistoryMutExecutor{Items: []AgentHistoryMut{}}, true
	case ExecutorAgent:
		return &AIAgent{Provider: &ProviderOllama{}, Servers: []NodeMCPServer{}, Prompt: []DataToString{}}, true
	case ExecutorWebClient:
		return NewWebClient(), true
	case ExecutorParallel:
		return &Parallel{Executors: []ParallelExecutor{}}, true
	case ExecutorGraph:
		return &GraphExecutor{Input: []DataToString{}, Output: []GraphNodeOutput{}}, true
	}
	return nil, false
}

// AIAgentProviderTag identifies an AIAgentProvider variant.
type AIAgentProviderTag string

const (
	ProviderTagOllama    AIAgentProviderTag = "Ollama"
	ProviderTagOpenAI    AIAgentProviderTag = "OpenAI"
	ProviderTagAnthropic AIAgentProviderTag = "Anthropic"
	ProviderTagDeepSeek  AIAgentProviderTag = "DeepSeek"
	ProviderTagGemini    AIAgentProviderTag = "Gemini"
)

var providerTags = []AIAgentProviderTag{ProviderTagOllama, ProviderTagOpenAI, ProviderTagAnthropic, ProviderTagDeepSeek, ProviderTagGemini}

// AIAgentProviderTags returns every AIAgentProvider tag.
func AIAgentProviderTags() []AIAgentProviderTag { return cloneTags(providerTags) }

// ParseAIAgentProviderTag resolves a wire tag into an AIAgentProviderTag.
func ParseAIAgentProviderTag(s string) (AIAgentProviderTag, bool) { return parseTag(providerTags, s) }

// AIAgentProvider is the language model backend of an agent.
type AIAgentProvider interface {
	Tag() AIAgentProviderTag
	isProvider()
}

type ProviderOllama struct {
	Model string
}

type ProviderOpenAI struct {
	Model  string
	APIKey string
}

type ProviderAnthropic struct {
	Model     string
	APIKey    string
	MaxTokens int
}

// ProviderDeepSeek has an optional MaxTokens; zero means unset.
type ProviderDeepSeek struct {
	Model     string
	APIKey    string
	MaxTokens int
}

type ProviderGemini struct {
	Model  string
	APIKey string
}

func (*ProviderOllama) Tag() AIAgentProviderTag    { return ProviderTagOllama }
func (*ProviderOpenAI) Tag() AIAgentProviderTag    { return ProviderTagOpenAI }
func (*ProviderAnthropic) Tag() AIAgentProviderTag { return ProviderTagAnthropic }
func (*ProviderDeepSeek) Tag() AIAgentProviderTag  { return ProviderTagDeepSeek }
func (*ProviderGemini) Tag() AIAgentProviderTag    { return ProviderTagGemini }

func (*ProviderOllama) isProvider()    {}
func (*ProviderOpenAI) isProvider()    {}
func (*ProviderAnthropic) isProvider() {}
func (*ProviderDeepSeek) isProvider()  {}
func (*ProviderGemini) isProvider()    {}

// NewAIAgentProvider returns the default instance of the variant tag.
func NewAIAgentProvider(tag AIAgentProviderTag) (AIAgentProvider, bool) {
	switch tag {
	case ProviderTagOllama:
		return &ProviderOllama{}, true
	case ProviderTagOpenAI:
		return &ProviderOpenAI{}, true
	case ProviderTagAnthropic:
		return &ProviderAnthropic{}, true
	case ProviderTagDeepSeek:
		return &ProviderDeepSeek{}, true
	case ProviderTagGemini:
		return &ProviderGemini{}, true
	}
	return nil, false
}

// ParallelExecutorTag identifies a ParallelExecutor variant.
type ParallelExecutorTag string

const (
	ParallelTagCommand   ParallelExecutorTag = "Command"
	ParallelTagWebClient ParallelExecutorTag = "WebClient"
)

var parallelTags = []ParallelExecutorTag{ParallelTagCommand, ParallelTagWebClient}

// ParallelExecutorTags returns every ParallelExecutor tag.
func ParallelExecutorTags() []ParallelExecutorTag { return cloneTags(parallelTags) }

// ParseParallelExecutorTag resolves a wire tag into a ParallelExecutorTag.
func ParseParallelExecutorTag(s string) (ParallelExecutorTag, bool) { return parseTag(parallelTags, s) }

// ParallelExecutor is one branch of a Parallel executor.
type ParallelExecutor interface {
	Tag() ParallelExecutorTag
	isParallelExecutor()
}

type ParallelCommand struct {
	Ty        DataType
	Executor  *Command
	Condition DataComparator
}

type ParallelWebClient struct {
	Ty        DataType
	Executor  *WebClient
	Condition DataComparator
}

func (*ParallelCommand) Tag() ParallelExecutorTag   { return ParallelTagCommand }
func (*ParallelWebClient) Tag() ParallelExecutorTag { return ParallelTagWebClient }

func (*ParallelCommand) isParallelExecutor()   {}
func (*ParallelWebClient) isParallelExecutor() {}

// NewParallelExecutor returns the default instance of the variant tag.
func NewParallelExecutor(tag ParallelExecutorTag) (ParallelExecutor, bool) {
	switch tag {
	case ParallelTagCommand:
		return &ParallelCommand{Executor: NewCommand(), Condition: DefaultComparator()}, true
	case ParallelTagWebClient:
		return &ParallelWebClient{Executor: NewWebClient(), Condition: DefaultComparator()}, true
	}
	return nil, false
}

// WebClientBodyTag identifies a WebClientBody variant.
type WebClientBodyTag string

const (
	BodyTagJSON WebClientBodyTag = "Json"
	BodyTagForm WebClientBodyTag = "Form"
)

var bodyTags = []WebClientBodyTag{BodyTagJSON, BodyTagForm}

// WebClientBodyTags returns every WebClientBody tag.
func WebClientBodyTags() []WebClientBodyTag { return cloneTags(bodyTags) }

// ParseWebClientBodyTag resolves a wire tag into a WebClientBodyTag.
func ParseWebClientBodyTag(s string) (WebClientBodyTag, bool) { return parseTag(bodyTags, s) }

// WebClientBody is the request payload of a WebClient.
type WebClientBody interface {
	Tag() WebClientBodyTag
	isBody()
}

type BodyJSON struct {
	Value DataFrom
}

type BodyForm struct {
	Fields []WebClientNameValue
}

func (*BodyJSON) Tag() WebClientBodyTag { return BodyTagJSON }
func (*BodyForm) Tag() WebClientBodyTag { return BodyTagForm }

func (*BodyJSON) isBody() {}
func (*BodyForm) isBody() {}

// NewWebClientBody returns the default instance of the variant tag.
func NewWebClientBody(tag WebClientBodyTag) (WebClientBody, bool) {
	switch tag {
	case BodyTagJSON:
		return &BodyJSON{Value: DefaultDataFrom()}, true
	case BodyTagForm:
		return &BodyForm{Fields: []WebClientNameValue{}}, true
	}
	return nil, false
}
