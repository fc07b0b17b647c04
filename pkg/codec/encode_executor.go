package codec

import (
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// EncodeNodeExecutor renders an executor. Nil encodes as the default command.
func EncodeNodeExecutor(v domain.NodeExecutor) any {
	switch v := v.(type) {
	case *domain.Command:
		return tagged(v.Tag(), encodeCommand(v))
	case *domain.ContextMutExecutor:
		return tagged(v.Tag(), encodeList(v.Items, encodeContextMut))
	case *domain.AgentHistoryMutExecutor:
		return tagged(v.Tag(), encodeList(v.Items, encodeAgentHistoryMut))
	case *domain.AIAgent:
		return tagged(v.Tag(), encodeAgent(v))
	case *domain.WebClient:
		return tagged(v.Tag(), encodeWebClient(v))
	case *domain.Parallel:
		return tagged(v.Tag(), object{"executors": encodeList(v.Executors, EncodeParallelExecutor)})
	case *domain.GraphExecutor:
		o := object{
			"path":   v.Path,
			"input":  encodeList(v.Input, EncodeDataToString),
			"output": encodeList(v.Output, EncodeGraphNodeOutput),
		}
		putString(o, "id", v.ID)
		return tagged(v.Tag(), o)
	}
	return EncodeNodeExecutor(domain.NewCommand())
}

func encodeCommand(c *domain.Command) object {
	o := object{
		"command": EncodeDataFrom(c.Command),
		"args":    encodeList(c.Args, EncodeDataFrom),
		"output":  encodeList(c.Output, EncodeCommandOutput),
	}
	if c.Timeout > 0 {
		o["timeout"] = c.Timeout
	}
	return o
}

func encodeContextMut(m domain.ContextMut) any {
	o := object{
		"from":      EncodeDataFrom(m.From),
		"condition": EncodeDataComparator(m.Condition),
	}
	if to, ok := EncodeDataToContext(m.To); ok {
		o["to"] = to
	}
	return o
}

func encodeAgentHistoryMut(m domain.AgentHistoryMut) any {
	return object{
		"id":        m.ID,
		"from":      EncodeDataFrom(m.From),
		"to":        EncodeDataToAgentHistory(m.To),
		"condition": EncodeDataComparator(m.Condition),
	}
}

func encodeAgent(a *domain.AIAgent) object {
	o := object{
		"provider":     EncodeAIAgentProvider(a.Provider),
		"save_history": a.SaveHistory,
		"servers":      encodeList(a.Servers, encodeMCPServer),
		"prompt":       encodeList(a.Prompt, EncodeDataToString),
	}
	putString(o, "system_prompt", a.SystemPrompt)
	return o
}

func encodeMCPServer(s domain.NodeMCPServer) any {
	o := object{
		"command":   s.Command,
		"arguments": encodeList(s.Arguments, EncodeDataFrom),
	}
	if len(s.Env) > 0 {
		env := make(map[string]any, len(s.Env))
		for k, v := range s.Env {
			env[k] = v
		}
		o["env"] = env
	}
	return o
}

func encodeWebClient(w *domain.WebClient) object {
	method := w.Method
	if method == "" {
		method = domain.MethodGet
	}
	o := object{
		"url":          EncodeDataFrom(w.URL),
		"method":       string(method),
		"headers":      encodeList(w.Headers, encodeNameValue),
		"query_params": encodeList(w.QueryParams, encodeNameValue),
		"output":       encodeList(w.Output, EncodeWebClientOutput),
	}
	if w.Body != nil {
		o["body"] = EncodeWebClientBody(w.Body)
	}
	if w.Timeout > 0 {
		o["timeout"] = w.Timeout
	}
	return o
}

func encodeNameValue(nv domain.WebClientNameValue) any {
	return object{"name": EncodeDataFrom(nv.Name), "value": EncodeDataFrom(nv.Value)}
}

// EncodeWebClientBody renders a request body.
func EncodeWebClientBody(v domain.WebClientBody) any {
	switch v := v.(type) {
	case *domain.BodyJSON:
		return tagged(v.Tag(), EncodeDataFrom(v.Value))
	case *domain.BodyForm:
		return tagged(v.Tag(), encodeList(v.Fields, encodeNameValue))
	}
	return nil
}

// EncodeParallelExecutor renders one branch of a Parallel executor.
func EncodeParallelExecutor(v domain.ParallelExecutor) any {
	switch v := v.(type) {
	case *domain.ParallelCommand:
		exec := v.Executor
		if exec == nil {
			exec = domain.NewCommand()
		}
		o := object{"executor": encodeCommand(exec), "condition": EncodeDataComparator(v.Condition)}
		putString(o, "ty", string(v.Ty))
		return tagged(v.Tag(), o)
	case *domain.ParallelWebClient:
		exec := v.Executor
		if exec == nil {
			exec = domain.NewWebClient()
		}
		o := object{"executor": encodeWebClient(exec), "condition": EncodeDataComparator(v.Condition)}
		putString(o, "ty", string(v.Ty))
		return tagged(v.Tag(), o)
	}
	return nil
}

// EncodeCommandOutput renders a command output selector.
func EncodeCommandOutput(v domain.CommandOutput) any {
	if v == nil {
		return nil
	}
	return tagged(v.Tag(), putAffix(object{}, v.Affixes()))
}

// EncodeGraphNodeOutput renders a sub-graph output selector.
func EncodeGraphNodeOutput(v domain.GraphNodeOutput) any {
	if v == nil {
		return nil
	}
	return tagged(v.Tag(), putAffix(object{}, v.Affixes()))
}

// EncodeWebClientOutput renders a response output selector.
func EncodeWebClientOutput(v domain.WebClientOutput) any {
	if v == nil {
		return nil
	}
	o := object{}
	if h, ok := v.(*domain.WebHeader); ok {
		o["name"] = h.Name
	}
	return tagged(v.Tag(), putAffix(o, v.Affixes()))
}

// EncodeAIAgentProvider renders a model provider. Nil encodes as an Ollama provider.
func EncodeAIAgentProvider(v domain.AIAgentProvider) any {
	switch v := v.(type) {
	case *domain.ProviderOpenAI:
		return tagged(v.Tag(), object{"model": v.Model, "api_key": v.APIKey})
	case *domain.ProviderAnthropic:
		return tagged(v.Tag(), object{"model": v.Model, "api_key": v.APIKey, "max_tokens": v.MaxTokens})
	case *domain.ProviderDeepSeek:
		o := object{"model": v.Model, "api_key": v.APIKey}
		if v.MaxTokens > 0 {
			o["max_tokens"] = v.MaxTokens
		}
		return tagged(v.Tag(), o)
	case *domain.ProviderGemini:
		return tagged(v.Tag(), object{"model": v.Model, "api_key": v.APIKey})
	case *domain.ProviderOllama:
		return tagged(v.Tag(), object{"model": v.Model})
	}
	return tagged(domain.ProviderTagOllama, object{"model": ""})
}

// EncodeStoreConfig renders a vector store declaration.
func EncodeStoreConfig(s domain.StoreConfig) any {
	provider := s.Provider
	if provider == "" {
		provider = domain.StoreProviderInMemory
	}
	return object{
		"id":        s.ID,
		"provider":  string(provider),
		"model":     EncodeStoreModel(s.Model),
		"documents": encodeList(s.Documents, EncodeStoreDocument),
	}
}

// EncodeStoreModel renders an embedding model. Nil encodes as an Ollama model.
func EncodeStoreModel(v domain.StoreModel) any {
	switch v := v.(type) {
	case *domain.StoreOpenAI:
		return tagged(v.Tag(), object{"model": v.Model, "api_key": v.APIKey})
	case *domain.StoreGemini:
		return tagged(v.Tag(), object{"model": v.Model, "api_key": v.APIKey})
	case *domain.StoreOllama:
		return tagged(v.Tag(), object{"model": v.Model})
	}
	return tagged(domain.StoreModelOllama, object{"model": ""})
}

// EncodeStoreDocument renders a store document.
func EncodeStoreDocument(v domain.StoreDocument) any {
	switch v := v.(type) {
	case *domain.DocumentText:
		return tagged(v.Tag(), object{"path": v.Path, "sizer": EncodeStoreDocumentSizer(v.Sizer)})
	case *domain.DocumentPdf:
		return tagged(v.Tag(), object{"path": v.Path, "sizer": EncodeStoreDocumentSizer(v.Sizer)})
	}
	return nil
}

// EncodeStoreDocumentSizer renders a sizer. Nil encodes as "None".
func EncodeStoreDocumentSizer(v domain.StoreDocumentSizer) any {
	switch v := v.(type) {
	case *domain.SizerChars:
		return tagged(v.Tag(), sizerPayload(v.Desired, v.Max))
	case *domain.SizerMarkdown:
		return tagged(v.Tag(), sizerPayload(v.Desired, v.Max))
	}
	return string(domain.SizerTagNone)
}

func sizerPayload(desired, limit int) object {
	o := object{"max": limit}
	if desired > 0 {
		o["desired"] = desired
	}
	return o
}
