package codec

import (
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// NodeExecutor decodes a single executor.
func (d *Decoder) NodeExecutor(v any) (domain.NodeExecutor, error) { return d.nodeExecutor(v, "") }

func (d *Decoder) nodeExecutor(v any, path string) (domain.NodeExecutor, error) {
	tag, key, payload, ok := pick(v, domain.ParseNodeExecutorTag)
	if !ok {
		return nil, unrecognized("NodeExecutor", path, v)
	}
	at := join(path, key)

	switch tag {
	case domain.ExecutorCommand:
		exec, err := d.command(payload, at)
		if err != nil {
			return nil, err
		}
		return exec, nil
	case domain.ExecutorContextMut:
		items, err := decodeList(d, payload, "ContextMut", at, d.contextMut)
		if err != nil {
			return nil, err
		}
		return &domain.ContextMutExecutor{Items: orEmpty(items)}, nil
	case domain.ExecutorAgentHistoryMut:
		items, err := decodeList(d, payload, "AgentHistoryMut", at, d.agentHistoryMut)
		if err != nil {
			return nil, err
		}
		return &domain.AgentHistoryMutExecutor{Items: orEmpty(items)}, nil
	case domain.ExecutorAgent:
		exec, err := d.agent(payload, at)
		if err != nil {
			return nil, err
		}
		return exec, nil
	case domain.ExecutorWebClient:
		exec, err := d.webClient(payload, at)
		if err != nil {
			return nil, err
		}
		return exec, nil
	case domain.ExecutorParallel:
		obj, err := d.object(payload, "Parallel", at)
		if err != nil {
			return nil, err
		}
		execs, err := decodeList(d, obj["executors"], "ParallelExecutor", join(at, "executors"), d.parallelExecutor)
		if err != nil {
			return nil, err
		}
		return &domain.Parallel{Executors: orEmpty(execs)}, nil
	case domain.ExecutorGraph:
		obj, err := d.object(payload, "GraphExecutor", at)
		if err != nil {
			return nil, err
		}
		var p struct {
			ID   string `wire:"id"`
			Path string `wire:"path"`
		}
		if err := d.fields(obj, &p, "GraphExecutor", at); err != nil {
			return nil, err
		}
		g := &domain.GraphExecutor{ID: p.ID, Path: p.Path}
		if g.Input, err = decodeList(d, obj["input"], "DataToString", join(at, "input"), d.dataToString); err != nil {
			return nil, err
		}
		if g.Output, err = decodeList(d, obj["output"], "GraphNodeOutput", join(at, "output"), d.graphNodeOutput); err != nil {
			return nil, err
		}
		g.Input, g.Output = orEmpty(g.Input), orEmpty(g.Output)
		return g, nil
	}
	return nil, unrecognized("NodeExecutor", path, v)
}

func (d *Decoder) command(v any, path string) (*domain.Command, error) {
	obj, err := d.object(v, "Command", path)
	if err != nil {
		return nil, err
	}
	var p struct {
		Timeout int `wire:"timeout"`
	}
	if err := d.fields(obj, &p, "Command", path); err != nil {
		return nil, err
	}
	c := &domain.Command{Timeout: p.Timeout}
	if c.Command, err = d.requiredDataFrom(obj, "command", path); err != nil {
		return nil, err
	}
	if c.Args, err = decodeList(d, obj["args"], "DataFrom", join(path, "args"), d.dataFrom); err != nil {
		return nil, err
	}
	if c.Output, err = decodeList(d, obj["output"], "CommandOutput", join(path, "output"), d.commandOutput); err != nil {
		return nil, err
	}
	c.Args, c.Output = orEmpty(c.Args), orEmpty(c.Output)
	return c, nil
}

func (d *Decoder) contextMut(v any, path string) (domain.ContextMut, error) {
	var m domain.ContextMut
	obj, err := d.object(v, "ContextMut", path)
	if err != nil {
		return m, err
	}
	if m.From, err = d.requiredDataFrom(obj, "from", path); err != nil {
		return m, err
	}
	if m.To, err = d.dataToContext(obj["to"], join(path, "to")); err != nil {
		return m, err
	}
	m.Condition, err = d.requiredComparator(obj, "condition", path)
	return m, err
}

func (d *Decoder) agentHistoryMut(v any, path string) (domain.AgentHistoryMut, error) {
	var m domain.AgentHistoryMut
	obj, err := d.object(v, "AgentHistoryMut", path)
	if err != nil {
		return m, err
	}
	var p struct {
		ID string `wire:"id"`
	}
	if err := d.fields(obj, &p, "AgentHistoryMut", path); err != nil {
		return m, err
	}
	m.ID = p.ID
	if m.From, err = d.requiredDataFrom(obj, "from", path); err != nil {
		return m, err
	}
	if m.To, err = d.toHistory(obj["to"], join(path, "to")); err != nil {
		return m, err
	}
	m.Condition, err = d.requiredComparator(obj, "condition", path)
	return m, err
}

func (d *Decoder) agent(v any, path string) (*domain.AIAgent, error) {
	obj, err := d.object(v, "Agent", path)
	if err != nil {
		return nil, err
	}
	var p struct {
		SystemPrompt string `wire:"system_prompt"`
		SaveHistory  bool   `wire:"save_history"`
	}
	if err := d.fields(obj, &p, "Agent", path); err != nil {
		return nil, err
	}
	a := &domain.AIAgent{SystemPrompt: p.SystemPrompt, SaveHistory: p.SaveHistory}
	raw, ok := obj["provider"]
	if !ok || raw == nil {
		return nil, missing("AIAgentProvider", join(path, "provider"))
	}
	if a.Provider, err = d.provider(raw, join(path, "provider")); err != nil {
		return nil, err
	}
	if a.Servers, err = decodeList(d, obj["servers"], "NodeMCPServer", join(path, "servers"), d.mcpServer); err != nil {
		return nil, err
	}
	if a.Prompt, err = decodeList(d, obj["prompt"], "DataToString", join(path, "prompt"), d.dataToString); err != nil {
		return nil, err
	}
	a.Servers, a.Prompt = orEmpty(a.Servers), orEmpty(a.Prompt)
	return a, nil
}

func (d *Decoder) mcpServer(v any, path string) (domain.NodeMCPServer, error) {
	var s domain.NodeMCPServer
	obj, err := d.object(v, "NodeMCPServer", path)
	if err != nil {
		return s, err
	}
	var p struct {
		Command string            `wire:"command"`
		Env     map[string]string `wire:"env"`
	}
	if err := d.fields(obj, &p, "NodeMCPServer", path); err != nil {
		return s, err
	}
	s.Command, s.Env = p.Command, p.Env
	args, err := decodeList(d, obj["arguments"], "DataFrom", join(path, "arguments"), d.dataFrom)
	if err != nil {
		return s, err
	}
	s.Arguments = orEmpty(args)
	return s, nil
}

func (d *Decoder) provider(v any, path string) (domain.AIAgentProvider, error) {
	tag, key, payload, ok := pick(v, domain.ParseAIAgentProviderTag)
	if !ok {
		return nil, unrecognized("AIAgentProvider", path, v)
	}
	at := join(path, key)
	obj, err := d.object(payload, "AIAgentProvider", at)
	if err != nil {
		return nil, err
	}
	var p struct {
		Model     string `wire:"model"`
		APIKey    string `wire:"api_key"`
		MaxTokens int    `wire:"max_tokens"`
	}
	if err := d.fields(obj, &p, string(tag), at); err != nil {
		return nil, err
	}
	switch tag {
	case domain.ProviderTagOllama:
		return &domain.ProviderOllama{Model: p.Model}, nil
	case domain.ProviderTagOpenAI:
		return &domain.ProviderOpenAI{Model: p.Model, APIKey: p.APIKey}, nil
	case domain.ProviderTagAnthropic:
		return &domain.ProviderAnthropic{Model: p.Model, APIKey: p.APIKey, MaxTokens: p.MaxTokens}, nil
	case domain.ProviderTagDeepSeek:
		return &domain.ProviderDeepSeek{Model: p.Model, APIKey: p.APIKey, MaxTokens: p.MaxTokens}, nil
	case domain.ProviderTagGemini:
		return &domain.ProviderGemini{Model: p.Model, APIKey: p.APIKey}, nil
	}
	return nil, unrecognized("AIAgentProvider", path, v)
}

func (d *Decoder) webClient(v any, path string) (*domain.WebClient, error) {
	obj, err := d.object(v, "WebClient", path)
	if err != nil {
		return nil, err
	}
	var p struct {
		Timeout int `wire:"timeout"`
	}
	if err := d.fields(obj, &p, "WebClient", path); err != nil {
		return nil, err
	}
	w := &domain.WebClient{Timeout: p.Timeout}
	if w.URL, err = d.requiredDataFrom(obj, "url", path); err != nil {
		return nil, err
	}
	if w.Method, err = enum(d, obj["method"], domain.ParseAwpakMethod, "AwpakMethod", join(path, "method")); err != nil {
		return nil, err
	}
	if w.Method == "" {
		w.Method = domain.MethodGet
	}
	if w.Headers, err = decodeList(d, obj["headers"], "WebClientNameValue", join(path, "headers"), d.nameValue); err != nil {
		return nil, err
	}
	if w.QueryParams, err = decodeList(d, obj["query_params"], "WebClientNameValue", join(path, "query_params"), d.nameValue); err != nil {
		return nil, err
	}
	if raw, ok := obj["body"]; ok && raw != nil {
		if w.Body, err = d.body(raw, join(path, "body")); err != nil {
			return nil, err
		}
	}
	if w.Output, err = decodeList(d, obj["output"], "WebClientOutput", join(path, "output"), d.webClientOutput); err != nil {
		return nil, err
	}
	w.Headers, w.QueryParams, w.Output = orEmpty(w.Headers), orEmpty(w.QueryParams), orEmpty(w.Output)
	return w, nil
}

func (d *Decoder) nameValue(v any, path string) (domain.WebClientNameValue, error) {
	var nv domain.WebClientNameValue
	obj, err := d.object(v, "WebClientNameValue", path)
	if err != nil {
		return nv, err
	}
	if nv.Name, err = d.requiredDataFrom(obj, "name", path); err != nil {
		return nv, err
	}
	nv.Value, err = d.requiredDataFrom(obj, "value", path)
	return nv, err
}

func (d *Decoder) body(v any, path string) (domain.WebClientBody, error) {
	tag, key, payload, ok := pick(v, domain.ParseWebClientBodyTag)
	if !ok {
		return nil, unrecognized("WebClientBody", path, v)
	}
	at := join(path, key)
	switch tag {
	case domain.BodyTagJSON:
		if payload == nil {
			return nil, missing("DataFrom", at)
		}
		value, err := d.dataFrom(payload, at)
		if err != nil {
			return nil, err
		}
		return &domain.BodyJSON{Value: value}, nil
	case domain.BodyTagForm:
		fields, err := decodeList(d, payload, "WebClientNameValue", at, d.nameValue)
		if err != nil {
			return nil, err
		}
		return &domain.BodyForm{Fields: orEmpty(fields)}, nil
	}
	return nil, unrecognized("WebClientBody", path, v)
}

func (d *Decoder) parallelExecutor(v any, path string) (domain.ParallelExecutor, error) {
	tag, key, payload, ok := pick(v, domain.ParseParallelExecutorTag)
	if !ok {
		return nil, unrecognized("ParallelExecutor", path, v)
	}
	at := join(path, key)
	obj, err := d.object(payload, "ParallelExecutor", at)
	if err != nil {
		return nil, err
	}
	ty, err := enum(d, obj["ty"], domain.ParseDataType, "DataType", join(at, "ty"))
	if err != nil {
		return nil, err
	}
	cond, err := d.requiredComparator(obj, "condition", at)
	if err != nil {
		return nil, err
	}
	if _, ok := obj["executor"]; !ok {
		return nil, missing(string(tag), join(at, "executor"))
	}
	switch tag {
	case domain.ParallelTagCommand:
		exec, err := d.command(obj["executor"], join(at, "executor"))
		if err != nil {
			return nil, err
		}
		return &domain.ParallelCommand{Ty: ty, Executor: exec, Condition: cond}, nil
	case domain.ParallelTagWebClient:
		exec, err := d.webClient(obj["executor"], join(at, "executor"))
		if err != nil {
			return nil, err
		}
		return &domain.ParallelWebClient{Ty: ty, Executor: exec, Condition: cond}, nil
	}
	return nil, unrecognized("ParallelExecutor", path, v)
}

func (d *Decoder) affix(payload any, family, path string) (domain.Affix, string, error) {
	obj, err := d.object(payload, family, path)
	if err != nil {
		return domain.Affix{}, "", err
	}
	var p struct {
		Name   string `wire:"name"`
		Prefix string `wire:"prefix"`
		Suffix string `wire:"suffix"`
	}
	if err := d.fields(obj, &p, family, path); err != nil {
		return domain.Affix{}, "", err
	}
	return domain.Affix{Prefix: p.Prefix, Suffix: p.Suffix}, p.Name, nil
}

func (d *Decoder) commandOutput(v any, path string) (domain.CommandOutput, error) {
	tag, key, payload, ok := pick(v, domain.ParseCommandOutputTag)
	if !ok {
		return nil, unrecognized("CommandOutput", path, v)
	}
	affix, _, err := d.affix(payload, "CommandOutput", join(path, key))
	if err != nil {
		return nil, err
	}
	out, _ := domain.NewCommandOutput(tag, affix)
	return out, nil
}

func (d *Decoder) graphNodeOutput(v any, path string) (domain.GraphNodeOutput, error) {
	tag, key, payload, ok := pick(v, domain.ParseGraphNodeOutputTag)
	if !ok {
		return nil, unrecognized("GraphNodeOutput", path, v)
	}
	affix, _, err := d.affix(payload, "GraphNodeOutput", join(path, key))
	if err != nil {
		return nil, err
	}
	out, _ := domain.NewGraphNodeOutput(tag, affix)
	return out, nil
}

func (d *Decoder) webClientOutput(v any, path string) (domain.WebClientOutput, error) {
	tag, key, payload, ok := pick(v, domain.ParseWebClientOutputTag)
	if !ok {
		return nil, unrecognized("WebClientOutput", path, v)
	}
	affix, name, err := d.affix(payload, "WebClientOutput", join(path, key))
	if err != nil {
		return nil, err
	}
	if tag == domain.WebOutputHeader {
		return &domain.WebHeader{Name: name, Affix: affix}, nil
	}
	out, _ := domain.NewWebClientOutput(tag, affix)
	return out, nil
}

func (d *Decoder) storeConfig(v any, path string) (domain.StoreConfig, error) {
	var s domain.StoreConfig
	obj, err := d.object(v, "StoreConfig", path)
	if err != nil {
		return s, err
	}
	var p struct {
		ID string `wire:"id"`
	}
	if err := d.fields(obj, &p, "StoreConfig", path); err != nil {
		return s, err
	}
	s.ID = p.ID
	provider, ok := obj["provider"].(string)
	if !ok {
		return s, unrecognized("StoreProvider", join(path, "provider"), obj["provider"])
	}
	if s.Provider, ok = domain.ParseStoreProvider(provider); !ok {
		return s, unrecognized("StoreProvider", join(path, "provider"), provider)
	}
	raw, ok := obj["model"]
	if !ok || raw == nil {
		return s, missing("StoreModel", join(path, "model"))
	}
	if s.Model, err = d.storeModel(raw, join(path, "model")); err != nil {
		return s, err
	}
	docs, err := decodeList(d, obj["documents"], "StoreDocument", join(path, "documents"), d.storeDocument)
	if err != nil {
		return s, err
	}
	s.Documents = orEmpty(docs)
	return s, nil
}

func (d *Decoder) storeModel(v any, path string) (domain.StoreModel, error) {
	tag, key, payload, ok := pick(v, domain.ParseStoreModelTag)
	if !ok {
		return nil, unrecognized("StoreModel", path, v)
	}
	at := join(path, key)
	obj, err := d.object(payload, "StoreModel", at)
	if err != nil {
		return nil, err
	}
	var p struct {
		Model  string `wire:"model"`
		APIKey string `wire:"api_key"`
	}
	if err := d.fields(obj, &p, "StoreModel", at); err != nil {
		return nil, err
	}
	switch tag {
	case domain.StoreModelOpenAI:
		return &domain.StoreOpenAI{Model: p.Model, APIKey: p.APIKey}, nil
	case domain.StoreModelGemini:
		return &domain.StoreGemini{Model: p.Model, APIKey: p.APIKey}, nil
	case domain.StoreModelOllama:
		return &domain.StoreOllama{Model: p.Model}, nil
	}
	return nil, unrecognized("StoreModel", path, v)
}

func (d *Decoder) storeDocument(v any, path string) (domain.StoreDocument, error) {
	tag, key, payload, ok := pick(v, domain.ParseStoreDocumentTag)
	if !ok {
		return nil, unrecognized("StoreDocument", path, v)
	}
	at := join(path, key)
	obj, err := d.object(payload, "StoreDocument", at)
	if err != nil {
		return nil, err
	}
	var p struct {
		Path string `wire:"path"`
	}
	if err := d.fields(obj, &p, "StoreDocument", at); err != nil {
		return nil, err
	}
	sizer := domain.StoreDocumentSizer(&domain.SizerNone{})
	if raw, ok := obj["sizer"]; ok && raw != nil {
		if sizer, err = d.sizer(raw, join(at, "sizer")); err != nil {
			return nil, err
		}
	}
	switch tag {
	case domain.StoreDocumentText:
		return &domain.DocumentText{Path: p.Path, Sizer: sizer}, nil
	case domain.StoreDocumentPdf:
		return &domain.DocumentPdf{Path: p.Path, Sizer: sizer}, nil
	}
	return nil, unrecognized("StoreDocument", path, v)
}

func (d *Decoder) sizer(v any, path string) (domain.StoreDocumentSizer, error) {
	tag, key, payload, ok := pick(v, domain.ParseStoreDocumentSizerTag)
	if !ok {
		return nil, unrecognized("StoreDocumentSizer", path, v)
	}
	if tag == domain.SizerTagNone {
		return &domain.SizerNone{}, nil
	}
	at := join(path, key)
	obj, err := d.object(payload, "StoreDocumentSizer", at)
	if err != nil {
		return nil, err
	}
	raw, ok := obj["max"]
	if !ok {
		return nil, missing("StoreDocumentSizer", join(at, "max"))
	}
	limit, err := d.integer(raw, "StoreDocumentSizer", join(at, "max"))
	if err != nil {
		return nil, err
	}
	var desired int
	if raw, ok := obj["desired"]; ok && raw != nil {
		if desired, err = d.integer(raw, "StoreDocumentSizer", join(at, "desired")); err != nil {
			return nil, err
		}
	}
	if tag == domain.SizerTagChars {
		return &domain.SizerChars{Desired: desired, Max: limit}, nil
	}
	return &domain.SizerMarkdown{Desired: desired, Max: limit}, nil
}
