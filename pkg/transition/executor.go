package transition

import "github.com/afuentesan/awpak-builder/pkg/domain"

// NodeExecutor retags an executor.
//
//	Command <-> WebClient             timeout
func NodeExecutor(cur domain.NodeExecutor, tag domain.NodeExecutorTag) (domain.NodeExecutor, bool) {
	return retag(cur, tag, domain.NewNodeExecutor, func(old, next domain.NodeExecutor) {
		switch o := old.(type) {
		case *domain.Command:
			if n, ok := next.(*domain.WebClient); ok {
				n.Timeout = o.Timeout
			}
		case *domain.WebClient:
			if n, ok := next.(*domain.Command); ok {
				n.Timeout = o.Timeout
			}
		}
	})
}

// Node retags a node between PlainNode and GraphNode.
//
//	id                                always kept
//	output <-> node_output
//	destination <-> node_destination
//	Graph executor path/input/output <-> GraphNode path/input/output
//
// A GraphNode with a path becomes a PlainNode running a Graph executor so the
// sub-graph reference survives; without a path it gets the default command.
func Node(cur domain.Node, tag domain.NodeTag) (domain.Node, bool) {
	build := func(t domain.NodeTag) (domain.Node, bool) {
		switch t {
		case domain.NodeTagNode:
			return domain.NewPlainNode(""), true
		case domain.NodeTagGraph:
			return domain.NewGraphNode(""), true
		}
		return nil, false
	}
	return retag(cur, tag, build, func(old, next domain.Node) {
		next.SetNodeID(old.NodeID())
		next.SetContextOutput(old.ContextOutput())
		*next.Destinations() = *old.Destinations()

		switch o := old.(type) {
		case *domain.PlainNode:
			n := next.(*domain.GraphNode)
			if g, ok := o.Executor.(*domain.GraphExecutor); ok {
				n.Path, n.Input, n.Output = g.Path, g.Input, g.Output
			}
		case *domain.GraphNode:
			n := next.(*domain.PlainNode)
			if o.Path != "" {
				n.Executor = &domain.GraphExecutor{Path: o.Path, Input: o.Input, Output: o.Output}
			}
		}
	})
}

// CommandOutput retags a command output selector, keeping prefix and suffix.
func CommandOutput(cur domain.CommandOutput, tag domain.CommandOutputTag) (domain.CommandOutput, bool) {
	build := func(t domain.CommandOutputTag) (domain.CommandOutput, bool) {
		return domain.NewCommandOutput(t, domain.Affix{})
	}
	return retag(cur, tag, build, func(old, next domain.CommandOutput) {
		*next.Affixes() = *old.Affixes()
	})
}

// GraphNodeOutput retags a sub-graph output selector, keeping prefix and suffix.
func GraphNodeOutput(cur domain.GraphNodeOutput, tag domain.GraphNodeOutputTag) (domain.GraphNodeOutput, bool) {
	build := func(t domain.GraphNodeOutputTag) (domain.GraphNodeOutput, bool) {
		return domain.NewGraphNodeOutput(t, domain.Affix{})
	}
	return retag(cur, tag, build, func(old, next domain.GraphNodeOutput) {
		*next.Affixes() = *old.Affixes()
	})
}

// WebClientOutput retags a response output selector, keeping prefix and
// suffix. A new Header selector starts with an empty name.
func WebClientOutput(cur domain.WebClientOutput, tag domain.WebClientOutputTag) (domain.WebClientOutput, bool) {
	build := func(t domain.WebClientOutputTag) (domain.WebClientOutput, bool) {
		return domain.NewWebClientOutput(t, domain.Affix{})
	}
	return retag(cur, tag, build, func(old, next domain.WebClientOutput) {
		*next.Affixes() = *old.Affixes()
	})
}

// WebClientBody retags a request body. No field is shared.
func WebClientBody(cur domain.WebClientBody, tag domain.WebClientBodyTag) (domain.WebClientBody, bool) {
	return retag(cur, tag, domain.NewWebClientBody, func(_, _ domain.WebClientBody) {})
}

// AIAgentProvider retags a model provider.
//
//	any <-> any                               model
//	OpenAI/Gemini/Anthropic/DeepSeek          api_key
//	Anthropic <-> DeepSeek                    max_tokens
func AIAgentProvider(cur domain.AIAgentProvider, tag domain.AIAgentProviderTag) (domain.AIAgentProvider, bool) {
	return retag(cur, tag, domain.NewAIAgentProvider, func(old, next domain.AIAgentProvider) {
		model, key, hasKey, maxTokens, hasMax := providerFields(old)
		switch n := next.(type) {
		case *domain.ProviderOllama:
			n.Model = model
		case *domain.ProviderOpenAI:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
		case *domain.ProviderGemini:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
		case *domain.ProviderAnthropic:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
			if hasMax {
				n.MaxTokens = maxTokens
			}
		case *domain.ProviderDeepSeek:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
			if hasMax {
				n.MaxTokens = maxTokens
			}
		}
	})
}

func providerFields(p domain.AIAgentProvider) (model, key string, hasKey bool, maxTokens int, hasMax bool) {
	switch p := p.(type) {
	case *domain.ProviderOllama:
		return p.Model, "", false, 0, false
	case *domain.ProviderOpenAI:
		return p.Model, p.APIKey, true, 0, false
	case *domain.ProviderGemini:
		return p.Model, p.APIKey, true, 0, false
	case *domain.ProviderAnthropic:
		return p.Model, p.APIKey, true, p.MaxTokens, true
	case *domain.ProviderDeepSeek:
		return p.Model, p.APIKey, true, p.MaxTokens, true
	}
	return "", "", false, 0, false
}

// ParallelExecutor retags a parallel branch.
//
//	Command <-> WebClient             ty, condition
func ParallelExecutor(cur domain.ParallelExecutor, tag domain.ParallelExecutorTag) (domain.ParallelExecutor, bool) {
	return retag(cur, tag, domain.NewParallelExecutor, func(old, next domain.ParallelExecutor) {
		var ty domain.DataType
		var cond domain.DataComparator
		switch o := old.(type) {
		case *domain.ParallelCommand:
			ty, cond = o.Ty, o.Condition
		case *domain.ParallelWebClient:
			ty, cond = o.Ty, o.Condition
		}
		switch n := next.(type) {
		case *domain.ParallelCommand:
			n.Ty, n.Condition = ty, cond
		case *domain.ParallelWebClient:
			n.Ty, n.Condition = ty, cond
		}
	})
}

// StoreModel retags an embedding model.
//
//	any <-> any                       model
//	OpenAI <-> Gemini                 api_key
func StoreModel(cur domain.StoreModel, tag domain.StoreModelTag) (domain.StoreModel, bool) {
	return retag(cur, tag, domain.NewStoreModel, func(old, next domain.StoreModel) {
		var model, key string
		hasKey := false
		switch o := old.(type) {
		case *domain.StoreOpenAI:
			model, key, hasKey = o.Model, o.APIKey, true
		case *domain.StoreGemini:
			model, key, hasKey = o.Model, o.APIKey, true
		case *domain.StoreOllama:
			model = o.Model
		}
		switch n := next.(type) {
		case *domain.StoreOpenAI:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
		case *domain.StoreGemini:
			n.Model = model
			if hasKey {
				n.APIKey = key
			}
		case *domain.StoreOllama:
			n.Model = model
		}
	})
}

// StoreDocument retags a store document.
//
//	Text <-> Pdf                      path, sizer
func StoreDocument(cur domain.StoreDocument, tag domain.StoreDocumentTag) (domain.StoreDocument, bool) {
	return retag(cur, tag, domain.NewStoreDocument, func(old, next domain.StoreDocument) {
		var path string
		var sizer domain.StoreDocumentSizer
		switch o := old.(type) {
		case *domain.DocumentText:
			path, sizer = o.Path, o.Sizer
		case *domain.DocumentPdf:
			path, sizer = o.Path, o.Sizer
		}
		switch n := next.(type) {
		case *domain.DocumentText:
			n.Path, n.Sizer = path, sizer
		case *domain.DocumentPdf:
			n.Path, n.Sizer = path, sizer
		}
	})
}

// StoreDocumentSizer retags a document sizer.
//
//	Chars <-> Markdown                desired, max
func StoreDocumentSizer(cur domain.StoreDocumentSizer, tag domain.StoreDocumentSizerTag) (domain.StoreDocumentSizer, bool) {
	return retag(cur, tag, domain.NewStoreDocumentSizer, func(old, next domain.StoreDocumentSizer) {
		switch o := old.(type) {
		case *domain.SizerChars:
			if n, ok := next.(*domain.SizerMarkdown); ok {
				n.Desired, n.Max = o.Desired, o.Max
			}
		case *domain.SizerMarkdown:
			if n, ok := next.(*domain.SizerChars); ok {
				n.Desired, n.Max = o.Desired, o.Max
			}
		}
	})
}
