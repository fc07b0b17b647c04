package testutils

import (
	"encoding/json"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

func ctx(path string) domain.DataFrom { return &domain.FromContext{Path: path} }

func static(v any) domain.DataFrom { return &domain.FromStatic{Value: v} }

// SampleGraph returns a graph exercising every union family. Node "agent" is
// referenced from a destination, from an AgentHistory nested three levels deep
// in the first node's command arguments, from an AgentHistoryMut and from the
// sub-graph node input. All slices are non-nil so decoded copies compare equal.
func SampleGraph() *domain.Graph {
	start := &domain.PlainNode{
		ID: "start",
		Executor: &domain.Command{
			Command: static("echo"),
			Args: []domain.DataFrom{
				&domain.FromContext{Path: "a", Required: true},
				&domain.FromConcat{Value: []domain.DataFrom{
					static("x"),
					&domain.FromConcat{Value: []domain.DataFrom{
						&domain.FromAgentHistory{ID: "agent", Content: &domain.ContentRange{From: 1, To: 3}},
					}},
				}},
				&domain.FromOperation{Value: &domain.OpAdd{
					Num1: &domain.FromParsedInput{Path: "n"},
					Num2: &domain.FromInput{Required: true},
				}},
			},
			Output: []domain.CommandOutput{
				&domain.CmdOut{Affix: domain.Affix{Prefix: "out: "}},
				&domain.CmdCode{},
			},
			Timeout: 30,
		},
		Output: &domain.DataToContext{Path: "result", Ty: domain.DataTypeString, Merge: domain.DataMergeAppend, Optional: true},
		Destination: []domain.NodeDestination{
			{Next: &domain.NextNode{ID: "agent"}, Condition: &domain.CmpEq{From1: ctx("x"), From2: static(json.Number("1"))}},
			{
				Next:      &domain.NextExitErr{Value: []domain.DataToString{{From: ctx("error"), Suffix: "."}}},
				Condition: &domain.CmpNot{Value: &domain.CmpFalse{}},
			},
		},
	}

	agent := &domain.PlainNode{
		ID: "agent",
		Executor: &domain.AIAgent{
			Provider:     &domain.ProviderAnthropic{Model: "claude", APIKey: "key", MaxTokens: 1024},
			SystemPrompt: "be brief",
			SaveHistory:  true,
			Servers: []domain.NodeMCPServer{
				{Command: "mcp-server", Arguments: []domain.DataFrom{static("--stdio")}, Env: map[string]string{"MODE": "test"}},
			},
			Prompt: []domain.DataToString{
				{From: &domain.FromStore{ID: "docs", Query: &domain.FromInput{}, Samples: 3}, Prefix: "Q: "},
			},
		},
		Destination: []domain.NodeDestination{
			{
				Next: &domain.NextNode{ID: "web"},
				Condition: &domain.CmpAnd{
					Comp1: &domain.CmpRegex{Regex: "^a", From: ctx("name")},
					Comp2: &domain.CmpXor{
						Comp1: &domain.CmpEmpty{Value: &domain.FromNull{}},
						Comp2: &domain.CmpNotEmpty{Value: ctx("name")},
					},
				},
			},
		},
	}

	web := &domain.PlainNode{
		ID: "web",
		Executor: &domain.WebClient{
			URL:         static("https://example.com/api"),
			Method:      domain.MethodPost,
			Headers:     []domain.WebClientNameValue{{Name: static("Authorization"), Value: ctx("token")}},
			QueryParams: []domain.WebClientNameValue{},
			Body:        &domain.BodyJSON{Value: ctx("payload")},
			Output:      []domain.WebClientOutput{&domain.WebStatus{}, &domain.WebHeader{Name: "etag", Affix: domain.Affix{Prefix: "["}}},
			Timeout:     10,
		},
		Destination: []domain.NodeDestination{
			{Next: &domain.NextNode{ID: "ctx"}, Condition: &domain.CmpGt{From1: ctx("status"), From2: static(json.Number("199"))}},
		},
	}

	ctxMut := &domain.PlainNode{
		ID: "ctx",
		Executor: &domain.ContextMutExecutor{Items: []domain.ContextMut{
			{
				From:      &domain.FromOperation{Value: &domain.OpStringSplit{From: ctx("csv"), Sep: ","}},
				To:        &domain.DataToContext{Path: "parts", Ty: domain.DataTypeArray},
				Condition: &domain.CmpLt{From1: ctx("n"), From2: static(json.Number("5"))},
			},
		}},
		Destination: []domain.NodeDestination{
			{
				Next: &domain.NextNode{ID: "hist"},
				Condition: &domain.CmpOr{
					Comp1: &domain.CmpNand{Comp1: &domain.CmpTrue{}, Comp2: &domain.CmpFalse{}},
					Comp2: &domain.CmpNotEq{From1: ctx("a"), From2: ctx("b")},
				},
			},
		},
	}

	hist := &domain.PlainNode{
		ID: "hist",
		Executor: &domain.AgentHistoryMutExecutor{Items: []domain.AgentHistoryMut{
			{
				ID:        "agent",
				From:      &domain.FromOperation{Value: &domain.OpLen{Value: &domain.FromConcat{Value: []domain.DataFrom{}}}},
				To:        &domain.ToHistoryReplaceItem{Value: 2},
				Condition: &domain.CmpTrue{},
			},
			{
				ID:        "agent",
				From:      &domain.FromOperation{Value: &domain.OpSubstract{Num1: ctx("a"), Num2: static(json.Number("1"))}},
				To:        &domain.ToHistoryReplaceLast{},
				Condition: &domain.CmpTrue{},
			},
		}},
		Destination: []domain.NodeDestination{
			{Next: &domain.NextNode{ID: "par"}, Condition: &domain.CmpTrue{}},
		},
	}

	par := &domain.PlainNode{
		ID: "par",
		Executor: &domain.Parallel{Executors: []domain.ParallelExecutor{
			&domain.ParallelCommand{
				Ty: domain.DataTypeNumber,
				Executor: &domain.Command{
					Command: static("wc"),
					Args:    []domain.DataFrom{},
					Output:  []domain.CommandOutput{&domain.CmdSuccess{}},
				},
				Condition: &domain.CmpTrue{},
			},
			&domain.ParallelWebClient{
				Executor: &domain.WebClient{
					URL:         ctx("url"),
					Method:      domain.MethodGet,
					Headers:     []domain.WebClientNameValue{},
					QueryParams: []domain.WebClientNameValue{{Name: static("q"), Value: ctx("query")}},
					Body:        &domain.BodyForm{Fields: []domain.WebClientNameValue{{Name: static("f"), Value: &domain.FromNull{}}}},
					Output:      []domain.WebClientOutput{&domain.WebBody{}},
				},
				Condition: &domain.CmpFalse{},
			},
		}},
		Destination: []domain.NodeDestination{
			{Next: &domain.NextNode{ID: "exec"}, Condition: &domain.CmpTrue{}},
		},
	}

	exec := &domain.PlainNode{
		ID: "exec",
		Executor: &domain.GraphExecutor{
			ID:     "inner",
			Path:   "inner.json",
			Input:  []domain.DataToString{{From: ctx("in")}},
			Output: []domain.GraphNodeOutput{&domain.SubOut{}},
		},
		Destination: []domain.NodeDestination{
			{Next: &domain.NextNode{ID: "sub"}, Condition: &domain.CmpTrue{}},
		},
	}

	sub := &domain.GraphNode{
		ID:   "sub",
		Path: "child.json",
		Input: []domain.DataToString{
			{From: &domain.FromAgentHistory{ID: "agent", Content: &domain.ContentItemMessage{Value: 1}}},
		},
		Output:     []domain.GraphNodeOutput{&domain.SubSuccess{}, &domain.SubObject{Affix: domain.Affix{Suffix: "!"}}},
		NodeOutput: &domain.DataToContext{Path: "child"},
		NodeDestination: []domain.NodeDestination{
			{Next: &domain.NextExitOk{Value: []domain.DataToString{{From: ctx("child")}}}, Condition: &domain.CmpTrue{}},
		},
	}

	return &domain.Graph{
		Stores: []domain.StoreConfig{
			{
				ID:       "docs",
				Provider: domain.StoreProviderInMemory,
				Model:    &domain.StoreOpenAI{Model: "text-embedding-3-small", APIKey: "sk"},
				Documents: []domain.StoreDocument{
					&domain.DocumentText{Path: "notes.md", Sizer: &domain.SizerMarkdown{Desired: 200, Max: 1000}},
					&domain.DocumentPdf{Path: "manual.pdf", Sizer: &domain.SizerNone{}},
				},
			},
		},
		Context:         map[string]any{"lang": "en", "retries": json.Number("2")},
		PreserveContext: true,
		InputType:       domain.DataTypeString,
		First:           start,
		Nodes:           []domain.Node{agent, web, ctxMut, hist, par, exec, sub},
	}
}
