package codec_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

func wire(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func parse(t *testing.T, s string) any {
	t.Helper()
	v, err := codec.ParseJSON([]byte(s))
	require.NoError(t, err)
	return v
}

func TestComparatorTrue_BareTag(t *testing.T) {
	assert.Equal(t, "True", codec.EncodeDataComparator(&domain.CmpTrue{}))

	got, err := codec.NewDecoder().DataComparator(parse(t, `"True"`))
	require.NoError(t, err)
	assert.Equal(t, &domain.CmpTrue{}, got)
}

func TestConcat_Encoding(t *testing.T) {
	v := &domain.FromConcat{Value: []domain.DataFrom{
		&domain.FromStatic{Value: "a"},
		&domain.FromStatic{Value: "b"},
	}}
	assert.JSONEq(t, `{"Concat":[{"Static":"a"},{"Static":"b"}]}`, wire(t, codec.EncodeDataFrom(v)))
}

func TestUnknownTag_FatalVersusFallback(t *testing.T) {
	raw := parse(t, `{"Foo": {}}`)
	dec := codec.NewDecoder()

	_, err := dec.DataFrom(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnrecognizedVariant)
	var de *codec.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "DataFrom", de.Family)

	cmp, err := dec.DataComparator(raw)
	require.NoError(t, err)
	assert.Equal(t, &domain.CmpTrue{}, cmp)

	hist, err := dec.DataToAgentHistory(raw)
	require.NoError(t, err)
	assert.Equal(t, &domain.ToHistoryReplace{}, hist)

	content, err := dec.FromAgentHistoryContent(raw)
	require.NoError(t, err)
	assert.Equal(t, &domain.ContentFull{}, content)
}

func TestStrictDecoder_RejectsFallbacks(t *testing.T) {
	dec := codec.NewDecoder(codec.WithStrict(true))

	_, err := dec.DataComparator(parse(t, `{"Foo": {}}`))
	assert.ErrorIs(t, err, codec.ErrUnrecognizedVariant)

	_, err = dec.DataToAgentHistory(parse(t, `"Nope"`))
	assert.ErrorIs(t, err, codec.ErrUnrecognizedVariant)

	_, err = dec.NodeExecutor(parse(t, `{"WebClient":{"url":"Null","method":"FETCH"}}`))
	assert.ErrorIs(t, err, codec.ErrInvalidEnumValue)
}

func TestObserver_ReportsEvents(t *testing.T) {
	var events []codec.Event
	dec := codec.NewDecoder(codec.WithObserver(func(ev codec.Event) { events = append(events, ev) }))

	_, err := dec.DataComparator(parse(t, `{"Eq":{"from_1":"Null","from_2":"Null"},"x":1}`))
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = dec.DataComparator(parse(t, `{"Bogus":1}`))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, codec.EventFallback, events[0].Kind)

	exec, err := dec.NodeExecutor(parse(t, `{"WebClient":{"url":"Null","method":"FETCH"}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.MethodGet, exec.(*domain.WebClient).Method)
	require.Len(t, events, 2)
	assert.Equal(t, codec.EventInvalidEnum, events[1].Kind)
	assert.Equal(t, "/WebClient/method", events[1].Path)
}

func TestLegacyReplaceLastSpelling(t *testing.T) {
	var kinds []codec.EventKind
	dec := codec.NewDecoder(codec.WithObserver(func(ev codec.Event) { kinds = append(kinds, ev.Kind) }))

	got, err := dec.DataToAgentHistory(parse(t, `"RelaceLast"`))
	require.NoError(t, err)
	assert.Equal(t, &domain.ToHistoryReplaceLast{}, got)
	assert.Equal(t, []codec.EventKind{codec.EventLegacyTag}, kinds)

	assert.Equal(t, "ReplaceLast", codec.EncodeDataToAgentHistory(got))
}

func TestGraph_RoundTrip(t *testing.T) {
	g := testutils.SampleGraph()

	data, err := codec.Marshal(g)
	require.NoError(t, err)

	back, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, g, back)

	again, err := codec.Marshal(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestGraph_WireShape(t *testing.T) {
	v := codec.EncodeGraph(testutils.SampleGraph())
	out := wire(t, v)

	assert.Contains(t, out, `"first":{"Node":{`)
	assert.Contains(t, out, `{"Graph":{"id":"sub"`)
	assert.Contains(t, out, `"input_type":"String"`)
	assert.Contains(t, out, `{"Code":{}}`)
	assert.Contains(t, out, `"condition":"True"`)
	assert.Contains(t, out, `"provider":"InMemoryVectorStore"`)
	assert.Contains(t, out, `"sizer":"None"`)
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"input without required", codec.EncodeDataFrom(&domain.FromInput{}), `{"Input":{}}`},
		{"parsed input without path", codec.EncodeDataFrom(&domain.FromParsedInput{Required: true}), `{"ParsedInput":{"required":true}}`},
		{"null", codec.EncodeDataFrom(&domain.FromNull{}), `"Null"`},
		{"nil condition", codec.EncodeNodeDestination(domain.NodeDestination{Next: &domain.NextNode{ID: "b"}}), `{"next":{"Node":"b"},"condition":"True"}`},
		{"deepseek without max tokens", codec.EncodeAIAgentProvider(&domain.ProviderDeepSeek{Model: "m", APIKey: "k"}), `{"DeepSeek":{"model":"m","api_key":"k"}}`},
		{"sizer without desired", codec.EncodeStoreDocumentSizer(&domain.SizerChars{Max: 10}), `{"Chars":{"max":10}}`},
		{"item", codec.EncodeFromAgentHistoryContent(&domain.ContentItem{Value: 4}), `{"Item":4}`},
		{"string to item", codec.EncodeDataToAgentHistory(&domain.ToHistoryStringToItem{Value: 1}), `{"StringToItem":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, wire(t, tt.in))
		})
	}
}

func TestDataToContext_BlankPathIsOmitted(t *testing.T) {
	_, ok := codec.EncodeDataToContext(&domain.DataToContext{Path: "  ", Ty: domain.DataTypeBool})
	assert.False(t, ok)

	n := domain.NewPlainNode("a")
	n.Output = &domain.DataToContext{Path: ""}
	out := codec.EncodeNode(n).(map[string]any)["Node"].(map[string]any)
	assert.NotContains(t, out, "output")
}

func TestStaticLiteral(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{"true", `true`},
		{"false", `false`},
		{"42", `42`},
		{"-1.5e3", `-1.5e3`},
		{`{"a":[1,2]}`, `{"a":[1,2]}`},
		{`[1, "x"]`, `[1,"x"]`},
		{`{broken`, `"{broken"`},
		{"007", `"007"`},
		{3, `3`},
		{map[string]any{"k": "v"}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		assert.JSONEq(t, tt.want, wire(t, codec.StaticLiteral(tt.in)), "%v", tt.in)
	}
}

func TestStatic_DecodedVerbatim(t *testing.T) {
	got, err := codec.NewDecoder().DataFrom(parse(t, `{"Static":{"nested":{"list":[1,true,null]}}}`))
	require.NoError(t, err)
	static := got.(*domain.FromStatic)
	assert.Equal(t, map[string]any{"nested": map[string]any{"list": []any{json.Number("1"), true, nil}}}, static.Value)
}

func TestDecode_AcceptsPlainFloatNumbers(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"Store":{"id":"s","query":"Null","samples":4}}`), &v))

	got, err := codec.NewDecoder().DataFrom(v)
	require.NoError(t, err)
	assert.Equal(t, &domain.FromStore{ID: "s", Query: &domain.FromNull{}, Samples: 4}, got)

	content, err := codec.NewDecoder().FromAgentHistoryContent(map[string]any{"ItemMessage": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, &domain.ContentItemMessage{Value: 2}, content)
}

func TestDecode_IntegerRange(t *testing.T) {
	dec := codec.NewDecoder()
	tests := []struct {
		name string
		raw  any
		ok   bool
	}{
		{"int64", int64(7), true},
		{"uint64", uint64(7), true},
		{"json number", json.Number("7"), true},
		{"uint64 overflow", uint64(math.MaxUint64), false},
		{"json number overflow", json.Number("18446744073709551615"), false},
		{"float overflow", float64(1e300), false},
		{"fraction", 2.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := dec.FromAgentHistoryContent(map[string]any{"Item": tt.raw})
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, &domain.ContentItem{Value: 7}, content)
				return
			}
			assert.ErrorIs(t, err, codec.ErrInvalidType)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	dec := codec.NewDecoder()
	tests := []struct {
		name string
		doc  string
		kind error
		path string
	}{
		{"missing first", `{"nodes":[]}`, codec.ErrMissingField, "/first"},
		{"unknown node", `{"first":{"Task":{}}}`, codec.ErrUnrecognizedVariant, "/first"},
		{"missing executor", `{"first":{"Node":{"id":"a"}}}`, codec.ErrMissingField, "/first/Node/executor"},
		{"bad executor", `{"first":{"Node":{"id":"a","executor":{"Shell":{}}}}}`, codec.ErrUnrecognizedVariant, "/first/Node/executor"},
		{
			"nested data from",
			`{"first":{"Node":{"id":"a","executor":{"Command":{"command":"Null","args":["Null",{"Oops":1}]}}}}}`,
			codec.ErrUnrecognizedVariant, "/first/Node/executor/Command/args/1",
		},
		{"wrong type", `{"first":{"Node":{"id":true,"executor":{"Command":{"command":"Null"}}}}}`, codec.ErrInvalidType, "/first/Node"},
		{"store provider", `{"stores":[{"id":"s","provider":"Pinecone","model":{"Ollama":{"model":"m"}}}],"first":{"Node":{"id":"a","executor":{"Command":{"command":"Null"}}}}}`, codec.ErrUnrecognizedVariant, "/stores/0/provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := dec.Graph(parse(t, tt.doc))
			assert.Nil(t, g)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			var de *codec.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestDecode_Defaults(t *testing.T) {
	g, err := codec.Unmarshal([]byte(`{"first":{"Node":{"id":"a","executor":{"Command":{"command":{"Static":"ls"}}},"destination":[{"next":{"Node":"b"}}]}}}`))
	require.NoError(t, err)

	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Stores)
	assert.Equal(t, map[string]any{}, g.Context)
	first := g.First.(*domain.PlainNode)
	assert.Equal(t, &domain.CmpTrue{}, first.Destination[0].Condition)
	cmd := first.Executor.(*domain.Command)
	assert.Equal(t, []domain.DataFrom{}, cmd.Args)
	assert.Zero(t, cmd.Timeout)
}

func TestInvalidEnum_TreatedAsAbsent(t *testing.T) {
	g, err := codec.Unmarshal([]byte(`{"input_type":"Decimal","first":{"Node":{"id":"a","executor":{"Command":{"command":"Null"}},"output":{"path":"x","ty":"Text","merge":"Insert"}}}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DataType(""), g.InputType)
	out := g.First.(*domain.PlainNode).Output
	assert.Equal(t, &domain.DataToContext{Path: "x", Merge: domain.DataMergeInsert}, out)
}

func TestFamilies_RoundTrip(t *testing.T) {
	dec := codec.NewDecoder()

	t.Run("providers", func(t *testing.T) {
		for _, p := range []domain.AIAgentProvider{
			&domain.ProviderOllama{Model: "llama3"},
			&domain.ProviderOpenAI{Model: "gpt", APIKey: "k"},
			&domain.ProviderAnthropic{Model: "c", APIKey: "k", MaxTokens: 10},
			&domain.ProviderDeepSeek{Model: "d", APIKey: "k", MaxTokens: 5},
			&domain.ProviderGemini{Model: "g", APIKey: "k"},
		} {
			agent := &domain.AIAgent{Provider: p, Servers: []domain.NodeMCPServer{}, Prompt: []domain.DataToString{}}
			got, err := dec.NodeExecutor(parse(t, wire(t, codec.EncodeNodeExecutor(agent))))
			require.NoError(t, err)
			assert.Equal(t, agent, got)
		}
	})

	t.Run("history content", func(t *testing.T) {
		for _, tag := range domain.FromAgentHistoryContentTags() {
			v, _ := domain.NewFromAgentHistoryContent(tag)
			got, err := dec.FromAgentHistoryContent(parse(t, wire(t, codec.EncodeFromAgentHistoryContent(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("history writes", func(t *testing.T) {
		for _, tag := range domain.DataToAgentHistoryTags() {
			v, _ := domain.NewDataToAgentHistory(tag)
			got, err := dec.DataToAgentHistory(parse(t, wire(t, codec.EncodeDataToAgentHistory(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("comparators", func(t *testing.T) {
		for _, tag := range domain.DataComparatorTags() {
			v, _ := domain.NewDataComparator(tag)
			got, err := dec.DataComparator(parse(t, wire(t, codec.EncodeDataComparator(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got, tag)
		}
	})

	t.Run("data from", func(t *testing.T) {
		for _, tag := range domain.DataFromTags() {
			v, _ := domain.NewDataFrom(tag)
			got, err := dec.DataFrom(parse(t, wire(t, codec.EncodeDataFrom(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got, tag)
		}
	})

	t.Run("operations", func(t *testing.T) {
		for _, tag := range domain.DataOperationTags() {
			v, _ := domain.NewDataOperation(tag)
			got, err := dec.DataOperation(parse(t, wire(t, codec.EncodeDataOperation(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got, tag)
		}
	})

	t.Run("executors", func(t *testing.T) {
		for _, tag := range domain.NodeExecutorTags() {
			v, _ := domain.NewNodeExecutor(tag)
			got, err := dec.NodeExecutor(parse(t, wire(t, codec.EncodeNodeExecutor(v))))
			require.NoError(t, err)
			assert.Equal(t, v, got, tag)
		}
	})
}
