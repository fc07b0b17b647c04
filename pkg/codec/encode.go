package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

type object = map[string]any

func tagged[T ~string](tag T, payload any) any {
	return object{string(tag): payload}
}

func putString(o object, key, v string) {
	if v != "" {
		o[key] = v
	}
}

func putAffix(o object, a *domain.Affix) object {
	putString(o, "prefix", a.Prefix)
	putString(o, "suffix", a.Suffix)
	return o
}

func encodeList[T any](items []T, enc func(T) any) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, enc(it))
	}
	return out
}

// EncodeGraph renders g as a wire JSON value tree.
func EncodeGraph(g *domain.Graph) map[string]any {
	ctx := g.Context
	if ctx == nil {
		ctx = map[string]any{}
	}
	out := object{
		"stores":           encodeList(g.Stores, EncodeStoreConfig),
		"context":          ctx,
		"preserve_context": g.PreserveContext,
		"first":            EncodeNode(g.First),
		"nodes":            encodeList(g.Nodes, EncodeNode),
	}
	putString(out, "input_type", string(g.InputType))
	return out
}

// Marshal encodes g to compact wire JSON.
func Marshal(g *domain.Graph) ([]byte, error) {
	return marshal(EncodeGraph(g), "")
}

// MarshalIndent encodes g to indented wire JSON.
func MarshalIndent(g *domain.Graph, indent string) ([]byte, error) {
	return marshal(EncodeGraph(g), indent)
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeNode renders a Node. A nil node encodes as nil.
func EncodeNode(n domain.Node) any {
	switch n := n.(type) {
	case *domain.PlainNode:
		p := object{
			"id":          n.ID,
			"executor":    EncodeNodeExecutor(n.Executor),
			"destination": encodeList(n.Destination, EncodeNodeDestination),
		}
		if out, ok := EncodeDataToContext(n.Output); ok {
			p["output"] = out
		}
		return tagged(n.Tag(), p)
	case *domain.GraphNode:
		p := object{
			"id":               n.ID,
			"path":             n.Path,
			"input":            encodeList(n.Input, EncodeDataToString),
			"output":           encodeList(n.Output, EncodeGraphNodeOutput),
			"node_destination": encodeList(n.NodeDestination, EncodeNodeDestination),
		}
		if out, ok := EncodeDataToContext(n.NodeOutput); ok {
			p["node_output"] = out
		}
		return tagged(n.Tag(), p)
	}
	return nil
}

// EncodeNodeDestination renders a destination. A nil condition is written as
// "True" because the engine requires the key.
func EncodeNodeDestination(d domain.NodeDestination) any {
	return object{
		"next":      EncodeNodeNext(d.Next),
		"condition": EncodeDataComparator(d.Condition),
	}
}

// EncodeNodeNext renders a destination target. A nil target is an unresolved node.
func EncodeNodeNext(n domain.NodeNext) any {
	switch n := n.(type) {
	case *domain.NextNode:
		return tagged(n.Tag(), n.ID)
	case *domain.NextExitOk:
		return tagged(n.Tag(), encodeList(n.Value, EncodeDataToString))
	case *domain.NextExitErr:
		return tagged(n.Tag(), encodeList(n.Value, EncodeDataToString))
	}
	return tagged(domain.NextTagNode, "")
}

// EncodeDataToString renders a DataToString.
func EncodeDataToString(d domain.DataToString) any {
	o := object{"from": EncodeDataFrom(d.From)}
	putString(o, "prefix", d.Prefix)
	putString(o, "suffix", d.Suffix)
	return o
}

// EncodeDataToContext renders d. It reports false when d is nil or has a
// blank path, in which case the field must be omitted.
func EncodeDataToContext(d *domain.DataToContext) (any, bool) {
	if d == nil || strings.TrimSpace(d.Path) == "" {
		return nil, false
	}
	o := object{"path": d.Path}
	putString(o, "ty", string(d.Ty))
	putString(o, "merge", string(d.Merge))
	if d.Optional {
		o["optional"] = true
	}
	return o, true
}

// EncodeDataFrom renders an expression. A nil expression encodes as "Null".
func EncodeDataFrom(v domain.DataFrom) any {
	switch v := v.(type) {
	case *domain.FromContext:
		o := object{"path": v.Path}
		if v.Required {
			o["required"] = true
		}
		return tagged(v.Tag(), o)
	case *domain.FromParsedInput:
		o := object{}
		putString(o, "path", v.Path)
		if v.Required {
			o["required"] = true
		}
		return tagged(v.Tag(), o)
	case *domain.FromInput:
		o := object{}
		if v.Required {
			o["required"] = true
		}
		return tagged(v.Tag(), o)
	case *domain.FromStatic:
		return tagged(v.Tag(), StaticLiteral(v.Value))
	case *domain.FromConcat:
		return tagged(v.Tag(), encodeList(v.Value, EncodeDataFrom))
	case *domain.FromOperation:
		return tagged(v.Tag(), EncodeDataOperation(v.Value))
	case *domain.FromNull:
		return string(v.Tag())
	case *domain.FromAgentHistory:
		return tagged(v.Tag(), object{
			"id":      v.ID,
			"content": EncodeFromAgentHistoryContent(v.Content),
		})
	case *domain.FromStore:
		return tagged(v.Tag(), object{
			"id":      v.ID,
			"query":   EncodeDataFrom(v.Query),
			"samples": v.Samples,
		})
	}
	return string(domain.DataFromNull)
}

// StaticLiteral converts a stored literal into its wire form. Strings holding
// a JSON number, object or array, or the words true and false, are emitted as
// native JSON. Any other value passes through.
func StaticLiteral(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	t := strings.TrimSpace(s)
	switch {
	case t == "":
		return s
	case t == "true":
		return true
	case t == "false":
		return false
	case isJSONNumber(t):
		return json.Number(t)
	case t[0] == '{' || t[0] == '[':
		dec := json.NewDecoder(strings.NewReader(t))
		dec.UseNumber()
		var parsed any
		if err := dec.Decode(&parsed); err == nil && !dec.More() {
			return parsed
		}
	}
	return s
}

func isJSONNumber(s string) bool {
	if s[0] != '-' && (s[0] < '0' || s[0] > '9') {
		return false
	}
	return json.Valid([]byte(s))
}

// EncodeDataOperation renders an operation.
func EncodeDataOperation(v domain.DataOperation) any {
	switch v := v.(type) {
	case *domain.OpLen:
		return tagged(v.Tag(), EncodeDataFrom(v.Value))
	case *domain.OpAdd:
		return tagged(v.Tag(), object{"num_1": EncodeDataFrom(v.Num1), "num_2": EncodeDataFrom(v.Num2)})
	case *domain.OpSubstract:
		return tagged(v.Tag(), object{"num_1": EncodeDataFrom(v.Num1), "num_2": EncodeDataFrom(v.Num2)})
	case *domain.OpStringSplit:
		return tagged(v.Tag(), object{"from": EncodeDataFrom(v.From), "sep": v.Sep})
	}
	return tagged(domain.DataOperationLen, EncodeDataFrom(nil))
}

// EncodeFromAgentHistoryContent renders a history selector. Nil encodes as "Full".
func EncodeFromAgentHistoryContent(v domain.FromAgentHistoryContent) any {
	switch v := v.(type) {
	case *domain.ContentRange:
		return tagged(v.Tag(), object{"from": v.From, "to": v.To})
	case *domain.ContentRangeMessages:
		return tagged(v.Tag(), object{"from": v.From, "to": v.To})
	case *domain.ContentItem:
		return tagged(v.Tag(), v.Value)
	case *domain.ContentItemMessage:
		return tagged(v.Tag(), v.Value)
	case nil:
		return string(domain.ContentTagFull)
	}
	return string(v.Tag())
}

// EncodeDataComparator renders a condition. Nil encodes as "True".
func EncodeDataComparator(v domain.DataComparator) any {
	switch v := v.(type) {
	case *domain.CmpEq:
		return tagged(v.Tag(), pairOf(v.From1, v.From2))
	case *domain.CmpNotEq:
		return tagged(v.Tag(), pairOf(v.From1, v.From2))
	case *domain.CmpGt:
		return tagged(v.Tag(), pairOf(v.From1, v.From2))
	case *domain.CmpLt:
		return tagged(v.Tag(), pairOf(v.From1, v.From2))
	case *domain.CmpRegex:
		return tagged(v.Tag(), object{"regex": v.Regex, "from": EncodeDataFrom(v.From)})
	case *domain.CmpAnd:
		return tagged(v.Tag(), compPairOf(v.Comp1, v.Comp2))
	case *domain.CmpOr:
		return tagged(v.Tag(), compPairOf(v.Comp1, v.Comp2))
	case *domain.CmpXor:
		return tagged(v.Tag(), compPairOf(v.Comp1, v.Comp2))
	case *domain.CmpNand:
		return tagged(v.Tag(), compPairOf(v.Comp1, v.Comp2))
	case *domain.CmpNot:
		return tagged(v.Tag(), EncodeDataComparator(v.Value))
	case *domain.CmpEmpty:
		return tagged(v.Tag(), EncodeDataFrom(v.Value))
	case *domain.CmpNotEmpty:
		return tagged(v.Tag(), EncodeDataFrom(v.Value))
	case *domain.CmpFalse:
		return string(v.Tag())
	}
	return string(domain.ComparatorTrue)
}

func pairOf(a, b domain.DataFrom) object {
	return object{"from_1": EncodeDataFrom(a), "from_2": EncodeDataFrom(b)}
}

func compPairOf(a, b domain.DataComparator) object {
	return object{"comp_1": EncodeDataComparator(a), "comp_2": EncodeDataComparator(b)}
}

// EncodeDataToAgentHistory renders a history write mode. Nil encodes as "Replace".
func EncodeDataToAgentHistory(v domain.DataToAgentHistory) any {
	switch v := v.(type) {
	case *domain.ToHistoryReplaceItem:
		return tagged(v.Tag(), v.Value)
	case *domain.ToHistoryStringToItem:
		return tagged(v.Tag(), v.Value)
	case nil:
		return string(domain.ToHistoryTagReplace)
	}
	return string(v.Tag())
}

// Clone returns a deep copy of g obtained through a wire round trip.
func Clone(g *domain.Graph) (*domain.Graph, error) {
	data, err := Marshal(g)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
