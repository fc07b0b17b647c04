package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Decoder builds model values from wire JSON value trees. Values may come
// from encoding/json (with or without UseNumber) or from YAML, so numbers are
// accepted as float64, json.Number and the integer kinds.
type Decoder struct {
	logger    *slog.Logger
	strict    bool
	observers []func(Event)
}

// NewDecoder returns a Decoder. It is safe for concurrent use once configured.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Unmarshal decodes a whole graph document from wire JSON bytes.
// No partial graph is returned when decoding fails.
func Unmarshal(data []byte, opts ...Option) (*domain.Graph, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return NewDecoder(opts...).Graph(v)
}

// ParseJSON parses wire bytes into a value tree keeping numbers as json.Number.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse graph json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse graph json: trailing data after document")
	}
	return v, nil
}

func join(path, seg string) string { return path + "/" + seg }

func index(path string, i int) string { return path + "/" + strconv.Itoa(i) }

func (d *Decoder) emit(ev Event) {
	level := slog.LevelDebug
	if ev.Kind == EventInvalidEnum {
		level = slog.LevelWarn
	}
	d.logger.Log(context.Background(), level, "decode accepted malformed value",
		"kind", string(ev.Kind), "family", ev.Family, "path", pathOrRoot(ev.Path), "raw", rawString(ev.Raw))
	for _, fn := range d.observers {
		fn(ev)
	}
}

// fallback reports an unrecognized value in a family with a safe default.
// In strict mode it returns the error instead.
func (d *Decoder) fallback(family, path string, raw any) error {
	if d.strict {
		return &DecodeError{Kind: ErrUnrecognizedVariant, Family: family, Path: path, Raw: raw}
	}
	d.emit(Event{Kind: EventFallback, Family: family, Path: path, Raw: raw})
	return nil
}

func unrecognized(family, path string, raw any) error {
	return &DecodeError{Kind: ErrUnrecognizedVariant, Family: family, Path: path, Raw: raw}
}

func missing(family, path string) error {
	return &DecodeError{Kind: ErrMissingField, Family: family, Path: path}
}

func invalidType(family, path string, raw any, err error) error {
	return &DecodeError{Kind: ErrInvalidType, Family: family, Path: path, Raw: raw, Err: err}
}

// pick finds the reserved tag on v. A bare string is a tag without payload;
// an object is matched by key presence, scanning keys in sorted order.
func pick[T ~string](v any, parse func(string) (T, bool)) (T, string, any, bool) {
	var zero T
	switch x := v.(type) {
	case string:
		t, ok := parse(x)
		return t, x, nil, ok
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if t, ok := parse(k); ok {
				return t, k, x[k], true
			}
		}
	}
	return zero, "", nil, false
}

func (d *Decoder) object(v any, family, path string) (map[string]any, error) {
	switch x := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return x, nil
	}
	return nil, invalidType(family, path, v, fmt.Errorf("expected object"))
}

func (d *Decoder) list(v any, family, path string) ([]any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return x, nil
	}
	return nil, invalidType(family, path, v, fmt.Errorf("expected array"))
}

// fields copies the scalar fields of obj into out using `wire` struct tags.
// Keys holding nested unions are ignored here and decoded separately.
func (d *Decoder) fields(obj map[string]any, out any, family, path string) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "wire",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(obj); err != nil {
		return invalidType(family, path, obj, err)
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt && n < math.MaxInt {
			return int(n), true
		}
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return toInt(i)
	}
	return 0, false
}

func (d *Decoder) integer(v any, family, path string) (int, error) {
	n, ok := toInt(v)
	if !ok {
		return 0, invalidType(family, path, v, fmt.Errorf("expected integer"))
	}
	return n, nil
}

// enum resolves a closed scalar vocabulary. Unknown values are treated as
// absent and reported, unless the decoder is strict.
func enum[T ~string](d *Decoder, v any, parse func(string) (T, bool), family, path string) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	if s, ok := v.(string); ok {
		if t, ok := parse(s); ok {
			return t, nil
		}
	}
	if d.strict {
		return zero, &DecodeError{Kind: ErrInvalidEnumValue, Family: family, Path: path, Raw: v}
	}
	d.emit(Event{Kind: EventInvalidEnum, Family: family, Path: path, Raw: v})
	return zero, nil
}

func decodeList[T any](d *Decoder, v any, family, path string, each func(any, string) (T, error)) ([]T, error) {
	items, err := d.list(v, family, path)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, it := range items {
		x, err := each(it, index(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// Graph decodes a whole graph document.
func (d *Decoder) Graph(v any) (*domain.Graph, error) {
	obj, err := d.object(v, "Graph", "")
	if err != nil {
		return nil, err
	}
	var p struct {
		PreserveContext bool `wire:"preserve_context"`
	}
	if err := d.fields(obj, &p, "Graph", ""); err != nil {
		return nil, err
	}
	g := &domain.Graph{PreserveContext: p.PreserveContext, Context: map[string]any{}}

	if g.Stores, err = decodeList(d, obj["stores"], "StoreConfig", "/stores", d.storeConfig); err != nil {
		return nil, err
	}
	if raw, ok := obj["context"]; ok && raw != nil {
		ctx, ok := raw.(map[string]any)
		if !ok {
			return nil, invalidType("Graph", "/context", raw, fmt.Errorf("expected object"))
		}
		maps.Copy(g.Context, ctx)
	}
	if g.InputType, err = enum(d, obj["input_type"], domain.ParseDataType, "DataType", "/input_type"); err != nil {
		return nil, err
	}
	first, ok := obj["first"]
	if !ok || first == nil {
		return nil, missing("Graph", "/first")
	}
	if g.First, err = d.node(first, "/first"); err != nil {
		return nil, err
	}
	if g.Nodes, err = decodeList(d, obj["nodes"], "Node", "/nodes", d.node); err != nil {
		return nil, err
	}
	return g, nil
}

// Node decodes a single node.
func (d *Decoder) Node(v any) (domain.Node, error) { return d.node(v, "") }

func (d *Decoder) node(v any, path string) (domain.Node, error) {
	tag, key, payload, ok := pick(v, domain.ParseNodeTag)
	if !ok {
		return nil, unrecognized("Node", path, v)
	}
	at := join(path, key)
	obj, err := d.object(payload, "Node", at)
	if err != nil {
		return nil, err
	}
	var p struct {
		ID   string `wire:"id"`
		Path string `wire:"path"`
	}
	if err := d.fields(obj, &p, "Node", at); err != nil {
		return nil, err
	}

	switch tag {
	case domain.NodeTagNode:
		n := &domain.PlainNode{ID: p.ID}
		raw, ok := obj["executor"]
		if !ok || raw == nil {
			return nil, missing("Node", join(at, "executor"))
		}
		if n.Executor, err = d.nodeExecutor(raw, join(at, "executor")); err != nil {
			return nil, err
		}
		if n.Output, err = d.dataToContext(obj["output"], join(at, "output")); err != nil {
			return nil, err
		}
		if n.Destination, err = decodeList(d, obj["destination"], "NodeDestination", join(at, "destination"), d.destination); err != nil {
			return nil, err
		}
		return n, nil
	case domain.NodeTagGraph:
		n := &domain.GraphNode{ID: p.ID, Path: p.Path}
		if n.Input, err = decodeList(d, obj["input"], "DataToString", join(at, "input"), d.dataToString); err != nil {
			return nil, err
		}
		if n.Output, err = decodeList(d, obj["output"], "GraphNodeOutput", join(at, "output"), d.graphNodeOutput); err != nil {
			return nil, err
		}
		if n.NodeOutput, err = d.dataToContext(obj["node_output"], join(at, "node_output")); err != nil {
			return nil, err
		}
		if n.NodeDestination, err = decodeList(d, obj["node_destination"], "NodeDestination", join(at, "node_destination"), d.destination); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, unrecognized("Node", path, v)
}

func (d *Decoder) destination(v any, path string) (domain.NodeDestination, error) {
	var dest domain.NodeDestination
	obj, err := d.object(v, "NodeDestination", path)
	if err != nil {
		return dest, err
	}
	raw, ok := obj["next"]
	if !ok || raw == nil {
		return dest, missing("NodeDestination", join(path, "next"))
	}
	if dest.Next, err = d.nodeNext(raw, join(path, "next")); err != nil {
		return dest, err
	}
	if cond, ok := obj["condition"]; ok && cond != nil {
		if dest.Condition, err = d.comparator(cond, join(path, "condition")); err != nil {
			return dest, err
		}
	} else {
		dest.Condition = &domain.CmpTrue{}
	}
	return dest, nil
}

func (d *Decoder) nodeNext(v any, path string) (domain.NodeNext, error) {
	tag, key, payload, ok := pick(v, domain.ParseNodeNextTag)
	if !ok {
		return nil, unrecognized("NodeNext", path, v)
	}
	at := join(path, key)
	switch tag {
	case domain.NextTagNode:
		if payload == nil {
			return &domain.NextNode{}, nil
		}
		id, ok := payload.(string)
		if !ok {
			return nil, invalidType("NodeNext", at, payload, fmt.Errorf("expected string"))
		}
		return &domain.NextNode{ID: id}, nil
	case domain.NextTagExitOk:
		value, err := decodeList(d, payload, "DataToString", at, d.dataToString)
		if err != nil {
			return nil, err
		}
		return &domain.NextExitOk{Value: orEmpty(value)}, nil
	case domain.NextTagExitErr:
		value, err := decodeList(d, payload, "DataToString", at, d.dataToString)
		if err != nil {
			return nil, err
		}
		return &domain.NextExitErr{Value: orEmpty(value)}, nil
	}
	return nil, unrecognized("NodeNext", path, v)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (d *Decoder) dataToString(v any, path string) (domain.DataToString, error) {
	var out domain.DataToString
	obj, err := d.object(v, "DataToString", path)
	if err != nil {
		return out, err
	}
	var p struct {
		Prefix string `wire:"prefix"`
		Suffix string `wire:"suffix"`
	}
	if err := d.fields(obj, &p, "DataToString", path); err != nil {
		return out, err
	}
	out.Prefix, out.Suffix = p.Prefix, p.Suffix
	out.From, err = d.requiredDataFrom(obj, "from", path)
	return out, err
}

func (d *Decoder) dataToContext(v any, path string) (*domain.DataToContext, error) {
	if v == nil {
		return nil, nil
	}
	obj, err := d.object(v, "DataToContext", path)
	if err != nil {
		return nil, err
	}
	var p struct {
		Path     string `wire:"path"`
		Optional bool   `wire:"optional"`
	}
	if err := d.fields(obj, &p, "DataToContext", path); err != nil {
		return nil, err
	}
	out := &domain.DataToContext{Path: p.Path, Optional: p.Optional}
	if out.Ty, err = enum(d, obj["ty"], domain.ParseDataType, "DataType", join(path, "ty")); err != nil {
		return nil, err
	}
	if out.Merge, err = enum(d, obj["merge"], domain.ParseDataMerge, "DataMerge", join(path, "merge")); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Decoder) requiredDataFrom(obj map[string]any, key, path string) (domain.DataFrom, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, missing("DataFrom", join(path, key))
	}
	return d.dataFrom(raw, join(path, key))
}

func (d *Decoder) requiredComparator(obj map[string]any, key, path string) (domain.DataComparator, error) {
	return d.comparator(obj[key], join(path, key))
}
