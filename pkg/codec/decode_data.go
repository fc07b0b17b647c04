package codec

import (
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// DataFrom decodes a single expression.
func (d *Decoder) DataFrom(v any) (domain.DataFrom, error) { return d.dataFrom(v, "") }

func (d *Decoder) dataFrom(v any, path string) (domain.DataFrom, error) {
	tag, key, payload, ok := pick(v, domain.ParseDataFromTag)
	if !ok {
		return nil, unrecognized("DataFrom", path, v)
	}
	at := join(path, key)

	switch tag {
	case domain.DataFromStatic:
		return &domain.FromStatic{Value: payload}, nil
	case domain.DataFromNull:
		return &domain.FromNull{}, nil
	case domain.DataFromConcat:
		items, err := decodeList(d, payload, "DataFrom", at, d.dataFrom)
		if err != nil {
			return nil, err
		}
		return &domain.FromConcat{Value: orEmpty(items)}, nil
	case domain.DataFromOperation:
		if payload == nil {
			return nil, missing("DataOperation", at)
		}
		op, err := d.dataOperation(payload, at)
		if err != nil {
			return nil, err
		}
		return &domain.FromOperation{Value: op}, nil
	}

	obj, err := d.object(payload, "DataFrom", at)
	if err != nil {
		return nil, err
	}
	var p struct {
		Path     string `wire:"path"`
		Required bool   `wire:"required"`
		ID       string `wire:"id"`
		Samples  int    `wire:"samples"`
	}
	p.Samples = 1
	if err := d.fields(obj, &p, string(tag), at); err != nil {
		return nil, err
	}

	switch tag {
	case domain.DataFromContext:
		return &domain.FromContext{Path: p.Path, Required: p.Required}, nil
	case domain.DataFromParsedInput:
		return &domain.FromParsedInput{Path: p.Path, Required: p.Required}, nil
	case domain.DataFromInput:
		return &domain.FromInput{Required: p.Required}, nil
	case domain.DataFromAgentHistory:
		content, err := d.historyContent(obj["content"], join(at, "content"))
		if err != nil {
			return nil, err
		}
		return &domain.FromAgentHistory{ID: p.ID, Content: content}, nil
	case domain.DataFromStore:
		query, err := d.requiredDataFrom(obj, "query", at)
		if err != nil {
			return nil, err
		}
		return &domain.FromStore{ID: p.ID, Query: query, Samples: p.Samples}, nil
	}
	return nil, unrecognized("DataFrom", path, v)
}

// DataOperation decodes a single operation.
func (d *Decoder) DataOperation(v any) (domain.DataOperation, error) { return d.dataOperation(v, "") }

func (d *Decoder) dataOperation(v any, path string) (domain.DataOperation, error) {
	tag, key, payload, ok := pick(v, domain.ParseDataOperationTag)
	if !ok {
		return nil, unrecognized("DataOperation", path, v)
	}
	at := join(path, key)

	if tag == domain.DataOperationLen {
		if payload == nil {
			return nil, missing("DataFrom", at)
		}
		value, err := d.dataFrom(payload, at)
		if err != nil {
			return nil, err
		}
		return &domain.OpLen{Value: value}, nil
	}

	obj, err := d.object(payload, "DataOperation", at)
	if err != nil {
		return nil, err
	}
	switch tag {
	case domain.DataOperationAdd, domain.DataOperationSubstract:
		num1, err := d.requiredDataFrom(obj, "num_1", at)
		if err != nil {
			return nil, err
		}
		num2, err := d.requiredDataFrom(obj, "num_2", at)
		if err != nil {
			return nil, err
		}
		if tag == domain.DataOperationAdd {
			return &domain.OpAdd{Num1: num1, Num2: num2}, nil
		}
		return &domain.OpSubstract{Num1: num1, Num2: num2}, nil
	case domain.DataOperationStringSplit:
		var p struct {
			Sep string `wire:"sep"`
		}
		if err := d.fields(obj, &p, "StringSplit", at); err != nil {
			return nil, err
		}
		from, err := d.requiredDataFrom(obj, "from", at)
		if err != nil {
			return nil, err
		}
		return &domain.OpStringSplit{From: from, Sep: p.Sep}, nil
	}
	return nil, unrecognized("DataOperation", path, v)
}

// FromAgentHistoryContent decodes a history selector, falling back to Full.
func (d *Decoder) FromAgentHistoryContent(v any) (domain.FromAgentHistoryContent, error) {
	return d.historyContent(v, "")
}

func (d *Decoder) historyContent(v any, path string) (domain.FromAgentHistoryContent, error) {
	const family = "FromAgentHistoryContent"
	tag, key, payload, ok := pick(v, domain.ParseFromAgentHistoryContentTag)
	if !ok {
		if err := d.fallback(family, path, v); err != nil {
			return nil, err
		}
		return &domain.ContentFull{}, nil
	}
	at := join(path, key)

	switch tag {
	case domain.ContentTagRange, domain.ContentTagRangeMessages:
		obj, err := d.object(payload, family, at)
		if err != nil {
			return nil, err
		}
		var p struct {
			From int `wire:"from"`
			To   int `wire:"to"`
		}
		if err := d.fields(obj, &p, family, at); err != nil {
			return nil, err
		}
		if tag == domain.ContentTagRange {
			return &domain.ContentRange{From: p.From, To: p.To}, nil
		}
		return &domain.ContentRangeMessages{From: p.From, To: p.To}, nil
	case domain.ContentTagItem, domain.ContentTagItemMessage:
		n, err := d.integer(payload, family, at)
		if err != nil {
			return nil, err
		}
		if tag == domain.ContentTagItem {
			return &domain.ContentItem{Value: n}, nil
		}
		return &domain.ContentItemMessage{Value: n}, nil
	}
	content, _ := domain.NewFromAgentHistoryContent(tag)
	return content, nil
}

// DataComparator decodes a condition, falling back to True.
func (d *Decoder) DataComparator(v any) (domain.DataComparator, error) { return d.comparator(v, "") }

func (d *Decoder) comparator(v any, path string) (domain.DataComparator, error) {
	const family = "DataComparator"
	tag, key, payload, ok := pick(v, domain.ParseDataComparatorTag)
	if !ok {
		if err := d.fallback(family, path, v); err != nil {
			return nil, err
		}
		return &domain.CmpTrue{}, nil
	}
	at := join(path, key)

	switch tag {
	case domain.ComparatorTrue:
		return &domain.CmpTrue{}, nil
	case domain.ComparatorFalse:
		return &domain.CmpFalse{}, nil
	case domain.ComparatorNot:
		value, err := d.comparator(payload, at)
		if err != nil {
			return nil, err
		}
		return &domain.CmpNot{Value: value}, nil
	case domain.ComparatorEmpty, domain.ComparatorNotEmpty:
		if payload == nil {
			return nil, missing("DataFrom", at)
		}
		value, err := d.dataFrom(payload, at)
		if err != nil {
			return nil, err
		}
		if tag == domain.ComparatorEmpty {
			return &domain.CmpEmpty{Value: value}, nil
		}
		return &domain.CmpNotEmpty{Value: value}, nil
	}

	obj, err := d.object(payload, family, at)
	if err != nil {
		return nil, err
	}
	switch tag {
	case domain.ComparatorEq, domain.ComparatorNotEq, domain.ComparatorGt, domain.ComparatorLt:
		from1, err := d.requiredDataFrom(obj, "from_1", at)
		if err != nil {
			return nil, err
		}
		from2, err := d.requiredDataFrom(obj, "from_2", at)
		if err != nil {
			return nil, err
		}
		switch tag {
		case domain.ComparatorEq:
			return &domain.CmpEq{From1: from1, From2: from2}, nil
		case domain.ComparatorNotEq:
			return &domain.CmpNotEq{From1: from1, From2: from2}, nil
		case domain.ComparatorGt:
			return &domain.CmpGt{From1: from1, From2: from2}, nil
		default:
			return &domain.CmpLt{From1: from1, From2: from2}, nil
		}
	case domain.ComparatorRegex:
		var p struct {
			Regex string `wire:"regex"`
		}
		if err := d.fields(obj, &p, "Regex", at); err != nil {
			return nil, err
		}
		from, err := d.requiredDataFrom(obj, "from", at)
		if err != nil {
			return nil, err
		}
		return &domain.CmpRegex{Regex: p.Regex, From: from}, nil
	case domain.ComparatorAnd, domain.ComparatorOr, domain.ComparatorXor, domain.ComparatorNand:
		comp1, err := d.requiredComparator(obj, "comp_1", at)
		if err != nil {
			return nil, err
		}
		comp2, err := d.requiredComparator(obj, "comp_2", at)
		if err != nil {
			return nil, err
		}
		switch tag {
		case domain.ComparatorAnd:
			return &domain.CmpAnd{Comp1: comp1, Comp2: comp2}, nil
		case domain.ComparatorOr:
			return &domain.CmpOr{Comp1: comp1, Comp2: comp2}, nil
		case domain.ComparatorXor:
			return &domain.CmpXor{Comp1: comp1, Comp2: comp2}, nil
		default:
			return &domain.CmpNand{Comp1: comp1, Comp2: comp2}, nil
		}
	}
	return nil, unrecognized(family, path, v)
}

// DataToAgentHistory decodes a history write mode, falling back to Replace.
func (d *Decoder) DataToAgentHistory(v any) (domain.DataToAgentHistory, error) {
	return d.toHistory(v, "")
}

func (d *Decoder) toHistory(v any, path string) (domain.DataToAgentHistory, error) {
	const family = "DataToAgentHistory"
	tag, key, payload, ok := pick(v, domain.ParseDataToAgentHistoryTag)
	if !ok {
		if err := d.fallback(family, path, v); err != nil {
			return nil, err
		}
		return &domain.ToHistoryReplace{}, nil
	}
	at := join(path, key)
	if key == domain.ToHistoryTagReplaceLastLegacy {
		d.emit(Event{Kind: EventLegacyTag, Family: family, Path: path, Raw: v})
	}

	switch tag {
	case domain.ToHistoryTagReplaceItem, domain.ToHistoryTagStringToItem:
		n, err := d.integer(payload, family, at)
		if err != nil {
			return nil, err
		}
		if tag == domain.ToHistoryTagReplaceItem {
			return &domain.ToHistoryReplaceItem{Value: n}, nil
		}
		return &domain.ToHistoryStringToItem{Value: n}, nil
	}
	out, _ := domain.NewDataToAgentHistory(tag)
	return out, nil
}
