package domain

// Affix is the optional text wrapped around an output value.
type Affix struct {
	Prefix string
	Suffix string
}

// Affixes returns the receiver so variants embedding Affix share one accessor.
func (a *Affix) Affixes() *Affix { return a }

// CommandOutputTag identifies a CommandOutput variant.
type CommandOutputTag string

const (
	CommandOutputOut     CommandOutputTag = "Out"
	CommandOutputErr     CommandOutputTag = "Err"
	CommandOutputSuccess CommandOutputTag = "Success"
	CommandOutputCode    CommandOutputTag = "Code"
	CommandOutputObject  CommandOutputTag = "Object"
)

var commandOutputTags = []CommandOutputTag{CommandOutputOut, CommandOutputErr, CommandOutputSuccess, CommandOutputCode, CommandOutputObject}

// CommandOutputTags returns every CommandOutput tag.
func CommandOutputTags() []CommandOutputTag { return cloneTags(commandOutputTags) }

// ParseCommandOutputTag resolves a wire tag into a CommandOutputTag.
func ParseCommandOutputTag(s string) (CommandOutputTag, bool) { return parseTag(commandOutputTags, s) }

// CommandOutput selects which part of a command result becomes node output.
type CommandOutput interface {
	Tag() CommandOutputTag
	Affixes() *Affix
}

type CmdOut struct{ Affix }
type CmdErr struct{ Affix }
type CmdSuccess struct{ Affix }
type CmdCode struct{ Affix }
type CmdObject struct{ Affix }

func (*CmdOut) Tag() CommandOutputTag     { return CommandOutputOut }
func (*CmdErr) Tag() CommandOutputTag     { return CommandOutputErr }
func (*CmdSuccess) Tag() CommandOutputTag { return CommandOutputSuccess }
func (*CmdCode) Tag() CommandOutputTag    { return CommandOutputCode }
func (*CmdObject) Tag() CommandOutputTag  { return CommandOutputObject }

// NewCommandOutput returns the variant tag wrapped in affix.
func NewCommandOutput(tag CommandOutputTag, affix Affix) (CommandOutput, bool) {
	switch tag {
	case CommandOutputOut:
		return &CmdOut{affix}, true
	case CommandOutputErr:
		return &CmdErr{affix}, true
	case CommandOutputSuccess:
		return &CmdSuccess{affix}, true
	case CommandOutputCode:
		return &CmdCode{affix}, true
	case CommandOutputObject:
		return &CmdObject{affix}, true
	}
	return nil, false
}

// GraphNodeOutputTag identifies a GraphNodeOutput variant.
type GraphNodeOutputTag string

const (
	GraphOutputSuccess GraphNodeOutputTag = "Success"
	GraphOutputOut     GraphNodeOutputTag = "Out"
	GraphOutputErr     GraphNodeOutputTag = "Err"
	GraphOutputObject  GraphNodeOutputTag = "Object"
)

var graphOutputTags = []GraphNodeOutputTag{GraphOutputSuccess, GraphOutputOut, GraphOutputErr, GraphOutputObject}

// GraphNodeOutputTags returns every GraphNodeOutput tag.
func GraphNodeOutputTags() []GraphNodeOutputTag { return cloneTags(graphOutputTags) }

// ParseGraphNodeOutputTag resolves a wire tag into a GraphNodeOutputTag.
func ParseGraphNodeOutputTag(s string) (GraphNodeOutputTag, bool) { return parseTag(graphOutputTags, s) }

// GraphNodeOutput selects which part of a sub-graph result becomes node output.
type GraphNodeOutput interface {
	Tag() GraphNodeOutputTag
	Affixes() *Affix
}

type SubSuccess struct{ Affix }
type SubOut struct{ Affix }
type SubErr struct{ Affix }
type SubObject struct{ Affix }

func (*SubSuccess) Tag() GraphNodeOutputTag { return GraphOutputSuccess }
func (*SubOut) Tag() GraphNodeOutputTag     { return GraphOutputOut }
func (*SubErr) Tag() GraphNodeOutputTag     { return GraphOutputErr }
func (*SubObject) Tag() GraphNodeOutputTag  { return GraphOutputObject }

// NewGraphNodeOutput returns the variant tag wrapped in affix.
func NewGraphNodeOutput(tag GraphNodeOutputTag, affix Affix) (GraphNodeOutput, bool) {
	switch tag {
	case GraphOutputSuccess:
		return &SubSuccess{affix}, true
	case GraphOutputOut:
		return &SubOut{affix}, true
	case GraphOutputErr:
		return &SubErr{affix}, true
	case GraphOutputObject:
		return &SubObject{affix}, true
	}
	return nil, false
}

// WebClientOutputTag identifies a WebClientOutput variant.
type WebClientOutputTag string

const (
	WebOutputVersion WebClientOutputTag = "Version"
	WebOutputStatus  WebClientOutputTag = "Status"
	WebOutputHeader  WebClientOutputTag = "Header"
	WebOutputBody    WebClientOutputTag = "Body"
	WebOutputObject  WebClientOutputTag = "Object"
)

var webOutputTags = []WebClientOutputTag{WebOutputVersion, WebOutputStatus, WebOutputHeader, WebOutputBody, WebOutputObject}

// WebClientOutputTags returns every WebClientOutput tag.
func WebClientOutputTags() []WebClientOutputTag { return cloneTags(webOutputTags) }

// ParseWebClientOutputTag resolves a wire tag into a WebClientOutputTag.
func ParseWebClientOutputTag(s string) (WebClientOutputTag, bool) { return parseTag(webOutputTags, s) }

// WebClientOutput selects which part of an HTTP response becomes node output.
type WebClientOutput interface {
	Tag() WebClientOutputTag
	Affixes() *Affix
}

type WebVersion struct{ Affix }
type WebStatus struct{ Affix }

// WebHeader outputs the response header Name.
type WebHeader struct {
	Name string
	Affix
}

type WebBody struct{ Affix }
type WebObject struct{ Affix }

func (*WebVersion) Tag() WebClientOutputTag { return WebOutputVersion }
func (*WebStatus) Tag() WebClientOutputTag  { return WebOutputStatus }
func (*WebHeader) Tag() WebClientOutputTag  { return WebOutputHeader }
func (*WebBody) Tag() WebClientOutputTag    { return WebOutputBody }
func (*WebObject) Tag() WebClientOutputTag  { return WebOutputObject }

// NewWebClientOutput returns the variant tag wrapped in affix.
func NewWebClientOutput(tag WebClientOutputTag, affix Affix) (WebClientOutput, bool) {
	switch tag {
	case WebOutputVersion:
		return &WebVersion{affix}, true
	case WebOutputStatus:
		return &WebStatus{affix}, true
	case WebOutputHeader:
		return &WebHeader{Affix: affix}, true
	case WebOutputBody:
		return &WebBody{affix}, true
	case WebOutputObject:
		return &WebObject{affix}, true
	}
	return nil, false
}
