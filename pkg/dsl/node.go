package dsl

import "github.com/afuentesan/awpak-builder/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Command makes the node run the given command with args.
func (n *NodeBuilder) Command(cmd domain.DataFrom, args ...domain.DataFrom) *NodeBuilder {
	c := domain.NewCommand()
	c.Command = cmd
	c.Args = append(c.Args, args...)
	c.Output = append(c.Output, &domain.CmdOut{})
	n.plain().Executor = c
	return n
}

// Agent makes the node call an AI agent with the rendered prompt parts.
func (n *NodeBuilder) Agent(provider domain.AIAgentProvider, prompt ...domain.DataFrom) *NodeBuilder {
	e, _ := domain.NewNodeExecutor(domain.ExecutorAgent)
	agent := e.(*domain.AIAgent)
	if provider != nil {
		agent.Provider = provider
	}
	for _, p := range prompt {
		agent.Prompt = append(agent.Prompt, domain.DataToString{From: p})
	}
	n.plain().Executor = agent
	return n
}

// SystemPrompt sets the system prompt of an agent node. It is a no-op for
// other executors.
func (n *NodeBuilder) SystemPrompt(text string) *NodeBuilder {
	if p, ok := n.node.(*domain.PlainNode); ok {
		if agent, ok := p.Executor.(*domain.AIAgent); ok {
			agent.SystemPrompt = text
		}
	}
	return n
}

// Web makes the node send an HTTP request returning the response body.
func (n *NodeBuilder) Web(method domain.AwpakMethod, url domain.DataFrom) *NodeBuilder {
	w := domain.NewWebClient()
	w.Method = method
	w.URL = url
	w.Output = append(w.Output, &domain.WebBody{})
	n.plain().Executor = w
	return n
}

// SetContext appends an unconditional context mutation writing from to path.
// Consecutive calls accumulate on the same node.
func (n *NodeBuilder) SetContext(path string, from domain.DataFrom) *NodeBuilder {
	p := n.plain()
	mut, ok := p.Executor.(*domain.ContextMutExecutor)
	if !ok {
		e, _ := domain.NewNodeExecutor(domain.ExecutorContextMut)
		mut = e.(*domain.ContextMutExecutor)
		p.Executor = mut
	}
	item := domain.NewContextMut()
	item.From = from
	item.To = &domain.DataToContext{Path: path, Ty: domain.DataTypeString, Merge: domain.DataMergeInsert}
	mut.Items = append(mut.Items, item)
	return n
}

// SubGraph turns the node into a sub-graph node running the file at path.
// Routes and output configured so far are kept.
func (n *NodeBuilder) SubGraph(path string, input ...domain.DataFrom) *NodeBuilder {
	sub, ok := n.node.(*domain.GraphNode)
	if !ok {
		sub = domain.NewGraphNode(n.node.NodeID())
		sub.NodeDestination = append(sub.NodeDestination, *n.node.Destinations()...)
		sub.NodeOutput = n.node.ContextOutput()
		n.node = sub
	}
	sub.Path = path
	for _, in := range input {
		sub.Input = append(sub.Input, domain.DataToString{From: in})
	}
	return n
}

// Output writes the node result to path in the context as type ty.
func (n *NodeBuilder) Output(path string, ty domain.DataType) *NodeBuilder {
	n.node.SetContextOutput(&domain.DataToContext{Path: path, Ty: ty, Merge: domain.DataMergeInsert})
	return n
}

// Go adds an unconditional transition to the target node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	return n.route(&domain.NextNode{ID: target}, nil)
}

// Branch adds a transition to target taken when cond holds.
func (n *NodeBuilder) Branch(cond domain.DataComparator, target string) *NodeBuilder {
	return n.route(&domain.NextNode{ID: target}, cond)
}

// Exit ends the graph successfully with the concatenated values.
func (n *NodeBuilder) Exit(values ...domain.DataFrom) *NodeBuilder {
	return n.route(&domain.NextExitOk{Value: toStrings(values)}, nil)
}

// ExitIf ends the graph successfully when cond holds.
func (n *NodeBuilder) ExitIf(cond domain.DataComparator, values ...domain.DataFrom) *NodeBuilder {
	return n.route(&domain.NextExitOk{Value: toStrings(values)}, cond)
}

// Fail ends the graph with an error built from the concatenated values.
func (n *NodeBuilder) Fail(values ...domain.DataFrom) *NodeBuilder {
	return n.route(&domain.NextExitErr{Value: toStrings(values)}, nil)
}

// Build returns the configured node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}

func (n *NodeBuilder) route(next domain.NodeNext, cond domain.DataComparator) *NodeBuilder {
	if cond == nil {
		cond = domain.DefaultComparator()
	}
	dst := n.node.Destinations()
	*dst = append(*dst, domain.NodeDestination{Next: next, Condition: cond})
	return n
}

// plain converts a sub-graph node back into a plain node, keeping routes.
func (n *NodeBuilder) plain() *domain.PlainNode {
	if p, ok := n.node.(*domain.PlainNode); ok {
		return p
	}
	p := domain.NewPlainNode(n.node.NodeID())
	p.Destination = append(p.Destination, *n.node.Destinations()...)
	p.Output = n.node.ContextOutput()
	n.node = p
	return p
}

func toStrings(values []domain.DataFrom) []domain.DataToString {
	out := make([]domain.DataToString, 0, len(values))
	for _, v := range values {
		out = append(out, domain.DataToString{From: v})
	}
	return out
}
