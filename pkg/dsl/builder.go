package dsl

import (
	"context"
	"fmt"

	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// Builder manages the graph construction.
type Builder struct {
	order    []string
	nodes    map[string]*NodeBuilder
	stores   []domain.StoreConfig
	context  map[string]any
	preserve bool
	input    domain.DataType
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes:   make(map[string]*NodeBuilder),
		context: make(map[string]any),
	}
}

// Add creates a new node in the graph. The first node added is the entry
// point. If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    domain.NewPlainNode(id),
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Context sets an initial context value.
func (b *Builder) Context(key string, value any) *Builder {
	b.context[key] = value
	return b
}

// PreserveContext keeps the context between executions.
func (b *Builder) PreserveContext() *Builder {
	b.preserve = true
	return b
}

// InputType declares the type the graph input is parsed as.
func (b *Builder) InputType(t domain.DataType) *Builder {
	b.input = t
	return b
}

// Store declares an in-memory vector store embedding with model.
func (b *Builder) Store(id string, model domain.StoreModel, docs ...domain.StoreDocument) *Builder {
	cfg := domain.NewStoreConfig(id)
	if model != nil {
		cfg.Model = model
	}
	cfg.Documents = append(cfg.Documents, docs...)
	b.stores = append(b.stores, cfg)
	return b
}

// Graph assembles the graph without validating it.
func (b *Builder) Graph() *domain.Graph {
	g := &domain.Graph{
		Stores:          append([]domain.StoreConfig{}, b.stores...),
		Context:         make(map[string]any, len(b.context)),
		PreserveContext: b.preserve,
		InputType:       b.input,
		Nodes:           []domain.Node{},
	}
	for k, v := range b.context {
		g.Context[k] = v
	}
	for i, id := range b.order {
		n := b.nodes[id].Build()
		if i == 0 {
			g.First = n
			continue
		}
		g.Nodes = append(g.Nodes, n)
	}
	return g
}

// Build assembles and validates the graph.
func (b *Builder) Build() (*domain.Graph, error) {
	g := b.Graph()
	if err := validate.Graph(g); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildStore builds the graph and saves it under name in a fresh memory store.
func (b *Builder) BuildStore(name string) (*memory.Store, error) {
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	store := memory.NewStore()
	if err := store.Save(context.Background(), name, g); err != nil {
		return nil, fmt.Errorf("failed to build memory store: %w", err)
	}
	return store, nil
}
