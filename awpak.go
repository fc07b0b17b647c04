package awpak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/afuentesan/awpak-builder/internal/logging"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/editor"
	"github.com/afuentesan/awpak-builder/pkg/ports"
	"github.com/afuentesan/awpak-builder/pkg/refs"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// DefaultLockTTL bounds how long an edit may hold a document lock.
const DefaultLockTTL = 30 * time.Second

// Editor is the high-level entry point of the library.
// It edits graph documents held in a GraphStore. Safe for concurrent use
// when the store and locker are.
type Editor struct {
	store    ports.GraphStore
	locker   ports.DistributedLocker
	lockTTL  time.Duration
	logger   *slog.Logger
	strict   bool
	observe  func(codec.Event)
	dangling bool
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithLocker sets the locker serializing edits of the same document.
func WithLocker(l ports.DistributedLocker) Option {
	return func(e *Editor) {
		e.locker = l
	}
}

// WithLockTTL sets the expiry of document locks.
func WithLockTTL(ttl time.Duration) Option {
	return func(e *Editor) {
		e.lockTTL = ttl
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithStrict makes Decode reject unknown tags instead of falling back.
func WithStrict(strict bool) Option {
	return func(e *Editor) {
		e.strict = strict
	}
}

// WithObserver receives every decode event, such as fallbacks.
func WithObserver(fn func(codec.Event)) Option {
	return func(e *Editor) {
		e.observe = fn
	}
}

// WithAllowDangling lets Save and edits persist graphs whose node
// references name no node, such as the routes left behind by RemoveNode.
func WithAllowDangling(allow bool) Option {
	return func(e *Editor) {
		e.dangling = allow
	}
}

// New creates an Editor over store. A nil store is replaced by an empty
// in-memory one.
func New(store ports.GraphStore, opts ...Option) *Editor {
	e := &Editor{
		store:   store,
		lockTTL: DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.locker == nil {
		e.locker = memory.NewLocker()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// With returns a copy of e with opts applied on top of its settings.
func (e *Editor) With(opts ...Option) *Editor {
	c := *e
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Store returns the underlying store.
func (e *Editor) Store() ports.GraphStore { return e.store }

func (e *Editor) decoder() *codec.Decoder {
	opts := []codec.Option{codec.WithLogger(e.logger), codec.WithStrict(e.strict)}
	if e.observe != nil {
		opts = append(opts, codec.WithObserver(e.observe))
	}
	return codec.NewDecoder(opts...)
}

// Decode parses a wire document with the editor's decoding options.
func (e *Editor) Decode(data []byte) (*domain.Graph, error) {
	v, err := codec.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return e.decoder().Graph(v)
}

// Format decodes data and encodes it back in canonical indented form.
func (e *Editor) Format(data []byte) ([]byte, error) {
	g, err := e.Decode(data)
	if err != nil {
		return nil, err
	}
	return codec.MarshalIndent(g, "  ")
}

// Check decodes data and validates the graph.
func (e *Editor) Check(data []byte) (*domain.Graph, error) {
	g, err := e.Decode(data)
	if err != nil {
		return nil, err
	}
	return g, validate.Graph(g)
}

// Load returns the document stored under name.
func (e *Editor) Load(ctx context.Context, name string) (*domain.Graph, error) {
	return e.store.Load(ctx, name)
}

// Save stores g under name. Graphs with unresolved node references are
// refused unless the editor allows them; no other validation runs.
func (e *Editor) Save(ctx context.Context, name string, g *domain.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidEdit)
	}
	if !e.dangling {
		if d := refs.Dangling(g); len(d) > 0 {
			return danglingError(d)
		}
	}
	return e.store.Save(ctx, name, g)
}

// Delete removes the document name.
func (e *Editor) Delete(ctx context.Context, name string) error {
	return e.store.Delete(ctx, name)
}

// List returns every stored document name.
func (e *Editor) List(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Update loads name, applies fn and saves the result while holding the
// document lock. Nothing is saved when fn fails or when it leaves more
// unresolved node references than the document had before, unless the
// editor allows them.
func (e *Editor) Update(ctx context.Context, name string, fn func(g *domain.Graph) error) (err error) {
	if err := domain.ValidateGraphName(name); err != nil {
		return err
	}
	unlock, err := e.locker.Lock(ctx, name, e.lockTTL)
	if err != nil {
		return fmt.Errorf("failed to lock graph %s: %w", name, err)
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
			e.logger.Warn("failed to release graph lock", "graph", name, "err", uerr)
		}
	}()

	g, err := e.store.Load(ctx, name)
	if err != nil {
		return err
	}
	before := len(refs.Dangling(g))
	if err := fn(g); err != nil {
		return err
	}
	if !e.dangling {
		if d := refs.Dangling(g); len(d) > before {
			return danglingError(d)
		}
	}
	if err := e.store.Save(ctx, name, g); err != nil {
		return err
	}
	e.logger.Debug("graph updated", "graph", name)
	return nil
}

// RenameNode changes node oldID to newID in document name and returns the
// number of node references rewritten.
func (e *Editor) RenameNode(ctx context.Context, name, oldID, newID string) (int, error) {
	var count int
	err := e.Update(ctx, name, func(g *domain.Graph) error {
		oldID, newID := strings.TrimSpace(oldID), strings.TrimSpace(newID)
		if _, ok := g.NodeByID(oldID); !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, oldID)
		}
		if _, taken := g.NodeByID(newID); taken {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNodeID, newID)
		}
		count = countRefs(g, oldID)
		if !editor.RenameNode(g, oldID, newID) {
			return fmt.Errorf("%w: cannot rename %q to %q", ErrInvalidEdit, oldID, newID)
		}
		return nil
	})
	return count, err
}

// RemoveNode deletes node id from document name and returns the number of
// references left unresolved. The first node cannot be removed. A node that
// is still referenced is only removed when the editor allows dangling
// references (see WithAllowDangling).
func (e *Editor) RemoveNode(ctx context.Context, name, id string) (int, error) {
	var count int
	err := e.Update(ctx, name, func(g *domain.Graph) error {
		if g.First != nil && g.First.NodeID() == id && g.NodeIndex(id) < 0 {
			return fmt.Errorf("%w: the first node cannot be removed", ErrInvalidEdit)
		}
		if g.NodeIndex(id) < 0 {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}
		count = countRefs(g, id)
		editor.RemoveNodeByID(g, id)
		return nil
	})
	return count, err
}

// ChangeNodeKind retags node id between a plain node and a sub-graph node.
func (e *Editor) ChangeNodeKind(ctx context.Context, name, id string, tag domain.NodeTag) error {
	return e.Update(ctx, name, func(g *domain.Graph) error {
		if _, ok := g.NodeByID(id); !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}
		if !editor.ChangeNodeKind(g, id, tag) {
			return fmt.Errorf("%w: cannot change node %q to %q", ErrInvalidEdit, id, tag)
		}
		return nil
	})
}

// ChangeExecutorKind retags the executor of plain node id.
func (e *Editor) ChangeExecutorKind(ctx context.Context, name, id string, tag domain.NodeExecutorTag) error {
	return e.Update(ctx, name, func(g *domain.Graph) error {
		if _, ok := g.NodeByID(id); !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}
		if !editor.ChangeExecutorKind(g, id, tag) {
			return fmt.Errorf("%w: cannot change executor of %q to %q", ErrInvalidEdit, id, tag)
		}
		return nil
	})
}

func danglingError(d []refs.Ref) error {
	paths := make([]string, len(d))
	for i, r := range d {
		paths[i] = r.Path
	}
	return fmt.Errorf("%w: unresolved node references at %s", ErrInvalidEdit, strings.Join(paths, ", "))
}

func countRefs(g *domain.Graph, id string) int {
	n := 0
	for _, r := range refs.Collect(g) {
		if r.NodeRef() && r.ID == id {
			n++
		}
	}
	return n
}

// IsNotFound reports whether err means a missing document or node.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrGraphNotFound) || errors.Is(err, domain.ErrNodeNotFound)
}
