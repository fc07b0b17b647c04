package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

// Mask replaces every redacted value.
const Mask = "***"

type redactMiddleware struct {
	next     ports.GraphStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a middleware that masks, on save, graph context
// values whose keys match any pattern, plus every provider API key. It is meant
// for stores that publish graphs (exports, shared catalogs).
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.GraphStore) ports.GraphStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) Save(ctx context.Context, name string, g *domain.Graph) error {
	cloned, err := codec.Clone(g)
	if err != nil {
		return fmt.Errorf("failed to copy graph: %w", err)
	}

	maskMap(cloned.Context, m.patterns)
	for _, key := range apiKeys(cloned) {
		if *key != "" {
			*key = Mask
		}
	}

	return m.next.Save(ctx, name, cloned)
}

func (m *redactMiddleware) Load(ctx context.Context, name string) (*domain.Graph, error) {
	return m.next.Load(ctx, name)
}

func (m *redactMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		if matchAny(k, patterns) {
			m[k] = Mask
			continue
		}
		if subMap, ok := v.(map[string]any); ok {
			maskMap(subMap, patterns)
		}
	}
}

func matchAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
