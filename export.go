package awpak

import (
	"context"
	"fmt"

	"github.com/afuentesan/awpak-builder/internal/presentation/graph"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// Format names an export representation.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
)

// Formats lists the supported export formats.
func Formats() []Format { return []Format{FormatJSON, FormatMermaid, FormatDOT} }

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes g in format. Diagrams highlight unreachable nodes.
func Render(g *domain.Graph, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return codec.MarshalIndent(g, "  ")
	case FormatMermaid:
		return []byte(graph.GenerateMermaid(g, &graph.Overlay{Unreachable: validate.Unreachable(g)})), nil
	case FormatDOT:
		out, err := graph.GenerateDOT(g, &graph.Overlay{Unreachable: validate.Unreachable(g)})
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Export loads document name and renders it in format.
func (e *Editor) Export(ctx context.Context, name string, format Format) ([]byte, error) {
	g, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return Render(g, format)
}
