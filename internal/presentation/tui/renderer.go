package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const defaultWidth = 100

// NewRenderer returns a function that renders markdown using glamour,
// wrapped to width columns (zero picks the default).
func NewRenderer(width int) func(string) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}

// Print writes markdown to w, styled when w is a terminal and verbatim otherwise.
func Print(w io.Writer, markdown string) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, markdown)
		return err
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = defaultWidth
	}
	out, err := NewRenderer(width)(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
