package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []termenv.Style{
		termenv.String("   __ ___      ___ __   __ _| | __").Foreground(p.Color("#818cf8")),
		termenv.String("  / _` \\ \\ /\\ / / '_ \\ / _` | |/ /").Foreground(p.Color("#a78bfa")),
		termenv.String(" | (_| |\\ V  V /| |_) | (_| |   < ").Foreground(p.Color("#e879f9")),
		termenv.String("  \\__,_| \\_/\\_/ | .__/ \\__,_|_|\\_\\").Foreground(p.Color("#f472b6")),
		termenv.String("                |_|               ").Foreground(p.Color("#fb7185")),
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, termenv.String("  builder "+version).Faint())
	fmt.Fprintln(w)
}
