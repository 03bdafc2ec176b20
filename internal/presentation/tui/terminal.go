package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 100

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or DefaultWidth.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// MarkdownRenderer picks glamour for terminals and plain markdown otherwise.
func MarkdownRenderer(w io.Writer) func(string) (string, error) {
	if !IsTerminal(w) {
		return Plain
	}
	render, err := NewRenderer(Width(w))
	if err != nil {
		return Plain
	}
	return render
}
