package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status prints one line per prepared or failed run, colored when w is a terminal.
type Status struct {
	out *termenv.Output
}

// NewStatus creates a Status writing to w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// Prepared reports a run whose files were written.
func (s *Status) Prepared(name, detail string) {
	mark := s.out.String("✔").Foreground(s.out.Color("#22c55e")).Bold()
	fmt.Fprintf(s.out, "%s %s %s\n", mark, name, s.out.String(detail).Faint())
}

// Failed reports a run that could not be prepared.
func (s *Status) Failed(name string, err error) {
	mark := s.out.String("✘").Foreground(s.out.Color("#ef4444")).Bold()
	fmt.Fprintf(s.out, "%s %s: %v\n", mark, name, err)
}
