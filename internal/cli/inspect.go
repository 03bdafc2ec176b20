package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/runargs/internal/presentation/tui"
	"github.com/aretw0/runargs/pkg/adapters/userdev"
)

// ListRuns prints the run types published by the userdev config at path.
func ListRuns(w io.Writer, path string) error {
	set, err := userdev.Load(path)
	if err != nil {
		return err
	}
	return render(w, tui.RunsMarkdown(set))
}

// ShowRun prints one run type of the userdev config at path.
func ShowRun(w io.Writer, path, name string) error {
	set, err := userdev.Load(path)
	if err != nil {
		return err
	}
	run, err := set.Lookup(name)
	if err != nil {
		return err
	}
	return render(w, tui.RunMarkdown(run))
}

func render(w io.Writer, markdown string) error {
	out, err := tui.MarkdownRenderer(w)(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
