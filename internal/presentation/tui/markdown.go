package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/runargs/pkg/domain"
)

// RunMarkdown describes a run descriptor as a markdown document.
func RunMarkdown(run domain.RunDescriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Run type `%s`\n\n", run.Name)

	if run.MainClass != "" {
		fmt.Fprintf(&sb, "**Main class:** `%s`\n\n", run.MainClass)
	}

	writeList(&sb, "JVM arguments", run.JVMArgs)
	writeList(&sb, "Program arguments", run.Args)
	writeTable(&sb, "System properties", run.Props)
	writeTable(&sb, "Environment", run.Env)

	return sb.String()
}

// RunsMarkdown lists the run types of a descriptor set.
func RunsMarkdown(set *domain.DescriptorSet) string {
	var sb strings.Builder
	sb.WriteString("# Available run types\n\n")
	for _, name := range set.Names() {
		run, _ := set.Lookup(name)
		if run.MainClass != "" {
			fmt.Fprintf(&sb, "- `%s` (%s)\n", name, run.MainClass)
		} else {
			fmt.Fprintf(&sb, "- `%s`\n", name)
		}
	}
	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	if len(items) == 0 {
		sb.WriteString("_none_\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(sb, "- `%s`\n", item)
	}
	sb.WriteString("\n")
}

func writeTable(sb *strings.Builder, title string, props domain.Properties) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	if props.Len() == 0 {
		sb.WriteString("_none_\n\n")
		return
	}
	sb.WriteString("| Key | Value |\n|---|---|\n")
	for _, p := range props.Entries() {
		fmt.Fprintf(sb, "| `%s` | `%s` |\n", p.Key, escapeCell(p.Value))
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
