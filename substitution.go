package runargs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/runargs/pkg/argfile"
	"github.com/aretw0/runargs/pkg/domain"
)

// substitutions holds the resolved placeholder values for one call.
// A token missing from values has no value and fails when used.
type substitutions struct {
	values map[string]string
}

var placeholderFields = map[string]string{
	domain.PlaceholderModules:         domain.FieldModules,
	domain.PlaceholderLegacyClasspath: domain.FieldLegacyClasspath,
	domain.PlaceholderAssetsRoot:      domain.FieldAssetsRoot,
	domain.PlaceholderAssetIndex:      domain.FieldAssetIndex,
}

func newSubstitutions(req *Request) (*substitutions, error) {
	s := &substitutions{values: make(map[string]string, len(placeholderFields))}

	modules := make([]string, len(req.Modules))
	for i, m := range req.Modules {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, fmt.Errorf("invalid module path %q: %w", m, err)
		}
		modules[i] = abs
	}
	s.values[domain.PlaceholderModules] = strings.Join(modules, string(os.PathListSeparator))

	if req.LegacyClasspathFile != "" {
		abs, err := filepath.Abs(req.LegacyClasspathFile)
		if err != nil {
			return nil, fmt.Errorf("invalid legacy classpath file: %w", err)
		}
		s.values[domain.PlaceholderLegacyClasspath] = abs
	}

	meta, err := loadAssets(req)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		if meta.AssetsRoot != "" {
			s.values[domain.PlaceholderAssetsRoot] = meta.AssetsRoot
		}
		if meta.AssetIndex != "" {
			s.values[domain.PlaceholderAssetIndex] = meta.AssetIndex
		}
	}
	return s, nil
}

// substitute replaces template when it is exactly one of the given tokens.
// Other templates pass through unchanged.
func (s *substitutions) substitute(template string, tokens ...string) (string, error) {
	for _, token := range tokens {
		if template != token {
			continue
		}
		v, ok := s.values[token]
		if !ok {
			return "", domain.MissingValue(placeholderFields[token], token)
		}
		return v, nil
	}
	return template, nil
}

func jvmLines(run domain.RunDescriptor, req *Request, s *substitutions, log4jPath string) ([]string, error) {
	var lines []string

	for _, tmpl := range run.JVMArgs {
		arg, err := s.substitute(tmpl, domain.PlaceholderModules)
		if err != nil {
			return nil, err
		}
		lines = append(lines, argfile.Escape(arg))
	}

	if len(req.JVMArguments) > 0 {
		if req.Variant.SectionComments {
			lines = append(lines, "", "# User JVM Arguments")
		}
		lines = append(lines, argfile.EscapeAll(req.JVMArguments)...)
		if req.Variant.SectionComments {
			lines = append(lines, "")
		}
	}

	if log4jPath != "" {
		lines = append(lines, systemProperty("log4j2.configurationFile", log4jPath))
	}

	for _, prop := range run.Props.Entries() {
		value, err := s.substitute(prop.Value, domain.PlaceholderLegacyClasspath)
		if err != nil {
			return nil, err
		}
		lines = append(lines, systemProperty(prop.Key, value))
	}

	for _, prop := range req.SystemProperties.Entries() {
		lines = append(lines, systemProperty(prop.Key, prop.Value))
	}

	return lines, nil
}

func programLines(run domain.RunDescriptor, req *Request, s *substitutions) ([]string, error) {
	var lines []string
	comments := req.Variant.SectionComments

	if req.Variant.EmitsMainClass && run.MainClass != "" {
		if comments {
			lines = append(lines, "# Main Class")
		}
		lines = append(lines, run.MainClass)
		if comments {
			lines = append(lines, "")
		}
	}

	if comments {
		lines = append(lines, "# Run-Type Program Arguments")
	}
	for i := 0; i < len(run.Args); i++ {
		tmpl := run.Args[i]
		if req.Variant.RedirectTarget != "" && tmpl == domain.TargetFlag {
			// The descriptor's own target value is replaced, not emitted.
			i++
			lines = append(lines, argfile.Escape(domain.TargetFlag), argfile.Escape(req.Variant.RedirectTarget))
			continue
		}
		arg, err := s.substitute(tmpl, domain.PlaceholderAssetsRoot, domain.PlaceholderAssetIndex)
		if err != nil {
			return nil, err
		}
		lines = append(lines, argfile.Escape(arg))
	}

	if len(req.ProgramArguments) > 0 {
		if comments {
			lines = append(lines, "", "# User Supplied Program Arguments")
		}
		lines = append(lines, argfile.EscapeAll(req.ProgramArguments)...)
	}

	return lines, nil
}

func systemProperty(key, value string) string {
	return argfile.Escape("-D" + key + "=" + value)
}

// countArguments counts lines that carry an argument (not blank, not a comment).
func countArguments(lines []string) int {
	n := 0
	for _, l := range lines {
		if l != "" && !strings.HasPrefix(l, "#") {
			n++
		}
	}
	return n
}
