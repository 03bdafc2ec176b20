// Package config loads the project file that declares which runs to prepare.
//
// The file plays the role of the build script's run DSL: each entry names a run, picks the
// run type published by the userdev config, and carries the user's own arguments.
// YAML and JSON are both accepted.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/runargs/internal/naming"
	"github.com/aretw0/runargs/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "runargs.yaml"

// Defaults applied to fields left empty.
const (
	DefaultOutputDir     = "build/runargs"
	DefaultGameDirectory = "run"
)

// File is the parsed project configuration.
type File struct {
	Descriptor          string   `yaml:"descriptor"`
	AssetProperties     string   `yaml:"assetProperties"`
	LegacyClasspathFile string   `yaml:"legacyClasspathFile"`
	Modules             []string `yaml:"modules"`
	OutputDir           string   `yaml:"outputDir"`
	Runs                []Run    `yaml:"runs"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// Run declares one run to prepare.
type Run struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Variant       string `yaml:"variant"`
	GameDirectory string `yaml:"gameDirectory"`
	LogLevel      string `yaml:"logLevel"`
	Log4j         bool   `yaml:"log4j"`

	JVMArguments     []string          `yaml:"jvmArguments"`
	ProgramArguments []string          `yaml:"programArguments"`
	SystemProperties domain.Properties `yaml:"systemProperties"`

	JVMArgumentsFile     string `yaml:"jvmArgumentsFile"`
	ProgramArgumentsFile string `yaml:"programArgumentsFile"`
	Log4jConfigFile      string `yaml:"log4jConfigFile"`
}

// Load reads the config file at path. Relative paths inside it resolve against its directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}
	f.dir = abs
	return f, nil
}

// Parse decodes and validates a config document. Relative paths resolve against the
// working directory unless the File came from Load.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("", "config file is empty")
		}
		return nil, invalid("", err.Error())
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	var errs []error
	if f.Descriptor == "" {
		errs = append(errs, invalid("descriptor", "path to the userdev config is required"))
	}
	if len(f.Runs) == 0 {
		errs = append(errs, invalid("runs", "at least one run must be declared"))
	}

	// Default output files are named after the run's base name, so runs whose names only
	// differ in case or punctuation would overwrite each other's files.
	seen := make(map[string]string, len(f.Runs))
	for i, r := range f.Runs {
		field := fmt.Sprintf("runs[%d]", i)
		if r.Name == "" {
			errs = append(errs, invalid(field+".name", "run name is required"))
			continue
		}
		field = "runs." + r.Name
		base := strings.ToLower(naming.BaseName(r.Name))
		switch other, dup := seen[base]; {
		case base == "":
			errs = append(errs, invalid(field, "run name must contain a letter or digit"))
		case dup && other == r.Name:
			errs = append(errs, invalid(field, "duplicate run name"))
		case dup:
			errs = append(errs, invalid(field, fmt.Sprintf("run names %q and %q produce the same output file names", other, r.Name)))
		default:
			seen[base] = r.Name
		}

		variant, err := domain.ParseVariant(r.Variant)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := domain.ParseLevel(r.LogLevel); err != nil {
			errs = append(errs, err)
		}
		if !variant.UserArguments && (len(r.JVMArguments) > 0 || len(r.ProgramArguments) > 0 || r.SystemProperties.Len() > 0) {
			errs = append(errs, invalid(field, fmt.Sprintf("the %s variant does not accept extra arguments or system properties", variant.Name)))
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &domain.AggregateError{Errors: errs}
	}
}

// Names returns the declared run names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Runs))
	for i, r := range f.Runs {
		names[i] = r.Name
	}
	return names
}

// Select returns the runs with the given names, in the order asked. No names selects all runs.
func (f *File) Select(names ...string) ([]Run, error) {
	if len(names) == 0 {
		return f.Runs, nil
	}
	byName := make(map[string]Run, len(f.Runs))
	for _, r := range f.Runs {
		byName[r.Name] = r
	}
	out := make([]Run, 0, len(names))
	for _, name := range names {
		r, ok := byName[name]
		if !ok {
			return nil, &domain.ConfigurationError{
				Field:     "runs",
				Reason:    fmt.Sprintf("no run named %q is configured", name),
				Available: f.Names(),
				Err:       domain.ErrInvalidConfig,
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// Resolve makes path absolute against the config file's directory. Empty stays empty.
func (f *File) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if f.dir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(f.dir, path)
}

func invalid(field, reason string) error {
	return &domain.ConfigurationError{Field: field, Reason: reason, Err: domain.ErrInvalidConfig}
}
