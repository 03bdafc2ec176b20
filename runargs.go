package runargs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/runargs/internal/fsutil"
	"github.com/aretw0/runargs/internal/logging"
	"github.com/aretw0/runargs/pkg/adapters/assets"
	"github.com/aretw0/runargs/pkg/adapters/userdev"
	"github.com/aretw0/runargs/pkg/domain"
	"github.com/aretw0/runargs/pkg/log4j"
)

// Writer turns a run descriptor and the caller's overrides into argument files.
// It holds no per-run state; one Writer can serve any number of requests.
type Writer struct {
	logger *slog.Logger
	hooks  Hooks
}

// Hooks are called after every WriteRunArguments call. Either may be nil.
type Hooks struct {
	OnPrepared func(ctx context.Context, res *Result)
	OnFailed   func(ctx context.Context, req *Request, err error)
}

// Option defines a functional option for configuring the Writer.
type Option func(*Writer)

// WithLogger sets a custom structured logger for the writer.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(w *Writer) {
		w.hooks = hooks
	}
}

// New creates a Writer.
func New(opts ...Option) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	return w
}

// Request carries every resolved input for one preparation.
type Request struct {
	// RunName selects the run type. Ignored when the variant fixes one.
	RunName string
	Variant domain.Variant

	// RunDirectory is the game's working directory. It is created if missing.
	RunDirectory string

	// Descriptors takes precedence over DescriptorFile.
	Descriptors    *domain.DescriptorSet
	DescriptorFile string

	// Modules are joined for {modules}, in this order.
	Modules             []string
	LegacyClasspathFile string

	// Assets takes precedence over AssetPropertiesFile.
	Assets              *domain.AssetMetadata
	AssetPropertiesFile string

	JVMArguments     []string
	ProgramArguments []string
	SystemProperties domain.Properties
	LogLevel         domain.Level

	JVMArgumentsFile     string
	ProgramArgumentsFile string // unused by combined variants
	Log4jConfigFile      string // empty: no log4j configuration (unless the variant defaults one)
}

// Result describes what a successful call wrote.
type Result struct {
	RunType              string
	Variant              string
	JVMArgumentsFile     string
	ProgramArgumentsFile string
	Log4jConfigFile      string
	JVMArguments         int
	ProgramArguments     int
}

// WriteRunArguments prepares the run described by req.
// Configuration mistakes are returned as *domain.ConfigurationError; I/O failures are wrapped
// and returned as-is. Outputs are replaced atomically, so a failed call leaves no partial file.
func (w *Writer) WriteRunArguments(ctx context.Context, req Request) (*Result, error) {
	res, err := w.writeRunArguments(ctx, &req)
	if err != nil {
		w.logger.Debug("run preparation failed", "run", req.RunName, "variant", req.Variant.Name, "error", err)
		if w.hooks.OnFailed != nil {
			w.hooks.OnFailed(ctx, &req, err)
		}
		return nil, err
	}
	w.logger.Debug("run prepared",
		"run", res.RunType,
		"variant", res.Variant,
		"jvm_args_file", res.JVMArgumentsFile,
		"program_args_file", res.ProgramArgumentsFile,
	)
	if w.hooks.OnPrepared != nil {
		w.hooks.OnPrepared(ctx, res)
	}
	return res, nil
}

func (w *Writer) writeRunArguments(ctx context.Context, req *Request) (*Result, error) {
	if req.Variant.Name == "" {
		req.Variant = domain.VariantRun
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	// IDEs refuse to start a run configuration whose working directory does not exist.
	if err := os.MkdirAll(req.RunDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	descriptors := req.Descriptors
	if descriptors == nil {
		var err error
		if descriptors, err = userdev.Load(req.DescriptorFile); err != nil {
			return nil, err
		}
	}

	runType := req.Variant.RunType(req.RunName)
	run, err := descriptors.Lookup(runType)
	if err != nil {
		return nil, err
	}

	subst, err := newSubstitutions(req)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunType:          runType,
		Variant:          req.Variant.Name,
		JVMArgumentsFile: req.JVMArgumentsFile,
	}

	log4jPath, err := log4jConfigPath(req)
	if err != nil {
		return nil, err
	}
	res.Log4jConfigFile = log4jPath

	jvm, err := jvmLines(run, req, subst, log4jPath)
	if err != nil {
		return nil, err
	}
	program, err := programLines(run, req, subst)
	if err != nil {
		return nil, err
	}
	res.JVMArguments = countArguments(jvm)
	res.ProgramArguments = countArguments(program)

	if req.Variant.Combined {
		jvm = append(append(jvm, ""), program...)
	}

	if log4jPath != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := log4j.Write(log4jPath, req.LogLevel); err != nil {
			return nil, err
		}
		w.logger.Debug("wrote log4j2 configuration", "path", log4jPath, "level", req.LogLevel)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fsutil.WriteLines(req.JVMArgumentsFile, jvm); err != nil {
		return nil, fmt.Errorf("failed to write JVM arguments: %w", err)
	}
	if req.Variant.Combined {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fsutil.WriteLines(req.ProgramArgumentsFile, program); err != nil {
		return nil, fmt.Errorf("failed to write program arguments: %w", err)
	}
	res.ProgramArgumentsFile = req.ProgramArgumentsFile
	return res, nil
}

func checkRequest(req *Request) error {
	var errs []error
	missing := func(field, reason string) {
		errs = append(errs, &domain.ConfigurationError{Field: field, Reason: reason, Err: domain.ErrInvalidConfig})
	}
	if req.RunDirectory == "" {
		missing("run_directory", "a run directory is required")
	}
	if req.Descriptors == nil && req.DescriptorFile == "" {
		missing("descriptor", "a userdev config file is required")
	}
	if req.Variant.FixedRunType == "" && req.RunName == "" {
		missing(domain.FieldRunType, "a run type is required")
	}
	if req.JVMArgumentsFile == "" {
		missing("jvm_arguments_file", "an output path for JVM arguments is required")
	}
	if !req.Variant.Combined && req.ProgramArgumentsFile == "" {
		missing("program_arguments_file", "an output path for program arguments is required")
	}
	if !req.Variant.UserArguments && hasUserArguments(req) {
		missing("user_arguments", fmt.Sprintf("the %s variant does not accept extra arguments or system properties", req.Variant.Name))
	}
	if req.LogLevel != "" {
		level, err := domain.ParseLevel(string(req.LogLevel))
		if err != nil {
			errs = append(errs, err)
		} else {
			req.LogLevel = level
		}
	}
	errs = append(errs, checkOutputs(req)...)
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return &domain.AggregateError{Errors: errs}
}

// checkOutputs rejects requests where two outputs would be written to the same file.
func checkOutputs(req *Request) []error {
	outputs := []struct{ field, path string }{
		{"jvm_arguments_file", req.JVMArgumentsFile},
	}
	if !req.Variant.Combined {
		outputs = append(outputs, struct{ field, path string }{"program_arguments_file", req.ProgramArgumentsFile})
	}
	if log4jPath := req.Log4jConfigFile; log4jPath != "" || (req.Variant.Log4jInRunDirectory && req.RunDirectory != "") {
		if log4jPath == "" {
			log4jPath = filepath.Join(req.RunDirectory, log4j.FileName)
		}
		outputs = append(outputs, struct{ field, path string }{"log4j_config_file", log4jPath})
	}

	var errs []error
	seen := make(map[string]string, len(outputs))
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		key := filepath.Clean(out.path)
		if a, err := filepath.Abs(key); err == nil {
			key = a
		}
		if other, dup := seen[key]; dup {
			errs = append(errs, &domain.ConfigurationError{
				Field:  out.field,
				Reason: fmt.Sprintf("%s is also used as %s", key, other),
				Err:    domain.ErrInvalidConfig,
			})
			continue
		}
		seen[key] = out.field
	}
	return errs
}

func hasUserArguments(req *Request) bool {
	return len(req.JVMArguments) > 0 || len(req.ProgramArguments) > 0 || req.SystemProperties.Len() > 0
}

// log4jConfigPath returns the absolute path of the requested log4j2 configuration, or "".
func log4jConfigPath(req *Request) (string, error) {
	path := req.Log4jConfigFile
	if path == "" && req.Variant.Log4jInRunDirectory {
		path = filepath.Join(req.RunDirectory, log4j.FileName)
	}
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid log4j2 configuration path: %w", err)
	}
	return abs, nil
}

// loadAssets returns the asset metadata for req, or nil when none was supplied.
func loadAssets(req *Request) (*domain.AssetMetadata, error) {
	if req.Assets != nil {
		return req.Assets, nil
	}
	if req.AssetPropertiesFile == "" {
		return nil, nil
	}
	meta, err := assets.Load(req.AssetPropertiesFile)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}
