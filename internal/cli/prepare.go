package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/runargs"
	"github.com/aretw0/runargs/internal/config"
	"github.com/aretw0/runargs/internal/metrics"
	"github.com/aretw0/runargs/internal/presentation/tui"
	"github.com/aretw0/runargs/pkg/adapters/userdev"
)

// PrepareOptions contains all the configuration for the prepare command.
type PrepareOptions struct {
	ConfigPath string
	// Runs selects runs by name; empty prepares every declared run.
	Runs []string
	// MetricsFile, when set, receives the Prometheus textfile after the last run.
	MetricsFile string
	Debug       bool
	Out         io.Writer
}

// Prepare writes the argument files of every selected run.
// A failing run does not stop the others; all failures are returned together.
func Prepare(ctx context.Context, opts PrepareOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	logger := createLogger(opts.Debug)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	runs, err := cfg.Select(opts.Runs...)
	if err != nil {
		return err
	}

	descriptorPath := cfg.Resolve(cfg.Descriptor)
	descriptors, err := userdev.Load(descriptorPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded userdev config", "path", descriptorPath, "run_types", descriptors.Len())

	rec := metrics.New()
	stop := rec.StartTimer()
	writer := runargs.New(
		runargs.WithLogger(logger),
		runargs.WithHooks(rec.Hooks()),
	)
	status := tui.NewStatus(opts.Out)

	var errs []error
	for _, r := range runs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		req, err := cfg.Request(r, descriptors)
		if err != nil {
			status.Failed(r.Name, err)
			errs = append(errs, fmt.Errorf("run %q: %w", r.Name, err))
			continue
		}
		res, err := writer.WriteRunArguments(ctx, req)
		if err != nil {
			status.Failed(r.Name, err)
			errs = append(errs, fmt.Errorf("run %q: %w", r.Name, err))
			continue
		}
		status.Prepared(r.Name, describe(res))
	}
	stop()

	if opts.MetricsFile != "" {
		if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

func describe(res *runargs.Result) string {
	s := fmt.Sprintf("(%s, %s) %d JVM args -> %s", res.RunType, res.Variant, res.JVMArguments, res.JVMArgumentsFile)
	if res.ProgramArgumentsFile != "" {
		s += fmt.Sprintf(", %d program args -> %s", res.ProgramArguments, res.ProgramArgumentsFile)
	}
	if res.Log4jConfigFile != "" {
		s += ", log4j2 -> " + res.Log4jConfigFile
	}
	return s
}
