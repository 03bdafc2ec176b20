package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/runargs"
	"github.com/aretw0/runargs/internal/metrics"
	"github.com/aretw0/runargs/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Hooks(t *testing.T) {
	rec := metrics.New()
	hooks := rec.Hooks()
	ctx := context.Background()

	hooks.OnPrepared(ctx, &runargs.Result{RunType: "client", Variant: "run", JVMArguments: 7, ProgramArguments: 3})
	hooks.OnPrepared(ctx, &runargs.Result{RunType: "client", Variant: "run", JVMArguments: 8, ProgramArguments: 3})
	hooks.OnFailed(ctx, &runargs.Request{}, &domain.ConfigurationError{Reason: "x"})

	expected := `
# HELP runargs_runs_prepared_total Total number of runs whose argument files were written
# TYPE runargs_runs_prepared_total counter
runargs_runs_prepared_total{run_type="client",variant="run"} 2
# HELP runargs_run_failures_total Total number of run preparations that failed
# TYPE runargs_run_failures_total counter
runargs_run_failures_total{reason="configuration"} 1
# HELP runargs_arguments Number of arguments written by the last preparation of a run type
# TYPE runargs_arguments gauge
runargs_arguments{kind="jvm",run_type="client"} 8
runargs_arguments{kind="program",run_type="client"} 3
`
	err := testutil.GatherAndCompare(rec.Gatherer(), strings.NewReader(expected),
		"runargs_runs_prepared_total", "runargs_run_failures_total", "runargs_arguments")
	assert.NoError(t, err)
}

func TestRecorder_Timer(t *testing.T) {
	rec := metrics.New()
	stop := rec.StartTimer()
	stop()

	count, err := testutil.GatherAndCount(rec.Gatherer(), "runargs_prepare_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.Hooks().OnFailed(context.Background(), &runargs.Request{}, errors.New("disk full"))

	path := filepath.Join(t.TempDir(), "runargs.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `runargs_run_failures_total{reason="io"} 1`)
}

func TestReason(t *testing.T) {
	assert.Equal(t, metrics.ReasonCanceled, metrics.Reason(context.Canceled))
	assert.Equal(t, metrics.ReasonConfiguration, metrics.Reason(fmt.Errorf("wrapped: %w", &domain.ConfigurationError{})))
	assert.Equal(t, metrics.ReasonIO, metrics.Reason(os.ErrPermission))
}
