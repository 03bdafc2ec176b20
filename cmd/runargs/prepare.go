package main

import (
	"context"

	"github.com/aretw0/runargs/internal/cli"
	"github.com/spf13/cobra"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [run...]",
	Short: "Write the argument files of the configured runs",
	Long: `Prepares every run declared in the project file, or only the named ones.
A run that fails does not stop the others; the command exits non-zero if any failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Prepare(ctx, cli.PrepareOptions{
			ConfigPath:  configPath,
			Runs:        args,
			MetricsFile: metricsFile,
			Debug:       debug,
			Out:         cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(prepareCmd)
	prepareCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file (node exporter textfile format)")
}
