package main

import (
	"fmt"
	"os"

	"github.com/aretw0/runargs/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runargs",
	Short: "runargs writes JVM and program argument files for modded game runs",
	Long: `runargs reads the userdev run configuration published by the mod loader and writes
argument files that a java launcher or an IDE can start the game with.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Project file declaring the runs")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
