package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/runargs"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of runargs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "runargs version %s\n", strings.TrimSpace(runargs.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
