package main

import (
	"github.com/aretw0/runargs/internal/cli"
	"github.com/spf13/cobra"
)

var argfileCmd = &cobra.Command{
	Use:   "argfile <file>",
	Short: "Decode an argument file, printing one argument per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.DecodeArgFile(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(argfileCmd)
}
