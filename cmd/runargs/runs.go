package main

import (
	"github.com/aretw0/runargs/internal/cli"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the run types published by a userdev config",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := descriptorPath(cmd)
		if err != nil {
			return err
		}
		return cli.ListRuns(cmd.OutOrStdout(), path)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <run-type>",
	Short: "Describe one run type of a userdev config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := descriptorPath(cmd)
		if err != nil {
			return err
		}
		return cli.ShowRun(cmd.OutOrStdout(), path, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runsCmd, showCmd)
	for _, c := range []*cobra.Command{runsCmd, showCmd} {
		c.Flags().String("descriptor", "", "Userdev config file (defaults to the one named in --config)")
	}
}
