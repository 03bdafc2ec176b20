package main

import (
	"fmt"

	"github.com/aretw0/runargs/internal/cli"
	"github.com/spf13/cobra"
)

var log4jCmd = &cobra.Command{
	Use:   "log4j <path>",
	Short: "Write a log4j2 configuration",
	Long:  `Writes a log4j2 XML configuration at path. When path is a directory, log4j2.xml is created inside it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		path, err := cli.WriteLog4j(args[0], level)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(log4jCmd)
	log4jCmd.Flags().String("level", "info", "Minimum level: error, warn, info, debug or trace")
}
