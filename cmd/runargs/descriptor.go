package main

import (
	"github.com/aretw0/runargs/internal/config"
	"github.com/spf13/cobra"
)

// descriptorPath returns --descriptor, falling back to the project file's descriptor.
func descriptorPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("descriptor"); path != "" {
		return path, nil
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.Resolve(cfg.Descriptor), nil
}
