package main

import (
	"github.com/spf13/cobra"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/config"
)

// runInstall deploys the managed files and restarts the host service.
func runInstall(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	mgr, err := newManager(cmd, cfg)
	if err != nil {
		return err
	}
	return mgr.Install(cmd.Context())
}
