package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/config"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/deploy"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// runStatus prints each managed file's derived state without mutating
// anything or touching the host service.
func runStatus(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	mgr, err := newManager(cmd, cfg)
	if err != nil {
		return err
	}
	statuses, err := mgr.Status()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, messages.StatusHeaderFmt, cfg.TargetDir)
	for _, s := range statuses {
		_, _ = fmt.Fprintf(out, messages.StatusLineFmt, s.Name, colorState(s.State))
	}
	return nil
}

func colorState(state deploy.State) string {
	switch state {
	case deploy.StatePatched, deploy.StatePatchedNoBackup:
		return color.GreenString(string(state))
	case deploy.StateOriginal, deploy.StateAbsent:
		return color.YellowString(string(state))
	default:
		return color.RedString(string(state))
	}
}
