package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/config"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/deploy"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/privilege"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/service"
)

var isPrivileged = privilege.IsRoot

// newRootCmd builds the CLI. The action is a single optional positional
// token resolved here at the entry point; with no token, install runs.
func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := messages.ActionInstall
			if len(args) > 0 {
				action = args[0]
			}
			switch action {
			case messages.ActionInstall:
				return runInstall(cmd, configPath)
			case messages.ActionUninstall:
				return runUninstall(cmd, configPath)
			case messages.ActionStatus:
				return runStatus(cmd, configPath)
			default:
				// Unknown verbs touch nothing: usage and a non-zero exit.
				_ = cmd.Usage()
				return fmt.Errorf(messages.UnknownActionFmt, action)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, messages.FlagConfig)
	return cmd
}

// newManager wires a deployment manager from config with the real
// filesystem and the systemctl service client.
func newManager(cmd *cobra.Command, cfg *config.Config) (*deploy.Manager, error) {
	return deploy.NewManager(deploy.Options{
		Files:        deploy.BuildFiles(cfg.Files, cfg.SourceDir, cfg.TargetDir, cfg.BackupSuffix),
		TargetDir:    cfg.TargetDir,
		ServiceName:  cfg.Service,
		System:       deploy.RealSystem{},
		Controller:   service.NewClient(),
		IsPrivileged: isPrivileged,
		Out:          cmd.OutOrStdout(),
	})
}
