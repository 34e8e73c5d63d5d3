package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command usage line.
	RootUse = "kft [install|uninstall|status]"
	// RootShort is the short description for the root command.
	RootShort = "Deploy the klipper-fan-tests patched plugin files"
	RootLong  = "Deploys the patched Klipper plugin files into the host Klipper installation,\n" +
		"backing up whatever they replace, and restarts the Klipper service.\n" +
		"With no action, install is assumed."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ActionInstall is the default action when none is given.
	ActionInstall   = "install"
	ActionUninstall = "uninstall"
	ActionStatus    = "status"

	// UnknownActionFmt reports an unrecognized action token.
	UnknownActionFmt = "unknown action %q (expected install, uninstall, or status)"

	// FlagConfig describes the --config flag.
	FlagConfig = "Path to the kft config file"

	// StatusHeaderFmt announces the status report for a target directory.
	StatusHeaderFmt = "Managed files in %s:\n"
	StatusLineFmt   = "  %-20s %s\n"

	StatusLabelPatched         = "patched"
	StatusLabelPatchedNoBackup = "patched (no backup)"
	StatusLabelOriginal        = "original"
	StatusLabelAbsent          = "absent"
	StatusLabelBackupOnly      = "backup only"
)
