package messages

// Deployment manager messages: preconditions, per-file progress, and errors.
const (
	// DeployRootUser is returned when the tool itself runs with root privileges.
	// Only the service restart escalates, and it does so on its own.
	DeployRootUser = "refusing to run as root; run as the normal printer user (the service restart elevates on its own)"

	// DeployServiceNotActiveFmt reports a failed host-service presence probe.
	DeployServiceNotActiveFmt = "service %s is not active; is Klipper installed and running?"
	DeployServiceProbeFmt     = "probe service %s: %w"

	// DeployTargetDirFmt reports an unusable target directory.
	DeployTargetDirFmt = "target directory %s: %w"

	// DeployFileOpFmt carries the failing operation, file name, and cause.
	DeployFileOpFmt = "%s %s: %v"

	// DeployRestartFailedFmt reports a restart failure; file changes stand.
	DeployRestartFailedFmt = "restart %s (deployed files are left in place): %v"

	// DeployBackedUpFmt is the per-file backup progress line.
	DeployBackedUpFmt  = "backed up %s -> %s\n"
	DeployInstalledFmt = "installed %s\n"
	DeployRestoredFmt  = "restored %s from backup\n"
	DeployRemovedFmt   = "removed %s\n"
	DeploySkippedFmt   = "%s not present, nothing to do\n"
	DeployRestartedFmt = "restarted %s\n"

	// Manager option validation.
	DeployFilesRequired      = "deploy: at least one managed file is required"
	DeployTargetDirRequired  = "deploy: target directory is required"
	DeployServiceRequired    = "deploy: service name is required"
	DeploySystemRequired     = "deploy: filesystem is required"
	DeployControllerRequired = "deploy: service controller is required"

	// Operation names embedded in file operation errors.
	DeployOpProbe   = "probe"
	DeployOpBackup  = "back up"
	DeployOpInstall = "install"
	DeployOpRestore = "restore"
	DeployOpRemove  = "remove"
)
