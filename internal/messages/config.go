package messages

// Config loading and validation messages.
const (
	// ConfigReadFileFmt reports a config file that exists but cannot be read or parsed.
	ConfigReadFileFmt    = "read config %s: %w"
	ConfigInvalidTOMLFmt = "invalid config %s: %w"

	// ConfigNoFilesFmt rejects an empty managed file list.
	ConfigNoFilesFmt         = "%s: files must list at least one managed file"
	ConfigBadFileNameFmt     = "%s: file name %q must be a bare file name"
	ConfigMissingServiceFmt  = "%s: service must not be empty"
	ConfigMissingTargetFmt   = "%s: target_dir must not be empty"
	ConfigMissingSourceFmt   = "%s: source_dir must not be empty"
	ConfigBadBackupSuffixFmt = "%s: backup_suffix %q must begin with a dot"

	// ConfigExpandPathFmt reports a home-directory expansion failure.
	ConfigExpandPathFmt = "expand %s: %w"
)
