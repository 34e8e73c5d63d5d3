package messages

// Service client messages for systemctl interactions.
const (
	// ServiceProbeFailedFmt reports that the is-active probe itself failed,
	// as opposed to answering "inactive".
	ServiceProbeFailedFmt = "systemctl is-active %s: %w"

	// ServiceRestartFailedFmt reports a failed restart with captured output.
	ServiceRestartFailedFmt = "systemctl restart %s: %w: %s"
)
