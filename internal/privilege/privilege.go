package privilege

import "golang.org/x/sys/unix"

var geteuid = unix.Geteuid

// IsRoot reports whether the current process runs with root privileges.
// The deployment preconditions reject root: only the service restart needs
// elevation, and the service client escalates for that single call.
func IsRoot() bool {
	return geteuid() == 0
}
