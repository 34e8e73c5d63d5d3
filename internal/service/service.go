package service

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// Controller provides the host-service operations the deployment needs.
type Controller interface {
	// IsActive reports whether the named systemd service is running.
	IsActive(ctx context.Context, name string) (bool, error)
	// Restart restarts the named service. Restarting requires elevated
	// privileges; the implementation handles the escalation.
	Restart(ctx context.Context, name string) error
}

// SystemctlClient implements Controller by shelling out to systemctl.
type SystemctlClient struct{}

// NewClient creates a new systemctl client.
func NewClient() *SystemctlClient {
	return &SystemctlClient{}
}

// IsActive probes the service with `systemctl is-active --quiet`.
// Exit code 0 means active. systemctl answers "inactive" with small non-zero
// exit codes; only codes outside that range are treated as probe failures.
func (c *SystemctlClient) IsActive(ctx context.Context, name string) (bool, error) {
	cmd := exec.CommandContext(ctx, "systemctl", "is-active", "--quiet", name)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 1 && code <= 4 {
			return false, nil
		}
	}
	return false, fmt.Errorf(messages.ServiceProbeFailedFmt, name, err)
}

// Restart restarts the service via `sudo systemctl restart`. This is the one
// step that needs root; the invoking user must be allowed to sudo systemctl.
func (c *SystemctlClient) Restart(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, "sudo", "systemctl", "restart", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf(messages.ServiceRestartFailedFmt, name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
