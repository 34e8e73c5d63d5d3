package deploy

import (
	"errors"
	"fmt"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// ErrRootUser is returned when the tool itself runs with root privileges.
var ErrRootUser = errors.New(messages.DeployRootUser)

// ServiceNotActiveError reports a negative host-service presence probe.
type ServiceNotActiveError struct {
	Service string
}

func (e *ServiceNotActiveError) Error() string {
	return fmt.Sprintf(messages.DeployServiceNotActiveFmt, e.Service)
}

// FileOpError reports a failed file operation on one managed file. Earlier
// files in the run keep whatever state they reached; nothing is rolled back.
type FileOpError struct {
	Op   string
	Name string
	Err  error
}

func (e *FileOpError) Error() string {
	return fmt.Sprintf(messages.DeployFileOpFmt, e.Op, e.Name, e.Err)
}

func (e *FileOpError) Unwrap() error {
	return e.Err
}

// RestartError reports a failed service restart after a successful file
// pass. The file changes stand; service lifecycle is a separate failure
// domain from file management.
type RestartError struct {
	Service string
	Err     error
}

func (e *RestartError) Error() string {
	return fmt.Sprintf(messages.DeployRestartFailedFmt, e.Service, e.Err)
}

func (e *RestartError) Unwrap() error {
	return e.Err
}
