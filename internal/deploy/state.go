package deploy

import (
	"bytes"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// State is a managed file's condition, derived at probe time from what is
// on disk. It is never stored; the backup files themselves are the only
// durable state between invocations.
type State string

const (
	StateAbsent          State = messages.StatusLabelAbsent
	StateOriginal        State = messages.StatusLabelOriginal
	StatePatched         State = messages.StatusLabelPatched
	StatePatchedNoBackup State = messages.StatusLabelPatchedNoBackup
	// StateBackupOnly means a backup exists with no target, which only
	// happens through out-of-band edits. Uninstall still restores it.
	StateBackupOnly State = messages.StatusLabelBackupOnly
)

// FileStatus pairs a managed file name with its derived state.
type FileStatus struct {
	Name  string
	State State
}

// Status probes every managed file and reports its derived state. It is
// read-only: no preconditions, no mutations, no service interaction.
func (m *Manager) Status() ([]FileStatus, error) {
	statuses := make([]FileStatus, 0, len(m.files))
	for _, f := range m.files {
		state, err := m.fileState(f)
		if err != nil {
			return nil, &FileOpError{Op: messages.DeployOpProbe, Name: f.Name, Err: err}
		}
		statuses = append(statuses, FileStatus{Name: f.Name, State: state})
	}
	return statuses, nil
}

// fileState derives a file's state from target and backup presence.
func (m *Manager) fileState(f ManagedFile) (State, error) {
	targetExists, err := m.sys.Exists(f.TargetPath)
	if err != nil {
		return "", err
	}
	backupExists, err := m.sys.Exists(f.BackupPath)
	if err != nil {
		return "", err
	}
	switch {
	case targetExists && backupExists:
		return StatePatched, nil
	case !targetExists && backupExists:
		return StateBackupOnly, nil
	case !targetExists:
		return StateAbsent, nil
	}
	// Target only. Presence alone cannot tell an untouched original from a
	// patched file that never had an original to back up, so compare the
	// target against the canonical source content.
	source, err := m.sys.ReadFile(f.SourcePath)
	if err != nil {
		return "", err
	}
	target, err := m.sys.ReadFile(f.TargetPath)
	if err != nil {
		return "", err
	}
	if bytes.Equal(source, target) {
		return StatePatchedNoBackup, nil
	}
	return StateOriginal, nil
}
