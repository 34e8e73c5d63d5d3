package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/privilege"
)

// ManagedFile is one file under dual-location management: a canonical copy
// in the source directory and a deployed copy in the host plugin directory.
type ManagedFile struct {
	Name       string
	SourcePath string
	TargetPath string
	BackupPath string
}

// BuildFiles constructs the managed file set from configured names and
// directories. The backup path is the target path plus the backup suffix.
func BuildFiles(names []string, sourceDir string, targetDir string, backupSuffix string) []ManagedFile {
	files := make([]ManagedFile, 0, len(names))
	for _, name := range names {
		target := filepath.Join(targetDir, name)
		files = append(files, ManagedFile{
			Name:       name,
			SourcePath: filepath.Join(sourceDir, name),
			TargetPath: target,
			BackupPath: target + backupSuffix,
		})
	}
	return files
}

// ServiceController is the slice of the service client the manager uses.
type ServiceController interface {
	IsActive(ctx context.Context, name string) (bool, error)
	Restart(ctx context.Context, name string) error
}

// Options configures a Manager.
type Options struct {
	Files       []ManagedFile
	TargetDir   string
	ServiceName string
	System      System
	Controller  ServiceController
	// IsPrivileged overrides the root-privilege probe; nil uses the real one.
	IsPrivileged func() bool
	// Out receives per-step progress lines; nil means os.Stdout.
	Out io.Writer
}

// Manager drives managed files between their original, patched, and absent
// states. File operations run strictly in sequence; the first failure aborts
// the rest of the list and completed transitions stand.
type Manager struct {
	files        []ManagedFile
	targetDir    string
	service      string
	sys          System
	ctl          ServiceController
	isPrivileged func() bool
	out          io.Writer
}

// NewManager validates opts and builds a Manager.
func NewManager(opts Options) (*Manager, error) {
	if len(opts.Files) == 0 {
		return nil, errors.New(messages.DeployFilesRequired)
	}
	if opts.TargetDir == "" {
		return nil, errors.New(messages.DeployTargetDirRequired)
	}
	if opts.ServiceName == "" {
		return nil, errors.New(messages.DeployServiceRequired)
	}
	if opts.System == nil {
		return nil, errors.New(messages.DeploySystemRequired)
	}
	if opts.Controller == nil {
		return nil, errors.New(messages.DeployControllerRequired)
	}
	isPrivileged := opts.IsPrivileged
	if isPrivileged == nil {
		isPrivileged = privilege.IsRoot
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Manager{
		files:        opts.Files,
		targetDir:    opts.TargetDir,
		service:      opts.ServiceName,
		sys:          opts.System,
		ctl:          opts.Controller,
		isPrivileged: isPrivileged,
		out:          out,
	}, nil
}

// preflight checks every precondition before any file is touched, so a
// failure here leaves the target directory untouched.
func (m *Manager) preflight(ctx context.Context) error {
	if m.isPrivileged() {
		return ErrRootUser
	}
	active, err := m.ctl.IsActive(ctx, m.service)
	if err != nil {
		return fmt.Errorf(messages.DeployServiceProbeFmt, m.service, err)
	}
	if !active {
		return &ServiceNotActiveError{Service: m.service}
	}
	if err := m.sys.Writable(m.targetDir); err != nil {
		return fmt.Errorf(messages.DeployTargetDirFmt, m.targetDir, err)
	}
	return nil
}

// Install deploys every managed file in list order: whatever occupies the
// target moves aside to the backup path, then the source copy replaces it.
// An existing backup is clobbered silently, so installing over an already
// patched file records the patched content as the new backup. After a fully
// successful pass the host service restarts exactly once.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.preflight(ctx); err != nil {
		return err
	}
	for _, f := range m.files {
		exists, err := m.sys.Exists(f.TargetPath)
		if err != nil {
			return &FileOpError{Op: messages.DeployOpProbe, Name: f.Name, Err: err}
		}
		if exists {
			if err := m.sys.Move(f.TargetPath, f.BackupPath); err != nil {
				return &FileOpError{Op: messages.DeployOpBackup, Name: f.Name, Err: err}
			}
			fmt.Fprintf(m.out, messages.DeployBackedUpFmt, f.Name, filepath.Base(f.BackupPath))
		}
		if err := m.sys.Copy(f.SourcePath, f.TargetPath); err != nil {
			return &FileOpError{Op: messages.DeployOpInstall, Name: f.Name, Err: err}
		}
		fmt.Fprintf(m.out, messages.DeployInstalledFmt, f.Name)
	}
	return m.restart(ctx)
}

// Uninstall reverses Install for every managed file in list order: a backup
// moves back over the target, consuming itself; with no backup the target is
// simply removed, and a target that is already absent is a no-op. The host
// service restarts once afterwards.
func (m *Manager) Uninstall(ctx context.Context) error {
	if err := m.preflight(ctx); err != nil {
		return err
	}
	for _, f := range m.files {
		backupExists, err := m.sys.Exists(f.BackupPath)
		if err != nil {
			return &FileOpError{Op: messages.DeployOpProbe, Name: f.Name, Err: err}
		}
		if backupExists {
			if err := m.sys.Move(f.BackupPath, f.TargetPath); err != nil {
				return &FileOpError{Op: messages.DeployOpRestore, Name: f.Name, Err: err}
			}
			fmt.Fprintf(m.out, messages.DeployRestoredFmt, f.Name)
			continue
		}
		targetExists, err := m.sys.Exists(f.TargetPath)
		if err != nil {
			return &FileOpError{Op: messages.DeployOpProbe, Name: f.Name, Err: err}
		}
		if !targetExists {
			fmt.Fprintf(m.out, messages.DeploySkippedFmt, f.Name)
			continue
		}
		if err := m.sys.Remove(f.TargetPath); err != nil {
			return &FileOpError{Op: messages.DeployOpRemove, Name: f.Name, Err: err}
		}
		fmt.Fprintf(m.out, messages.DeployRemovedFmt, f.Name)
	}
	return m.restart(ctx)
}

// restart triggers the single host-service restart for this invocation.
// File changes made before a restart failure are not rolled back.
func (m *Manager) restart(ctx context.Context) error {
	if err := m.ctl.Restart(ctx, m.service); err != nil {
		return &RestartError{Service: m.service, Err: err}
	}
	fmt.Fprintf(m.out, messages.DeployRestartedFmt, m.service)
	return nil
}
