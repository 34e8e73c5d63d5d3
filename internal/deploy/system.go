package deploy

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// System abstracts the filesystem operations the deployment needs.
// The manager never caches filesystem state: every run re-probes through
// this interface, so out-of-band edits to the target directory between
// runs are picked up.
type System interface {
	Exists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	Copy(src string, dst string) error
	Move(oldpath string, newpath string) error
	Remove(path string) error
	Writable(path string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Exists reports whether path exists.
func (RealSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Copy copies src to dst, overwriting dst and preserving the source
// file mode.
func (RealSystem) Copy(src string, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}

// Move renames (moves) oldpath to newpath, overwriting newpath.
func (RealSystem) Move(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove deletes path. A path that does not exist is a no-op, not an error.
func (RealSystem) Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Writable reports whether the current user can write to path.
func (RealSystem) Writable(path string) error {
	return unix.Access(path, unix.W_OK)
}
