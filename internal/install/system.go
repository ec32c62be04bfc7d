package install

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/newdaynewburner/dnsserverd-installer/internal/fsutil"
)

// System abstracts the host operations the installer performs. The interface
// is package-local so tests can run in parallel against fakes without shared
// global state; other packages define their own narrower System interfaces.
type System interface {
	Geteuid() int
	MkdirAll(path string, perm os.FileMode) error
	CopyFile(src string, dst string, perm os.FileMode) error
	CopyTree(src string, dst string) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Geteuid returns the effective user id of the calling process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src over dst, truncating any existing destination.
func (RealSystem) CopyFile(src string, dst string, perm os.FileMode) error {
	return fsutil.CopyFile(src, dst, perm)
}

// CopyTree recursively copies the tree at src into dst.
func (RealSystem) CopyTree(src string, dst string) error {
	return fsutil.CopyTree(src, dst)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}
