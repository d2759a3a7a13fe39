package filesystem

import (
	"io"
	"os"

	"github.com/djherbis/times"
	"github.com/spf13/afero"

	"filesort/internal/domain"
)

// Adapter provides file system operations.
type Adapter struct {
	fs afero.Fs
	// native is set when fs is backed by the operating system, so birth times
	// can be read with statx/getattrlist.
	native bool
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return &Adapter{fs: afero.NewOsFs(), native: true}
}

// NewWithFs creates an adapter over an arbitrary afero filesystem.
func NewWithFs(fs afero.Fs) *Adapter {
	_, native := fs.(*afero.OsFs)
	return &Adapter{fs: fs, native: native}
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (io.ReadCloser, error) {
	return a.fs.Open(path)
}

// CreateExclusive creates a new file, failing with os.ErrExist if it exists.
func (a *Adapter) CreateExclusive(path string, perm os.FileMode) (io.WriteCloser, error) {
	return a.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Rename moves a file.
func (a *Adapter) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// Times returns the modification and, where available, birth time of path.
func (a *Adapter) Times(path string) (domain.FileTimes, error) {
	if !a.native {
		info, err := a.fs.Stat(path)
		if err != nil {
			return domain.FileTimes{}, err
		}
		return domain.FileTimes{Modified: info.ModTime(), Created: info.ModTime()}, nil
	}

	ts, err := times.Stat(path)
	if err != nil {
		return domain.FileTimes{}, err
	}

	ft := domain.FileTimes{
		Modified: ts.ModTime(),
		Created:  ts.ModTime(),
	}
	if ts.HasBirthTime() {
		ft.Created = ts.BirthTime()
		ft.HasBirthTime = true
	}
	return ft, nil
}

// UserHomeDir returns the user's home directory.
func (a *Adapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
