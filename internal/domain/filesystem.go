package domain

import (
	"io"
	"os"
	"time"
)

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	ReadFile(path string) ([]byte, error)
	Open(path string) (io.ReadCloser, error)
	// CreateExclusive creates path for writing and fails if it already exists.
	CreateExclusive(path string, perm os.FileMode) (io.WriteCloser, error)
	MkdirAll(path string, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Stat(path string) (os.FileInfo, error)
	Times(path string) (FileTimes, error)
	UserHomeDir() (string, error)
}

// FileTimes holds the timestamps reported for a file.
type FileTimes struct {
	Modified time.Time
	// Created equals Modified when the platform cannot report a birth time.
	Created      time.Time
	HasBirthTime bool
}
