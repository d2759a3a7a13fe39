// Package trash moves files into the deleted-files directory without ever
// overwriting an earlier entry.
package trash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"filesort/internal/domain"
	ferrors "filesort/internal/errors"
	"filesort/internal/logging"
)

const (
	// DefaultDir is the trash location relative to the working directory.
	DefaultDir = "bin/deleted"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Mover relocates files into a trash directory.
type Mover struct {
	fs     domain.FileSystemAdapter
	dir    string
	logger *logging.Logger
}

// NewMover creates a new mover targeting dir.
func NewMover(fs domain.FileSystemAdapter, dir string, logger *logging.Logger) *Mover {
	if dir == "" {
		dir = DefaultDir
	}
	return &Mover{
		fs:     fs,
		dir:    filepath.Clean(dir),
		logger: logger,
	}
}

// Dir returns the trash directory.
func (m *Mover) Dir() string {
	return m.dir
}

// Move relocates path into the trash directory, creating it if needed, and
// returns the destination. A taken name gets _1, _2, ... inserted before its
// extension.
func (m *Mover) Move(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := m.fs.MkdirAll(m.dir, dirPermissions); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", m.dir, err)
	}

	logger := m.logger.WithFile(path)

	target, err := m.freeTarget(filepath.Base(path))
	if err != nil {
		return "", err
	}

	// Rename replaces existing files on most platforms.
	if m.exists(target) {
		return "", ferrors.NewCollisionError(m.dir, target)
	}

	err = m.fs.Rename(path, target)
	if errors.Is(err, syscall.EXDEV) {
		logger.DebugContext(ctx, "Rename crossed devices, copying instead", "target", target)
		err = m.copyAndRemove(path, target)
	}
	if err != nil {
		return "", err
	}

	logger.InfoContext(ctx, "Moved file to trash", "target", target)
	return target, nil
}

// freeTarget returns the first unused destination for name.
func (m *Mover) freeTarget(name string) (string, error) {
	target := filepath.Join(m.dir, name)
	if !m.exists(target) {
		return target, nil
	}

	base, ext := splitExt(name)
	for counter := 1; ; counter++ {
		target = filepath.Join(m.dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
		if !m.exists(target) {
			return target, nil
		}
		if counter == maxSuffix {
			return "", ferrors.NewCollisionError(m.dir, target)
		}
	}
}

// maxSuffix bounds the search for a free name.
const maxSuffix = 1 << 20

func (m *Mover) exists(path string) bool {
	_, err := m.fs.Stat(path)
	return err == nil
}

func (m *Mover) copyAndRemove(source, target string) error {
	in, err := m.fs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := m.fs.CreateExclusive(target, filePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return ferrors.NewCollisionError(m.dir, target)
		}
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = m.fs.Remove(target)
		return err
	}
	if err := out.Close(); err != nil {
		_ = m.fs.Remove(target)
		return err
	}

	return m.fs.Remove(source)
}

// splitExt splits name at its last dot; the dot stays with the extension.
func splitExt(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
