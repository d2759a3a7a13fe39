// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"filesort/internal/adapters/filesystem"
	"filesort/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *logging.Logger {
	return logging.NewTestLogger()
}

// MemFS returns an in-memory filesystem and an adapter over it.
func MemFS() (afero.Fs, *filesystem.Adapter) {
	fs := afero.NewMemMapFs()
	return fs, filesystem.NewWithFs(fs)
}

// WriteFile creates path with content and sets its modification time.
func WriteFile(t *testing.T, fs afero.Fs, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	if !mtime.IsZero() {
		require.NoError(t, fs.Chtimes(path, mtime, mtime))
	}
}
