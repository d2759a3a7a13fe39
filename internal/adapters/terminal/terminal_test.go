package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_IsInteractive_Buffer(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, NewAdapter(&buf).IsInteractive())
}

func TestAdapter_IsInteractive_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, NewAdapter(f).IsInteractive())
}
