//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "present")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "absent"))
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	isDir, err := fs.IsDir(tmpDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fs.IsDir(file)
	assert.NoError(t, err)
	assert.False(t, isDir)

	_, err = fs.IsDir(filepath.Join(tmpDir, "absent"))
	assert.Error(t, err)
}
