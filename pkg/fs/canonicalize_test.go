//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Canonicalize(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	real := filepath.Join(tmpDir, "real")
	require.NoError(t, os.Mkdir(real, 0755))

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink(real, link))

	resolvedReal, err := fs.Canonicalize(real)
	require.NoError(t, err)

	resolvedLink, err := fs.Canonicalize(link)
	require.NoError(t, err)

	// The symlink resolves to the same canonical path as its target.
	assert.Equal(t, resolvedReal, resolvedLink)
}

func TestFS_Canonicalize_Empty(t *testing.T) {
	fs := NewFS()

	_, err := fs.Canonicalize("")
	assert.ErrorIs(t, err, ErrPathResolution)
}

func TestFS_Canonicalize_Missing(t *testing.T) {
	fs := NewFS()

	_, err := fs.Canonicalize(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrPathResolution)
}
