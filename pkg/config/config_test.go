//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barewt/bwt/pkg/fs"
	"github.com/barewt/bwt/pkg/repourl"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestManager_LoadConfig(t *testing.T) {
	manager := NewManager(fs.NewFS())
	path := writeConfig(t, `
root: /repos
clone_method: https
suffix: .work
base_branch: develop
`)

	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/repos", cfg.Root)
	assert.Equal(t, repourl.CloneMethodHTTPS, cfg.CloneMethod)
	assert.Equal(t, ".work", cfg.Suffix)
	assert.Equal(t, "develop", cfg.BaseBranch)
	// The default post-clone script is filled in when the file omits one.
	assert.Contains(t, cfg.PostCloneCommands, "git worktree add")
}

func TestManager_LoadConfig_ExpandsRoot(t *testing.T) {
	manager := NewManager(fs.NewFS())
	path := writeConfig(t, "root: ~/repos\n")

	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "repos"), cfg.Root)
}

func TestManager_LoadConfig_NotFound(t *testing.T) {
	manager := NewManager(fs.NewFS())

	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestManager_LoadConfig_InvalidYAML(t *testing.T) {
	manager := NewManager(fs.NewFS())
	path := writeConfig(t, "root: [unclosed\n")

	_, err := manager.LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_LoadConfig_MissingRoot(t *testing.T) {
	manager := NewManager(fs.NewFS())
	path := writeConfig(t, "clone_method: ssh\n")

	_, err := manager.LoadConfig(path)
	assert.ErrorIs(t, err, ErrRootEmpty)
}

func TestManager_LoadRepoConfig(t *testing.T) {
	manager := NewManager(fs.NewFS())
	repoRoot := t.TempDir()

	content := "base_branch: develop\npost_add_commands: |\n  direnv allow\n"
	require.NoError(t, os.WriteFile(filepath.Join(repoRoot, RepoConfigFileName), []byte(content), 0644))

	cfg, err := manager.LoadRepoConfig(repoRoot)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.BaseBranch)
	assert.Equal(t, "direnv allow\n", cfg.PostAddCommands)
}

func TestManager_LoadRepoConfig_MissingFile(t *testing.T) {
	manager := NewManager(fs.NewFS())

	cfg, err := manager.LoadRepoConfig(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseBranch)
	assert.Empty(t, cfg.PostAddCommands)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid ssh",
			config: Config{Root: "/repos", CloneMethod: repourl.CloneMethodSSH},
		},
		{
			name:   "valid https",
			config: Config{Root: "/repos", CloneMethod: repourl.CloneMethodHTTPS},
		},
		{
			name:   "empty clone method",
			config: Config{Root: "/repos"},
		},
		{
			name:    "empty root",
			config:  Config{CloneMethod: repourl.CloneMethodSSH},
			wantErr: ErrRootEmpty,
		},
		{
			name:    "bad clone method",
			config:  Config{Root: "/repos", CloneMethod: "ftp"},
			wantErr: ErrInvalidCloneMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManager_CreateDefaultConfig(t *testing.T) {
	manager := NewManager(fs.NewFS())
	path := filepath.Join(t.TempDir(), "bwt", "config.yaml")

	require.NoError(t, manager.CreateDefaultConfig(path))

	// The generated template is itself loadable.
	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Root)

	// A second call leaves the existing file alone.
	require.NoError(t, os.WriteFile(path, []byte("root: /elsewhere\n"), 0644))
	require.NoError(t, manager.CreateDefaultConfig(path))
	cfg, err = manager.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Root)
}

func TestManager_DefaultConfigPath_XDG(t *testing.T) {
	manager := NewManager(fs.NewFS())

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path, err := manager.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/bwt/config.yaml", path)
}
