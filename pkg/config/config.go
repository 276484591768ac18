// Package config loads the global and per-repository bwt configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/barewt/bwt/pkg/fs"
	"github.com/barewt/bwt/pkg/repourl"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=config.go -destination=mocks/config.gen.go -package=mocks

// DefaultBaseBranch is used when neither the global nor the repository config names one.
const DefaultBaseBranch = "main"

// RepoConfigFileName is the per-repository override file found at the repository root.
const RepoConfigFileName = "bwt.yaml"

// defaultPostCloneCommands checks out the remote HEAD branch as the first
// worktree of a fresh bare clone. The .git link, fetch refspec and initial
// fetch are handled before the hook runs.
const defaultPostCloneCommands = `git remote set-head origin --auto
HEAD_BRANCH=$(git symbolic-ref --short refs/remotes/origin/HEAD 2>/dev/null | sed 's@^origin/@@')
[ -n "$HEAD_BRANCH" ] && git worktree add "$HEAD_BRANCH" "$HEAD_BRANCH" || true
`

// Config represents the global application configuration.
type Config struct {
	Root              string              `yaml:"root"`
	CloneMethod       repourl.CloneMethod `yaml:"clone_method,omitempty"`
	Suffix            string              `yaml:"suffix,omitempty"`
	BaseBranch        string              `yaml:"base_branch,omitempty"`
	PostCloneCommands string              `yaml:"post_clone_commands,omitempty"`
}

// RepoConfig represents per-repository overrides loaded from bwt.yaml at the repository root.
type RepoConfig struct {
	BaseBranch      string `yaml:"base_branch,omitempty"`
	PostAddCommands string `yaml:"post_add_commands,omitempty"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads the global configuration from the specified file path.
	LoadConfig(configPath string) (*Config, error)

	// LoadRepoConfig loads per-repository overrides from the repository root.
	// A missing file yields zero-valued overrides, not an error.
	LoadRepoConfig(repoRoot string) (*RepoConfig, error)

	// DefaultConfig returns the default configuration.
	DefaultConfig() *Config

	// DefaultConfigPath returns the default config file location.
	DefaultConfigPath() (string, error)

	// CreateDefaultConfig writes the default configuration file if it does not exist.
	CreateDefaultConfig(configPath string) error
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fs fs.FS) Manager {
	return &realManager{fs: fs}
}

// LoadConfig loads the global configuration from the specified file path.
func (m *realManager) LoadConfig(configPath string) (*Config, error) {
	exists, err := m.fs.Exists(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	data, err := m.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.Root, err = m.fs.ExpandPath(config.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand root path: %w", err)
	}

	if config.PostCloneCommands == "" {
		config.PostCloneCommands = defaultPostCloneCommands
	}

	return &config, nil
}

// LoadRepoConfig loads per-repository overrides from the repository root.
func (m *realManager) LoadRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, RepoConfigFileName)

	exists, err := m.fs.Exists(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check repository config file: %w", err)
	}
	if !exists {
		return &RepoConfig{}, nil
	}

	data, err := m.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config file: %w", err)
	}

	var config RepoConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return &config, nil
}

// DefaultConfig returns the default configuration.
func (m *realManager) DefaultConfig() *Config {
	homeDir, err := m.fs.GetHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Root:              filepath.Join(homeDir, "repos"),
		CloneMethod:       repourl.CloneMethodSSH,
		BaseBranch:        DefaultBaseBranch,
		PostCloneCommands: defaultPostCloneCommands,
	}
}

// DefaultConfigPath returns the default config file location, honoring XDG_CONFIG_HOME.
func (m *realManager) DefaultConfigPath() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bwt", "config.yaml"), nil
	}

	homeDir, err := m.fs.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "bwt", "config.yaml"), nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrRootEmpty
	}
	if c.CloneMethod != "" &&
		c.CloneMethod != repourl.CloneMethodSSH && c.CloneMethod != repourl.CloneMethodHTTPS {
		return fmt.Errorf("%w: %s", ErrInvalidCloneMethod, c.CloneMethod)
	}
	return nil
}
