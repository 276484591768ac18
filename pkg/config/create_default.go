package config

// defaultConfigContent is the commented template written by CreateDefaultConfig.
const defaultConfigContent = `# bwt configuration file

# Repository root directory (required)
root: "~/repos"

# Default clone method: "ssh" or "https"
clone_method: "ssh"

# Optional: suffix for cloned directories (e.g. ".work" -> name.work)
# suffix: ".work"

# Default base branch for new worktrees
# base_branch: "main"

# Commands run in the project directory after a bare clone.
# The default checks out the remote HEAD branch as the first worktree.
# post_clone_commands: |
#   git worktree add main main
`

// CreateDefaultConfig writes the default configuration file if it does not exist.
func (m *realManager) CreateDefaultConfig(configPath string) error {
	exists, err := m.fs.Exists(configPath)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return m.fs.CreateFileWithContent(configPath, []byte(defaultConfigContent), 0644)
}
