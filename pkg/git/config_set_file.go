package git

import (
	"fmt"
	"os/exec"
)

// ConfigSetFile sets a key in a specific Git config file.
func (g *realGit) ConfigSetFile(configFile, key, value string) error {
	cmd := exec.Command("git", "config", "--file", configFile, key, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config failed: %w (command: git config --file %s %s %s, output: %s)",
			err, configFile, key, value, string(output))
	}
	return nil
}
