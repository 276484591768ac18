package git

import (
	"fmt"
	"os/exec"
)

// CloneBare clones a repository as a bare store into the destination directory.
func (g *realGit) CloneBare(url, dest string) error {
	cmd := exec.Command("git", "clone", "--bare", url, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone --bare failed: %w (command: git clone --bare %s %s, output: %s)",
			err, url, dest, string(output))
	}
	return nil
}
