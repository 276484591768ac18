package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/barewt/bwt/pkg/prompt"
	"github.com/barewt/bwt/pkg/worktree"
)

func createRemoveCmd() *cobra.Command {
	var force bool

	removeCmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove a worktree",
		Long: `Remove a worktree by directory name or branch name. Without an argument
the worktree is chosen interactively.

Examples:
  bwt remove feature-login
  bwt rm feature/login -f
  bwt rm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps := buildDeps()
			manager := worktree.NewManager(loadConfig(deps), deps)

			startDir, err := deps.FS.GetCurrentDir()
			if err != nil {
				return err
			}

			var selector string
			if len(args) > 0 {
				selector = args[0]
			} else {
				worktrees, err := manager.List(startDir)
				if err != nil {
					return err
				}
				if len(worktrees) == 0 {
					deps.Logger.Logf("No worktrees found")
					return nil
				}

				options := make([]string, 0, len(worktrees))
				for _, entry := range worktrees {
					options = append(options, filepath.Base(entry.Path))
				}

				selected, err := deps.Prompt.Select("Choose a worktree to remove:", options)
				if errors.Is(err, prompt.ErrNoSelection) {
					return nil
				}
				if err != nil {
					return err
				}

				confirmed, err := deps.Prompt.Confirm(fmt.Sprintf("Remove worktree %s?", selected), false)
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
				selector = selected
			}

			return manager.Remove(worktree.RemoveParams{
				StartDir: startDir,
				Selector: selector,
				Force:    force,
			})
		},
	}

	removeCmd.Flags().BoolVarP(&force, "force", "f", false, "Force removal even with uncommitted changes")

	return removeCmd
}
