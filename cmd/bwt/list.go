package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barewt/bwt/pkg/prompt"
	"github.com/barewt/bwt/pkg/worktree"
)

func createListCmd() *cobra.Command {
	var plain bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List worktrees and select one interactively",
		Long: `List live worktrees after pruning stale registrations. The selected
worktree path is printed to stdout so shells can cd into it.

Examples:
  bwt list
  cd "$(bwt list)"
  bwt list --plain`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := buildDeps()
			manager := worktree.NewManager(loadConfig(deps), deps)

			startDir, err := deps.FS.GetCurrentDir()
			if err != nil {
				return err
			}

			worktrees, err := manager.List(startDir)
			if err != nil {
				return err
			}
			if len(worktrees) == 0 {
				deps.Logger.Logf("No worktrees found")
				return nil
			}

			if plain {
				for _, entry := range worktrees {
					fmt.Println(entry.Path)
				}
				return nil
			}

			options := make([]string, 0, len(worktrees))
			for _, entry := range worktrees {
				options = append(options, entry.Path)
			}

			selected, err := deps.Prompt.Select("Choose a worktree:", options)
			if errors.Is(err, prompt.ErrNoSelection) {
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(selected)
			return nil
		},
	}

	listCmd.Flags().BoolVar(&plain, "plain", false, "Print worktree paths without interactive selection")

	return listCmd
}
