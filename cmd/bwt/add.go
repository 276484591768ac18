package main

import (
	"github.com/spf13/cobra"

	"github.com/barewt/bwt/pkg/worktree"
)

func createAddCmd() *cobra.Command {
	var base string

	addCmd := &cobra.Command{
		Use:   "add [branch]",
		Short: "Add a worktree for a branch, creating the branch when needed",
		Long: `Add a worktree next to the bare store. An existing branch is checked out;
a missing branch is created from the base branch. Without an argument a
wip/MMDD-HHmmss branch name is generated.

Examples:
  bwt add feature/login
  bwt add feature/login -b develop
  bwt add`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps := buildDeps()
			manager := worktree.NewManager(loadConfig(deps), deps)

			params := worktree.AddParams{BaseBranch: base}
			if len(args) > 0 {
				params.Branch = args[0]
			}

			startDir, err := deps.FS.GetCurrentDir()
			if err != nil {
				return err
			}
			params.StartDir = startDir

			_, err = manager.Add(params)
			return err
		},
	}

	addCmd.Flags().StringVarP(&base, "base", "b", "", "Base branch to create from (overrides configuration)")

	return addCmd
}
