package main

import (
	"github.com/spf13/cobra"

	"github.com/barewt/bwt/pkg/repourl"
	"github.com/barewt/bwt/pkg/worktree"
)

func createGetCmd() *cobra.Command {
	var ssh, https bool
	var suffix string

	getCmd := &cobra.Command{
		Use:   "get <repository>",
		Short: "Clone a repository as a bare store with worktree-friendly structure",
		Long: `Clone a repository as a bare store under <root>/<host>/<owner>/<name>/.bare.

Examples:
  bwt get github.com/acme/widgets
  bwt get git@github.com:acme/widgets.git
  bwt get https://github.com/acme/widgets --https
  bwt get github.com/acme/widgets -s .work`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ssh && https {
				return worktree.ErrConflictingCloneMethods
			}

			params := worktree.GetParams{Input: args[0]}
			if ssh {
				params.CloneMethod = string(repourl.CloneMethodSSH)
			}
			if https {
				params.CloneMethod = string(repourl.CloneMethodHTTPS)
			}
			if cmd.Flags().Changed("suffix") {
				params.Suffix = &suffix
			}

			deps := buildDeps()
			manager := worktree.NewManager(loadConfig(deps), deps)

			_, err := manager.Get(params)
			return err
		},
	}

	getCmd.Flags().BoolVar(&ssh, "ssh", false, "Clone over SSH (default)")
	getCmd.Flags().BoolVar(&https, "https", false, "Clone over HTTPS")
	getCmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Suffix for the directory name (e.g. name.suffix)")

	return getCmd
}
