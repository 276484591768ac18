package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Open the config file in $EDITOR, creating it if missing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := buildDeps()

			path := configPath
			if path == "" {
				defaultPath, err := deps.Config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if err := deps.Config.CreateDefaultConfig(path); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}

			editor := os.Getenv("EDITOR")
			if editor == "" {
				return fmt.Errorf("$EDITOR environment variable is not set")
			}

			editorCmd := exec.Command(editor, path)
			editorCmd.Stdin = os.Stdin
			editorCmd.Stdout = os.Stdout
			editorCmd.Stderr = os.Stderr
			return editorCmd.Run()
		},
	}

	return configCmd
}
