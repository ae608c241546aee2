package main

import (
	"codeberg.org/mutker/errgen/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter errgen.toml",
		Args:  cobra.MaximumNArgs(1),
		// the file may not exist yet, so there is nothing to load
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			if err := config.WriteStarter(path, force); err != nil {
				return err
			}
			a.printf("wrote %s\n", path)
			return nil
		},
	}
}
