package main

import (
	"codeberg.org/mutker/errgen/internal/catalogue"
	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known templates",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range catalogue.Names() {
				t, err := catalogue.Lookup(name)
				if err != nil {
					return err
				}
				a.printf("%-12s %s\n", name, t.FileName("<title>"))
			}
			return nil
		},
	}
}
