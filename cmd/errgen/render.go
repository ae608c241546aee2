package main

import (
	"codeberg.org/mutker/errgen/internal/catalogue"
	"github.com/spf13/cobra"
)

func (a *app) renderCommand() *cobra.Command {
	opts := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Print one rendered template without writing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := catalogue.DefaultTemplate
			if len(args) == 1 {
				name = args[0]
			}

			req := opts.request()
			req.Templates = []string{name}
			req = req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			src, err := a.generator(nil).Render(req, name)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(src)
			return err
		},
	}
	opts.register(cmd)
	return cmd
}
