package main

import (
	"context"

	"codeberg.org/mutker/errgen/internal/config"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/generator"
	"codeberg.org/mutker/errgen/internal/logger"
	"codeberg.org/mutker/errgen/internal/watch"
	"github.com/spf13/cobra"
)

func (a *app) applyCommand() *cobra.Command {
	var diff bool
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Generate every [[module]] of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.apply(cmd.Context(), diff)
		},
	}
	cmd.Flags().BoolVar(&diff, "diff", false, "print a unified diff of every changed file")
	return cmd
}

func (a *app) watchCommand() *cobra.Command {
	var debounce = watch.DefaultDebounce
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Apply the configuration file and re-apply it on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.File == "" {
				return errors.New().WithMessage(errors.ErrMissingConfig, "watch needs a configuration file")
			}
			ctx := cmd.Context()
			if err := a.apply(ctx, false); err != nil {
				return err
			}
			logger.Info().Str("file", a.cfg.File).Msg("Watching configuration")
			return watch.Run(ctx, a.cfg.File, debounce, logger.Default(), func(ctx context.Context) error {
				if err := a.reload(); err != nil {
					return err
				}
				return a.apply(ctx, false)
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-applying")
	return cmd
}

func (a *app) apply(ctx context.Context, diff bool) error {
	if len(a.cfg.Modules) == 0 {
		return errors.New().WithMessage(errors.ErrMissingConfig, "no [[module]] in configuration")
	}

	rec, err := a.recorder()
	if err != nil {
		return err
	}
	defer closeRecorder(rec)

	report, err := a.generator(rec).Run(ctx, moduleRequests(a.cfg.Modules)...)
	if err != nil {
		return err
	}
	a.printReport(report, diff)
	return nil
}

func moduleRequests(modules []config.ModuleConfig) []generator.Request {
	reqs := make([]generator.Request, 0, len(modules))
	for _, m := range modules {
		reqs = append(reqs, generator.Request{
			Title:     m.Title,
			Package:   m.Package,
			Dir:       m.Dir,
			Variants:  m.Variants,
			Templates: m.Templates,
		})
	}
	return reqs
}
