package main

//
// generate: one module from flags or prompts
//

import (
	"strings"

	"codeberg.org/mutker/errgen/internal/catalogue"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/generator"
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// requestFlags are the flags describing a single module
type requestFlags struct {
	title     string
	pkg       string
	dir       string
	variants  []string
	templates []string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "type-name prefix, e.g. Bag for BagError")
	flags.StringVar(&f.pkg, "package", "", "package clause (default lower-case title)")
	flags.StringArrayVar(&f.variants, "variant", nil, "extra error variant (repeatable)")
}

// registerOutput adds the flags choosing which files are written and where
func (f *requestFlags) registerOutput(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.dir, "dir", "", "output directory (default package name)")
	flags.StringArrayVar(&f.templates, "template", nil, "template to render (repeatable, default error)")
}

func (f *requestFlags) request() generator.Request {
	return generator.Request{
		Title:     f.title,
		Package:   f.pkg,
		Dir:       f.dir,
		Variants:  f.variants,
		Templates: f.templates,
	}
}

type generateOptions struct {
	requestFlags
	dryRun      bool
	diff        bool
	interactive bool
}

func (a *app) generateCommand() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one error module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, opts)
		},
	}
	opts.register(cmd)
	opts.registerOutput(cmd)
	flags := cmd.Flags()
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would change without writing")
	flags.BoolVar(&opts.diff, "diff", false, "print a unified diff of every changed file")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for the module")
	return cmd
}

func (a *app) generate(cmd *cobra.Command, opts *generateOptions) error {
	req := opts.request()
	if opts.interactive {
		var err error
		if req, err = a.askRequest(req); err != nil {
			return err
		}
	}
	if strings.TrimSpace(req.Title) == "" {
		return errors.New().WithMessage(errors.ErrInvalidArgument, "--title is required")
	}

	rec, err := a.recorder()
	if err != nil {
		return err
	}
	defer closeRecorder(rec)

	g := a.generator(rec)
	ctx := cmd.Context()

	files, err := g.Plan(ctx, req)
	if err != nil {
		return err
	}
	if opts.dryRun {
		a.printPlan(files, opts.diff)
		return nil
	}

	report, err := g.Apply(ctx, files)
	if err != nil {
		return err
	}
	a.printReport(report, opts.diff)
	return nil
}

// requestAnswers receives the answers of the generate prompts
type requestAnswers struct {
	Title     string   `survey:"title"`
	Package   string   `survey:"package"`
	Variants  string   `survey:"variants"`
	Templates []string `survey:"templates"`
}

// askRequest prompts for everything the flags left empty
func (a *app) askRequest(req generator.Request) (generator.Request, error) {
	errFactory := errors.New()

	var qs []*survey.Question
	answers := requestAnswers{
		Title:     req.Title,
		Package:   req.Package,
		Templates: req.Templates,
	}

	if req.Title == "" {
		qs = append(qs, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Type-name prefix (e.g. Bag):"},
			Validate: survey.Required,
		})
	}
	if req.Package == "" {
		qs = append(qs, &survey.Question{
			Name:   "package",
			Prompt: &survey.Input{Message: "Package name (empty for lower-case title):"},
		})
	}
	if len(req.Variants) == 0 {
		qs = append(qs, &survey.Question{
			Name:   "variants",
			Prompt: &survey.Input{Message: "Extra variants, comma separated:"},
		})
	}
	if len(req.Templates) == 0 {
		qs = append(qs, &survey.Question{
			Name: "templates",
			Prompt: &survey.MultiSelect{
				Message: "Templates:",
				Options: catalogue.Names(),
				Default: []string{catalogue.DefaultTemplate},
			},
		})
	}
	if len(qs) == 0 {
		return req, nil
	}

	if err := a.ask(qs, &answers); err != nil {
		return req, errFactory.Wrap(errors.ErrCanceled, err)
	}

	req.Title = answers.Title
	req.Package = answers.Package
	req.Templates = answers.Templates
	if answers.Variants != "" {
		req.Variants = splitList(answers.Variants)
	}
	return req, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
