package main

import (
	"codeberg.org/mutker/errgen/internal/generator"
	"codeberg.org/mutker/errgen/internal/history"
	"github.com/fatih/color"
)

var actionColors = map[history.Action]*color.Color{
	history.ActionCreate:    color.New(color.FgGreen),
	history.ActionUpdate:    color.New(color.FgYellow),
	history.ActionUnchanged: color.New(color.Faint),
}

func (a *app) printFile(f generator.File, diff bool) {
	c, ok := actionColors[f.Action]
	if !ok {
		c = color.New()
	}
	a.printf("%s %s\n", c.Sprintf("%-9s", f.Action), f.Path)
	if diff {
		if d := f.Diff(); d != "" {
			a.printf("%s", d)
		}
	}
}

func (a *app) printPlan(files []generator.File, diff bool) {
	for _, f := range files {
		a.printFile(f, diff)
	}
	a.printf("%s %d file(s) planned, nothing written\n", color.CyanString("dry run:"), len(files))
}

func (a *app) printReport(report generator.Report, diff bool) {
	for _, f := range report.Files {
		a.printFile(f, diff)
	}
	a.printf("%s %d created, %d updated, %d unchanged\n",
		color.CyanString("run "+report.RunID+":"),
		report.Count(history.ActionCreate),
		report.Count(history.ActionUpdate),
		report.Count(history.ActionUnchanged),
	)
}
