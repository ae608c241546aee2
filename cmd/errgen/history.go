package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/history"
	"codeberg.org/mutker/errgen/internal/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultHistoryLimit = 20

func (a *app) historyCommand() *cobra.Command {
	var (
		limit  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recently generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.History.Enabled {
				logger.Warn().Msg("History is disabled, enable it with --history-db or [history] in errgen.toml")
			}

			rec, err := a.recorder()
			if err != nil {
				return err
			}
			defer closeRecorder(rec)

			entries, err := rec.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.writeEntries(entries, output)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "number of entries, 0 for all")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func (a *app) writeEntries(entries []history.Entry, output string) error {
	if entries == nil {
		entries = []history.Entry{}
	}

	switch output {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		defer enc.Close()
		return enc.Encode(entries)
	case "table":
		w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		writeRow(w, "TIME", "ACTION", "TITLE", "TEMPLATE", "PATH", "RUN")
		for _, e := range entries {
			writeRow(w,
				e.Timestamp.Local().Format(time.DateTime),
				string(e.Action),
				e.Title,
				e.Template,
				e.Path,
				shortRunID(e.RunID),
			)
		}
		return w.Flush()
	default:
		return errors.New().WithData(errors.ErrInvalidArgument, "unknown output format "+output)
	}
}

func writeRow(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
