// Package generator renders catalogue templates into error modules and
// writes them to disk.
package generator

import (
	"context"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"codeberg.org/mutker/errgen/internal/catalogue"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/history"
	"codeberg.org/mutker/errgen/internal/lockfile"
	"codeberg.org/mutker/errgen/internal/logger"
	"codeberg.org/mutker/errgen/internal/skeleton"
)

// DefaultImportPath is where generated code finds the shared runtime.
const DefaultImportPath = "codeberg.org/mutker/errgen/pkg/domainerr"

const newFilePermissions = 0o644

// Generator turns requests into files.
type Generator struct {
	root       string
	importPath string
	force      bool
	recorder   history.Recorder
	log        logger.Logger
	now        func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithRoot sets the directory request paths are relative to
func WithRoot(dir string) Option {
	return func(g *Generator) {
		g.root = dir
	}
}

// WithImportPath overrides the import path of the domainerr package
func WithImportPath(path string) Option {
	return func(g *Generator) {
		if path != "" {
			g.importPath = path
		}
	}
}

// WithForce allows overwriting files errgen did not write
func WithForce(force bool) Option {
	return func(g *Generator) {
		g.force = force
	}
}

// WithRecorder records every applied file
func WithRecorder(rec history.Recorder) Option {
	return func(g *Generator) {
		if rec != nil {
			g.recorder = rec
		}
	}
}

// WithLogger sets the logger
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New returns a Generator writing below the working directory by default.
func New(opts ...Option) *Generator {
	g := &Generator{
		root:       ".",
		importPath: DefaultImportPath,
		log:        logger.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.recorder == nil {
		g.recorder = history.Noop()
	}
	return g
}

// Report is the outcome of a run.
type Report struct {
	RunID string
	Files []File
}

// Count returns how many files ended with action.
func (r Report) Count(action history.Action) int {
	n := 0
	for _, f := range r.Files {
		if f.Action == action {
			n++
		}
	}
	return n
}

// Render renders and gofmts one template for a normalized, valid request.
func (g *Generator) Render(req Request, name string) ([]byte, error) {
	errFactory := errors.New()

	tmpl, err := catalogue.Lookup(name)
	if err != nil {
		return nil, err
	}

	var ext strings.Builder
	for _, v := range req.Variants {
		ext.WriteString(skeleton.Substitute(tmpl.Extension, map[string]string{
			"title_name": req.Title,
			"variant":    v,
		}))
	}

	src, err := skeleton.Render(tmpl.Skeleton, map[string]string{
		"title_name":  req.Title,
		"package":     req.Package,
		"import_path": g.importPath,
		"k_ext":       ext.String(),
	})
	if err != nil {
		return nil, errFactory.Wrap(ErrRenderFailed, err)
	}

	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, errFactory.WithData(ErrFormatFailed, struct {
			Template string
			Title    string
			Error    string
		}{
			Template: name,
			Title:    req.Title,
			Error:    err.Error(),
		})
	}
	return formatted, nil
}

// Plan renders every request and compares the result with what is on disk.
// Nothing is written.
func (g *Generator) Plan(ctx context.Context, reqs ...Request) ([]File, error) {
	errFactory := errors.New()

	var files []File
	owners := make(map[string]string)
	packages := make(map[string]string)

	for _, raw := range reqs {
		if err := ctx.Err(); err != nil {
			return nil, errFactory.Wrap(ErrOperationCanceled, err)
		}

		req := raw.Normalize()
		if err := req.Validate(); err != nil {
			return nil, err
		}

		// every file in a directory must share one package clause
		dir := filepath.Clean(filepath.Join(g.root, req.Dir))
		if pkg, ok := packages[dir]; ok && pkg != req.Package {
			return nil, errFactory.WithData(ErrPackageConflict, struct {
				Dir    string
				First  string
				Second string
			}{
				Dir:    dir,
				First:  pkg,
				Second: req.Package,
			})
		}
		packages[dir] = req.Package

		for _, name := range req.Templates {
			tmpl, err := catalogue.Lookup(name)
			if err != nil {
				return nil, err
			}

			path := filepath.Join(g.root, req.Dir, tmpl.FileName(req.Title))
			key := filepath.Clean(path)
			if owner, ok := owners[key]; ok {
				return nil, errFactory.WithData(ErrPathCollision, struct {
					Path   string
					First  string
					Second string
				}{
					Path:   path,
					First:  owner,
					Second: req.Title,
				})
			}
			owners[key] = req.Title

			content, err := g.Render(req, name)
			if err != nil {
				return nil, err
			}

			existing, err := os.ReadFile(path)
			exists := err == nil
			if err != nil && !os.IsNotExist(err) {
				return nil, errFactory.Wrap(ErrWriteFailed, err)
			}

			files = append(files, File{
				Path:     path,
				Template: name,
				Request:  req,
				Content:  content,
				Existing: existing,
				Exists:   exists,
				Action:   classify(exists, existing, content),
			})
		}
	}

	return files, nil
}

// Apply writes planned files. Files errgen did not write are only replaced
// with force. Every output directory is locked for the duration of the write
// and every file is recorded in the history.
func (g *Generator) Apply(ctx context.Context, files []File) (Report, error) {
	errFactory := errors.New()
	report := Report{RunID: history.NewRunID()}

	for _, f := range files {
		if f.Action == history.ActionUpdate && !f.Owned() && !g.force {
			return report, errFactory.WithData(ErrFileExists, f.Path)
		}
	}

	locks, err := g.lockDirs(files)
	if err != nil {
		return report, err
	}
	defer func() {
		for _, l := range locks {
			if err := l.Release(); err != nil {
				g.log.Warn().Err(err).Str("path", l.Path()).Msg("Failed to release lock")
			}
		}
	}()

	entries := make([]history.Entry, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, errFactory.Wrap(ErrOperationCanceled, err)
		}

		if f.Action != history.ActionUnchanged {
			if err := writeAtomic(f.Path, f.Content); err != nil {
				return report, errFactory.WithData(ErrWriteFailed, struct {
					Path  string
					Error string
				}{
					Path:  f.Path,
					Error: err.Error(),
				})
			}
		}

		g.log.Info().
			Str("path", f.Path).
			Str("template", f.Template).
			Str("action", string(f.Action)).
			Msg("Generated file")

		report.Files = append(report.Files, f)
		entries = append(entries, history.Entry{
			RunID:     report.RunID,
			Timestamp: g.now(),
			Package:   f.Request.Package,
			Title:     f.Request.Title,
			Template:  f.Template,
			Path:      f.Path,
			Checksum:  f.Checksum(),
			Action:    f.Action,
		})
	}

	if err := g.recorder.Record(ctx, entries...); err != nil {
		return report, err
	}
	return report, nil
}

// Run plans and applies reqs.
func (g *Generator) Run(ctx context.Context, reqs ...Request) (Report, error) {
	files, err := g.Plan(ctx, reqs...)
	if err != nil {
		return Report{}, err
	}
	return g.Apply(ctx, files)
}

func (g *Generator) lockDirs(files []File) ([]*lockfile.Lock, error) {
	dirs := make(map[string]struct{})
	for _, f := range files {
		if f.Action != history.ActionUnchanged {
			dirs[filepath.Dir(f.Path)] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var locks []*lockfile.Lock
	for _, d := range sorted {
		l, err := lockfile.Acquire(d)
		if err != nil {
			for _, held := range locks {
				if rerr := held.Release(); rerr != nil {
					g.log.Warn().Err(rerr).Str("path", held.Path()).Msg("Failed to release lock")
				}
			}
			return nil, err
		}
		locks = append(locks, l)
	}
	return locks, nil
}

// writeAtomic writes content next to path and renames it into place.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(newFilePermissions); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
