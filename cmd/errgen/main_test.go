package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/generator"
	"codeberg.org/mutker/errgen/internal/history"
	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes errgen with args and returns its stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ERRGEN_CONFIG", "")

	var stdout, stderr bytes.Buffer
	root := newRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "error ")
	assert.Contains(t, out, "<title>_error.go")
	assert.Contains(t, out, "error_test")
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "--title", "Bag", "--variant", "Full")
	require.NoError(t, err)
	assert.Contains(t, out, "package bag")
	assert.Contains(t, out, "type BagError struct")
	assert.Contains(t, out, "func NewBagFull(")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := run(t, "render", "--title", "Bag", "nope")
	require.Error(t, err)
	code, ok := errors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, "catalogue_template_not_found", string(code))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bag", "bag_error.go")

	out, err := run(t, "generate", "--output-dir", dir, "--title", "Bag", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "nothing written")
	assert.NoFileExists(t, path)

	out, err = run(t, "generate", "--output-dir", dir, "--title", "Bag", "--variant", "Full")
	require.NoError(t, err)
	assert.Contains(t, out, "1 created")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "BagFull")

	out, err = run(t, "generate", "--output-dir", dir, "--title", "Bag", "--variant", "Full")
	require.NoError(t, err)
	assert.Contains(t, out, "1 unchanged")

	out, err = run(t, "generate", "--output-dir", dir, "--title", "Bag", "--dry-run", "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, "update")
	assert.Contains(t, out, "-// BagFull tags Full errors.")
}

func TestGenerateRequiresTitle(t *testing.T) {
	_, err := run(t, "generate", "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidArgument))
}

func TestInitApplyHistory(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "errgen.toml")
	db := filepath.Join(dir, "history.db")

	_, err := run(t, "init", configPath)
	require.NoError(t, err)
	_, err = run(t, "init", configPath)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAlreadyExists))

	out, err := run(t, "apply", "--config", configPath, "--output-dir", dir, "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "2 created")
	assert.FileExists(t, filepath.Join(dir, "bag", "bag_error.go"))
	assert.FileExists(t, filepath.Join(dir, "bag", "bag_error_test.go"))

	out, err = run(t, "history", "--config", configPath, "--history-db", db, "--output", "json")
	require.NoError(t, err)

	var entries []history.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "Bag", e.Title)
		assert.Equal(t, history.ActionCreate, e.Action)
	}

	out, err = run(t, "history", "--config", configPath, "--history-db", db, "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Bag")

	out, err = run(t, "history", "--config", configPath, "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "bag_error_test.go")

	_, err = run(t, "history", "--config", configPath, "--history-db", db, "--output", "xml")
	require.Error(t, err)
}

func TestApplyWithoutModules(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "errgen.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level = \"error\"\n"), 0o600))

	_, err := run(t, "apply", "--config", configPath)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMissingConfig))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Full", "Empty"}, splitList(" Full, ,Empty "))
	assert.Nil(t, splitList(""))
}

func TestGenerateInteractive(t *testing.T) {
	t.Setenv("ERRGEN_CONFIG", "")
	dir := t.TempDir()

	var stdout bytes.Buffer
	a := newApp(&stdout, io.Discard)
	var asked []string
	a.ask = func(qs []*survey.Question, answers *requestAnswers) error {
		for _, q := range qs {
			asked = append(asked, q.Name)
		}
		answers.Title = "Vm"
		answers.Variants = "StackOverflow, StackUnderflow"
		answers.Templates = []string{"error", "error_test"}
		return nil
	}

	root := a.rootCommand()
	root.SetArgs([]string{"generate", "-i", "--output-dir", dir})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"title", "package", "variants", "templates"}, asked)
	assert.Contains(t, stdout.String(), "2 created")

	content, err := os.ReadFile(filepath.Join(dir, "vm", "vm_error.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "func NewVmStackOverflow(")
	assert.Contains(t, string(content), "func NewVmStackUnderflow(")
	assert.FileExists(t, filepath.Join(dir, "vm", "vm_error_test.go"))
}

func TestAskRequestSkipsAnsweredFlags(t *testing.T) {
	a := newApp(io.Discard, io.Discard)
	var asked []string
	a.ask = func(qs []*survey.Question, answers *requestAnswers) error {
		for _, q := range qs {
			asked = append(asked, q.Name)
		}
		answers.Package = "runtime"
		return nil
	}

	req, err := a.askRequest(generatorRequest("Vm", "Overflow"))
	require.NoError(t, err)
	assert.Equal(t, []string{"package", "templates"}, asked)
	assert.Equal(t, "Vm", req.Title)
	assert.Equal(t, "runtime", req.Package)
	assert.Equal(t, []string{"Overflow"}, req.Variants)
}

func TestAskRequestInterrupted(t *testing.T) {
	a := newApp(io.Discard, io.Discard)
	a.ask = func([]*survey.Question, *requestAnswers) error {
		return fmt.Errorf("interrupt")
	}

	_, err := a.askRequest(generatorRequest("", ""))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCanceled))
}

func TestWatchReappliesOnChange(t *testing.T) {
	t.Setenv("ERRGEN_CONFIG", "")
	out := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "errgen.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[[module]]\ntitle = \"Bag\"\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		root := newRootCommand(io.Discard, io.Discard)
		root.SetArgs([]string{"watch", "--config", configPath, "--output-dir", out, "--debounce", "20ms"})
		done <- root.ExecuteContext(ctx)
	}()

	path := filepath.Join(out, "bag", "bag_error.go")
	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "initial apply")

	changed := []byte("[[module]]\ntitle = \"Bag\"\nvariants = [\"Full\"]\n")
	require.Eventually(t, func() bool {
		// rewrite until the watcher has picked the change up
		if err := os.WriteFile(configPath, changed, 0o600); err != nil {
			return false
		}
		data, err := os.ReadFile(path)
		return err == nil && bytes.Contains(data, []byte("func NewBagFull("))
	}, 5*time.Second, 100*time.Millisecond, "re-apply after change")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchNeedsConfigFile(t *testing.T) {
	_, err := run(t, "watch", "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMissingConfig))
}

func generatorRequest(title, variant string) generator.Request {
	req := generator.Request{Title: title}
	if variant != "" {
		req.Variants = []string{variant}
	}
	return req
}

func TestRenderHasNoOutputFlags(t *testing.T) {
	_, err := run(t, "render", "--title", "Bag", "--dir", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --dir")
}
