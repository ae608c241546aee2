package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/errgen/internal/config"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/generator"
	"codeberg.org/mutker/errgen/internal/history"
	"codeberg.org/mutker/errgen/internal/logger"
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logError(err)
		cancel()
		os.Exit(1)
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func logError(err error) {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.ErrorWithCode(appErr).Msg("errgen failed")
		return
	}
	logger.Error().Err(err).Msg("errgen failed")
}

// app carries what every subcommand needs once the configuration is loaded
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	loadOpts   []config.Option

	// ask runs the prompts of generate --interactive
	ask func(qs []*survey.Question, answers *requestAnswers) error
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		ask: func(qs []*survey.Question, answers *requestAnswers) error {
			return survey.Ask(qs, answers)
		},
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "errgen",
		Short:         "Generate per-package domain error modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default ./errgen.toml)")
	flags.String("log-level", string(config.DefaultLogLevel), "log level (debug, info, warning, error)")
	flags.String("history-db", "", "record generated files in this SQLite database")
	flags.String("output-dir", ".", "directory generated paths are relative to")
	flags.String("import-path", "", "import path of the domainerr package")
	flags.Bool("force", false, "overwrite files errgen did not write")

	root.AddCommand(
		a.generateCommand(),
		a.applyCommand(),
		a.watchCommand(),
		a.listCommand(),
		a.historyCommand(),
		a.initCommand(),
		a.renderCommand(),
	)
	return root
}

// load reads the configuration and sets up logging
func (a *app) load(cmd *cobra.Command) error {
	a.loadOpts = []config.Option{config.WithFlags(cmd.Flags())}
	if a.configFile != "" {
		a.loadOpts = append(a.loadOpts, config.WithConfigFile(a.configFile))
	}

	cfg, err := config.Load(a.loadOpts...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.New().WithData(errors.ErrInvalidLogLevel, cfg.LogLevel)
	}
	logger.Init(level, a.stderr)
	logger.Debug().Str("file", cfg.File).Msg("Config loaded")
	return nil
}

// reload re-reads the configuration with the options of the first load
func (a *app) reload() error {
	cfg, err := config.Load(a.loadOpts...)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) recorder() (history.Recorder, error) {
	return history.NewRecorder(history.Config{
		Enabled: a.cfg.History.Enabled,
		DBPath:  a.cfg.History.DBPath,
	}, logger.Default())
}

func (a *app) generator(rec history.Recorder) *generator.Generator {
	return generator.New(
		generator.WithRoot(a.cfg.OutputDir),
		generator.WithImportPath(a.cfg.ImportPath),
		generator.WithForce(a.cfg.Force),
		generator.WithRecorder(rec),
		generator.WithLogger(logger.Default()),
	)
}

func closeRecorder(rec history.Recorder) {
	if err := rec.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close history")
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
