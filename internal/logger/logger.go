package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"codeberg.org/mutker/errgen/internal/errors"
	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
)

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// ParseLevel maps a configured level name onto a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	switch name {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warning", "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, errors.New().WithData(errors.ErrInvalidLogLevel, name)
	}
}

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init configures the package logger. Output goes to w, which defaults to
// stderr so that generated source printed on stdout stays clean.
func Init(level LogLevel, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	mu.Lock()
	log = zerolog.New(output).With().Timestamp().Logger()
	mu.Unlock()

	SetLogLevel(level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a debug message
func Debug() *LogEvent {
	l := current()
	return &LogEvent{l.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	l := current()
	return &LogEvent{l.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	l := current()
	return &LogEvent{l.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	l := current()
	return &LogEvent{l.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	l := current()
	return &LogEvent{l.Error().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

// Fatal logs a fatal message and exits the program
func Fatal() *LogEvent {
	l := current()
	return &LogEvent{l.Fatal()}
}

// Default returns the package logger as a Logger value for injection
func Default() Logger {
	return packageLogger{}
}

type packageLogger struct{}

func (packageLogger) Debug() *LogEvent { return Debug() }
func (packageLogger) Info() *LogEvent  { return Info() }
func (packageLogger) Warn() *LogEvent  { return Warn() }
func (packageLogger) Error() *LogEvent { return Error() }

func (packageLogger) ErrorWithCode(err errors.Error) *LogEvent { return ErrorWithCode(err) }

// New returns a Logger writing to w, independent of the package logger
func New(w io.Writer) Logger {
	return &instance{zerolog.New(w).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return &instance{zerolog.Nop()}
}

type instance struct {
	l zerolog.Logger
}

func (i *instance) Debug() *LogEvent { return &LogEvent{i.l.Debug()} }
func (i *instance) Info() *LogEvent  { return &LogEvent{i.l.Info()} }
func (i *instance) Warn() *LogEvent  { return &LogEvent{i.l.Warn()} }
func (i *instance) Error() *LogEvent { return &LogEvent{i.l.Error()} }

func (i *instance) ErrorWithCode(err errors.Error) *LogEvent {
	return &LogEvent{i.l.Error().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}
