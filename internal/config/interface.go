package config

import (
	"codeberg.org/mutker/errgen/internal/errors"
	"github.com/spf13/pflag"
)

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath  string
	envPrefix   string
	searchPaths []string
	flags       *pflag.FlagSet
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "ERRGEN"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		if prefix == "" {
			return errors.New().WithMessage(errors.ErrInvalidArgument, "environment prefix is empty")
		}
		o.envPrefix = prefix
		return nil
	}
}

// WithSearchPaths sets the directories searched for errgen.toml when no
// explicit file is given. Default is the working directory.
func WithSearchPaths(dirs ...string) Option {
	return func(o *options) error {
		o.searchPaths = dirs
		return nil
	}
}

// WithFlags binds command line flags; a flag that was set wins over the file
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *options) error {
		o.flags = fs
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
