// Package config loads errgen settings from errgen.toml, ERRGEN_* variables
// and command line flags, in increasing order of precedence.
package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/errgen/internal/errors"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = LogLevelInfo
	DefaultEnvPrefix = "ERRGEN"
	DefaultFileName  = "errgen.toml"
	DefaultHistoryDB = ".errgen/history.db"

	configName = "errgen"
	configType = "toml"
)

type Config struct {
	LogLevel   string         `mapstructure:"log_level"`
	OutputDir  string         `mapstructure:"output_dir"`
	Force      bool           `mapstructure:"force"`
	ImportPath string         `mapstructure:"import_path"`
	History    HistoryConfig  `mapstructure:"history"`
	Modules    []ModuleConfig `mapstructure:"module"`

	// File is the configuration file that was read, empty if none
	File string `mapstructure:"-"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	DBPath  string `mapstructure:"db_path" toml:"db_path"`
}

// ModuleConfig is one [[module]] table
type ModuleConfig struct {
	Title     string   `mapstructure:"title" toml:"title"`
	Package   string   `mapstructure:"package" toml:"package,omitempty"`
	Dir       string   `mapstructure:"dir" toml:"dir,omitempty"`
	Variants  []string `mapstructure:"variants" toml:"variants,omitempty"`
	Templates []string `mapstructure:"templates" toml:"templates,omitempty"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"output-dir":  "output_dir",
	"force":       "force",
	"import-path": "import_path",
	"history-db":  "history.db_path",
}

func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{
		envPrefix:   DefaultEnvPrefix,
		searchPaths: []string{"."},
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	v := viper.New()
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("output_dir", ".")
	v.SetDefault("force", false)
	v.SetDefault("import_path", "")
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.db_path", DefaultHistoryDB)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := o.configPath
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	// Load configuration from file
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		for _, dir := range o.searchPaths {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errFactory.WithMessage(errors.ErrReadConfig, "Failed to read config file: "+err.Error())
		}
	}

	// Override config file values with command line flags
	if o.flags != nil {
		for name, key := range flagKeys {
			f := o.flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
			if name == "history-db" && f.Changed {
				v.Set("history.enabled", true)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}
	config.File = v.ConfigFileUsed()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values Load cannot type-check
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return errFactory.WithData(errors.ErrInvalidConfig, "history.db_path is empty")
	}

	for i, m := range c.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return errFactory.WithData(errors.ErrMissingConfig, struct {
				Module int
				Field  string
			}{
				Module: i,
				Field:  "title",
			})
		}
	}

	return nil
}
