package config

import (
	"os"

	"codeberg.org/mutker/errgen/internal/errors"
	"github.com/BurntSushi/toml"
)

// starterFile mirrors the layout of errgen.toml
type starterFile struct {
	LogLevel  string         `toml:"log_level"`
	OutputDir string         `toml:"output_dir"`
	History   HistoryConfig  `toml:"history"`
	Modules   []ModuleConfig `toml:"module"`
}

// WriteStarter writes an errgen.toml with one example module. An existing
// file is only replaced when overwrite is set.
func WriteStarter(path string, overwrite bool) error {
	errFactory := errors.New()

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errFactory.WithData(errors.ErrAlreadyExists, path)
		}
		return errFactory.Wrap(errors.ErrWriteConfig, err)
	}
	defer f.Close()

	starter := starterFile{
		LogLevel:  string(DefaultLogLevel),
		OutputDir: ".",
		History: HistoryConfig{
			Enabled: false,
			DBPath:  DefaultHistoryDB,
		},
		Modules: []ModuleConfig{
			{
				Title:     "Bag",
				Variants:  []string{"Full"},
				Templates: []string{"error", "error_test"},
			},
		},
	}

	if _, err := f.WriteString("# errgen configuration\n\n"); err != nil {
		return errFactory.Wrap(errors.ErrWriteConfig, err)
	}
	if err := toml.NewEncoder(f).Encode(starter); err != nil {
		return errFactory.Wrap(errors.ErrWriteConfig, err)
	}
	return nil
}
