// Package history records the files errgen writes in a SQLite database.
package history

import (
	"context"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/logger"
	"github.com/google/uuid"
)

// No-op implementation
type noopRecorder struct{}

// NewRecorder returns the SQLite recorder, or a no-op one when history is disabled
func NewRecorder(cfg Config, log logger.Logger) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("History disabled, using no-op recorder")
		return Noop(), nil
	}

	return NewRepository(cfg, log)
}

// Noop returns a recorder that keeps nothing
func Noop() Recorder {
	return noopRecorder{}
}

// NewRunID returns an identifier grouping the entries of one run
func NewRunID() string {
	return uuid.NewString()
}

func (noopRecorder) Record(_ context.Context, _ ...Entry) error {
	return nil
}

func (noopRecorder) List(_ context.Context, _ int) ([]Entry, error) {
	return nil, nil
}

func (noopRecorder) Close() error {
	return nil
}
