// Package watch re-runs a function whenever a file settles after a change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce absorbs the burst of events a single editor save produces.
const DefaultDebounce = 300 * time.Millisecond

const ErrWatchFailed = errors.ErrorCode("watch_failed")

// Run watches path and calls fn after every change once no further event
// arrived for debounce. The parent directory is watched so that editors
// replacing the file through a rename are seen too. Errors from fn are logged
// and do not stop the loop. Run returns nil when ctx is done.
func Run(ctx context.Context, path string, debounce time.Duration, log logger.Logger, fn func(context.Context) error) error {
	errFactory := errors.New()

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errFactory.Wrap(ErrWatchFailed, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errFactory.Wrap(ErrWatchFailed, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errFactory.Wrap(ErrWatchFailed, err)
	}

	log.Info().Str("path", target).Msg("Watching for changes")

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")

		case <-timer.C:
			if err := fn(ctx); err != nil {
				if appErr, ok := err.(errors.Error); ok {
					log.ErrorWithCode(appErr).Msg("Re-run failed")
				} else {
					log.Error().Err(err).Msg("Re-run failed")
				}
			}
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
