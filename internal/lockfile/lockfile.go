// Package lockfile keeps two errgen runs from writing into the same directory.
package lockfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/errgen/internal/errors"
)

const (
	// Name is the lock file created in the output directory
	Name = ".errgen.lock"

	ErrLockHeld = errors.ErrorCode("lock_held")
)

// Lock is a held directory lock
type Lock struct {
	path string
}

// Acquire writes the current process ID into dir's lock file. A lock left by
// a process that is no longer running is taken over.
func Acquire(dir string) (*Lock, error) {
	errFactory := errors.New()
	path := filepath.Join(dir, Name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errFactory.Wrap(errors.ErrWriteFailed, err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(os.Getpid()))
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				return nil, errFactory.Wrap(errors.ErrWriteFailed, errors.Join(werr, cerr))
			}
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, errFactory.Wrap(errors.ErrWriteFailed, err)
		}

		pid, alive := holder(path)
		if alive {
			return nil, errFactory.WithData(ErrLockHeld, struct {
				Path string
				PID  int
			}{
				Path: path,
				PID:  pid,
			})
		}

		// Stale lock, remove it and try again
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrInternal, err)
		}
	}

	return nil, errFactory.WithData(ErrLockHeld, path)
}

// holder reads the PID from path and reports whether that process is alive.
func holder(path string) (int, bool) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(bytes)))
	if err != nil || pid <= 0 {
		return 0, false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return pid, false
	}

	return pid, process.Signal(syscall.Signal(0)) == nil
}

// Path returns the lock file path
func (l *Lock) Path() string {
	return l.path
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(errors.ErrInternal, err)
	}
	return nil
}
