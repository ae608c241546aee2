package lockfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/lockfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	lock, err := lockfile.Acquire(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(lock.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	_, err = lockfile.Acquire(dir)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, lockfile.ErrLockHeld))

	require.NoError(t, lock.Release())
	assert.NoFileExists(t, lock.Path())
	require.NoError(t, lock.Release(), "releasing twice is harmless")

	again, err := lockfile.Acquire(dir)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestAcquireTakesOverStaleLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, lockfile.Name)

	for _, content := range []string{"not-a-pid", "0", ""} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		lock, err := lockfile.Acquire(dir)
		require.NoError(t, err, content)
		require.NoError(t, lock.Release())
	}
}
