package domainerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"codeberg.org/mutker/errgen/pkg/domainerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalFormatting(t *testing.T) {
	cases := []struct {
		label   string
		message string
	}{
		{"db", "timeout"},
		{"network", "connection refused"},
		{"", ""},
		{"io::Error", `quoted "message" with, commas`},
		{"ünïcode", "行 1: unexpected token"},
	}

	for _, tc := range cases {
		t.Run(tc.label+"/"+tc.message, func(t *testing.T) {
			err := domainerr.NewExternal(tc.label, tc.message)
			first := err.Error()

			require.NotEmpty(t, first)
			assert.Contains(t, first, string(domainerr.External))
			assert.Contains(t, first, tc.label)
			assert.Contains(t, first, tc.message)
			assert.Equal(t, first, err.Error(), "formatting must be stable")
			assert.Equal(t, first, err.String())
			assert.Equal(t, first, fmt.Sprint(err))
			assert.Equal(t, first, fmt.Sprintf("%#v", err))
		})
	}
}

func TestExternalDebugForm(t *testing.T) {
	assert.Equal(t, `ExternalError("db", "timeout")`, domainerr.NewExternal("db", "timeout").Error())
	assert.Equal(t, `ExternalError("", "")`, domainerr.NewExternal("", "").Error())
}

func TestEquality(t *testing.T) {
	base := domainerr.NewExternal("db", "timeout")

	assert.True(t, base.Equal(domainerr.NewExternal("db", "timeout")))
	assert.False(t, base.Equal(domainerr.NewExternal("db", "timeout ")))
	assert.False(t, base.Equal(domainerr.NewExternal("DB", "timeout")))
	assert.False(t, base.Equal(domainerr.New("Full", "db", "timeout")))

	wrapped := fmt.Errorf("query users: %w", base)
	assert.True(t, errors.Is(wrapped, domainerr.NewExternal("db", "timeout")))
	assert.False(t, errors.Is(wrapped, domainerr.NewExternal("db", "refused")))
}

func TestFromError(t *testing.T) {
	err := domainerr.FromError(fs.ErrNotExist)
	assert.Equal(t, domainerr.External, err.Kind)
	assert.Equal(t, "*errors.errorString", err.Label)
	assert.Equal(t, "file does not exist", err.Message)

	pathErr := &fs.PathError{Op: "open", Path: "prog.bl", Err: fs.ErrNotExist}
	err = domainerr.FromError(pathErr)
	assert.Equal(t, "*fs.PathError", err.Label)
	assert.Equal(t, pathErr.Error(), err.Message)

	assert.Equal(t, domainerr.NewExternal("", ""), domainerr.FromError(nil))
}

func TestAsDomain(t *testing.T) {
	inner := domainerr.NewExternal("CompilerError", "early eof")
	wrapped := fmt.Errorf("build: %w", inner)

	d, ok := domainerr.AsDomain(wrapped)
	require.True(t, ok)
	assert.Equal(t, inner, d)
	assert.True(t, domainerr.IsDomain(wrapped))

	assert.False(t, domainerr.IsDomain(errors.New("plain")))
	assert.False(t, domainerr.IsDomain(nil))
}
