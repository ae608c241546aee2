package errors_test

import (
	"fmt"
	"testing"

	"codeberg.org/mutker/errgen/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	f := errors.New()

	assert.Equal(t, "Invalid log level", f.New(errors.ErrInvalidLogLevel).Error())
	assert.Equal(t, "Invalid log level: loud", f.WithData(errors.ErrInvalidLogLevel, "loud").Error())
	assert.Equal(t, "custom", f.WithMessage(errors.ErrInternal, "custom").Error())
	assert.Equal(t, "Failed to write generated file: boom", f.Wrap(errors.ErrWriteFailed, fmt.Errorf("boom")).Error())
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	base := errors.New().WithData(errors.ErrPathCollision, "bag/bag_error.go")
	changed := base.WithMessage("two modules write the same file")

	assert.NotEqual(t, base.Error(), changed.Error())
	assert.Equal(t, "bag/bag_error.go", changed.GetData())
	assert.Equal(t, errors.ErrPathCollision, changed.Code())
}

func TestWrapChain(t *testing.T) {
	cause := fmt.Errorf("no space left")
	inner := errors.New().Wrap(errors.ErrWriteFailed, cause)
	outer := errors.New().Wrap(errors.ErrRecordHistory, inner)

	assert.True(t, errors.Is(outer, cause))
	assert.True(t, errors.HasCode(outer, errors.ErrWriteFailed))
	assert.True(t, errors.HasCode(outer, errors.ErrRecordHistory))
	assert.False(t, errors.HasCode(outer, errors.ErrInternal))

	code, ok := errors.CodeOf(outer)
	require.True(t, ok)
	assert.Equal(t, errors.ErrRecordHistory, code)

	_, ok = errors.CodeOf(cause)
	assert.False(t, ok)
	assert.False(t, errors.HasCode(nil, errors.ErrInternal))
}

func TestUnknownCodeMessage(t *testing.T) {
	assert.NotEmpty(t, errors.GetErrorMessage(errors.ErrorCode("made_up")))
}
