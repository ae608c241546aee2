package skeleton

import "codeberg.org/mutker/errgen/internal/errors"

const (
	ErrMissingPlaceholder = errors.ErrMissingPlaceholder
	ErrInvalidIdentifier  = errors.ErrInvalidIdentifier
)
