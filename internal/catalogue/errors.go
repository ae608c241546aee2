package catalogue

import "codeberg.org/mutker/errgen/internal/errors"

const (
	ErrTemplateNotFound = errors.ErrTemplateNotFound
)
