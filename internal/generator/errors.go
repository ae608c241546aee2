package generator

import "codeberg.org/mutker/errgen/internal/errors"

const (
	// Request Errors
	ErrInvalidRequest = errors.ErrInvalidArgument
	ErrReservedName   = errors.ErrorCode("generator_reserved_name")
	ErrDuplicateName  = errors.ErrorCode("generator_duplicate_name")

	// Render Errors
	ErrRenderFailed = errors.ErrRenderFailed
	ErrFormatFailed = errors.ErrFormatFailed

	// Output Errors
	ErrPathCollision   = errors.ErrPathCollision
	ErrPackageConflict = errors.ErrPackageConflict
	ErrFileExists      = errors.ErrorCode("generator_file_exists")
	ErrWriteFailed     = errors.ErrWriteFailed

	// Operation Errors
	ErrOperationCanceled = errors.ErrCanceled
)
