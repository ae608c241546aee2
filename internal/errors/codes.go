package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrCanceled        ErrorCode = "operation_canceled"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrWriteConfig     ErrorCode = "write_config_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Resource errors
	ErrAlreadyExists ErrorCode = "resource_already_exists"

	// Template errors
	ErrTemplateNotFound   ErrorCode = "catalogue_template_not_found"
	ErrMissingPlaceholder ErrorCode = "skeleton_missing_placeholder"
	ErrInvalidIdentifier  ErrorCode = "invalid_identifier"

	// Generation errors
	ErrRenderFailed    ErrorCode = "render_failed"
	ErrFormatFailed    ErrorCode = "format_failed"
	ErrWriteFailed     ErrorCode = "write_failed"
	ErrPathCollision   ErrorCode = "generator_path_collision"
	ErrPackageConflict ErrorCode = "generator_package_conflict"

	// History errors
	ErrInitHistory   ErrorCode = "init_history_failed"
	ErrRecordHistory ErrorCode = "record_history_failed"
	ErrCloseHistory  ErrorCode = "close_history_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:           "Internal error occurred",
	ErrInvalidArgument:    "Invalid argument provided",
	ErrCanceled:           "Operation canceled",
	ErrInvalidConfig:      "Invalid configuration",
	ErrMissingConfig:      "Missing configuration",
	ErrBindFlags:          "Failed to bind flags",
	ErrReadConfig:         "Failed to read configuration",
	ErrWriteConfig:        "Failed to write configuration",
	ErrInvalidLogLevel:    "Invalid log level",
	ErrAlreadyExists:      "Resource already exists",
	ErrTemplateNotFound:   "Template not found",
	ErrMissingPlaceholder: "Template placeholder has no value",
	ErrInvalidIdentifier:  "Invalid identifier",
	ErrRenderFailed:       "Failed to render template",
	ErrFormatFailed:       "Failed to format generated source",
	ErrWriteFailed:        "Failed to write generated file",
	ErrPathCollision:      "Two outputs resolve to the same path",
	ErrPackageConflict:    "Two packages would share one directory",
	ErrInitHistory:        "Failed to initialize history",
	ErrRecordHistory:      "Failed to record generation history",
	ErrCloseHistory:       "Failed to close history database",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
