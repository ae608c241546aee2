// Package domainerr holds the runtime half of the generated error modules.
//
// Every module produced by errgen declares its own error type, but all of them
// share the same shape: a variant tag plus a label naming the external source
// that failed and a free-form message. This package provides that shape once
// (Error), the capability marker generated types satisfy (Domain) and the
// generic outcome type they alias (Result).
//
// Errors are plain comparable values. Formatting always yields the debug form
//
//	ExternalError("db", "timeout")
//
// and is never customised per module.
package domainerr
