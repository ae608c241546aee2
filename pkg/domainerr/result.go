package domainerr

import "errors"

// Unit is the success type of operations that produce no value.
type Unit = struct{}

// Result is the outcome of an operation: a value of type O or a failure E.
// The zero Result is a success carrying the zero O.
type Result[O any, E Domain] struct {
	value  O
	err    E
	failed bool
}

// Ok returns a successful Result.
func Ok[O any, E Domain](v O) Result[O, E] {
	return Result[O, E]{value: v}
}

// Fail returns a failed Result.
func Fail[O any, E Domain](e E) Result[O, E] {
	return Result[O, E]{err: e, failed: true}
}

// Done returns the successful Result of an operation without a value.
func Done[E Domain]() Result[Unit, E] {
	return Result[Unit, E]{}
}

// FromWith adapts a (value, error) pair. An err already carrying an E is kept
// as is; any other err goes through convert.
func FromWith[O any, E Domain](v O, err error, convert func(error) E) Result[O, E] {
	if err == nil {
		return Ok[O, E](v)
	}
	var e E
	if errors.As(err, &e) {
		return Fail[O](e)
	}
	return Fail[O](convert(err))
}

// Capture adapts a (value, error) pair, folding foreign errors with FromError.
func Capture[O any](v O, err error) Result[O, Error] {
	return FromWith(v, err, FromError)
}

// Get unpacks the Result the Go way. The error is nil on success.
func (r Result[O, E]) Get() (O, error) {
	if r.failed {
		var zero O
		return zero, r.err
	}
	return r.value, nil
}

// IsOk reports whether the Result is a success.
func (r Result[O, E]) IsOk() bool {
	return !r.failed
}

// Value returns the success value, or the zero O on failure.
func (r Result[O, E]) Value() O {
	if r.failed {
		var zero O
		return zero
	}
	return r.value
}

// Err returns the failure and true, or the zero E and false on success.
func (r Result[O, E]) Err() (E, bool) {
	return r.err, r.failed
}
