package domainerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the variant tag of a domain error.
type Kind string

// External is the variant every domain error type carries: a failure reported
// by something outside the module, identified by a label.
const External Kind = "ExternalError"

// Domain marks an error type as a domain error. DomainError has no behaviour.
type Domain interface {
	error
	DomainError()
}

// Error is the shared domain error value.
type Error struct {
	Kind    Kind
	Label   string
	Message string
}

var _ Domain = Error{}

// NewExternal returns an ExternalError carrying label and message as given.
func NewExternal(label, message string) Error {
	return New(External, label, message)
}

// New returns an error of an arbitrary variant.
func New(kind Kind, label, message string) Error {
	return Error{Kind: kind, Label: label, Message: message}
}

// FromError folds a foreign error into an ExternalError labelled with the
// dynamic type of err.
func FromError(err error) Error {
	if err == nil {
		return NewExternal("", "")
	}
	return NewExternal(fmt.Sprintf("%T", err), err.Error())
}

func (e Error) Error() string {
	return Debug(string(e.Kind), e.Label, e.Message)
}

func (e Error) String() string {
	return e.Error()
}

func (e Error) GoString() string {
	return e.Error()
}

// Equal reports whether both errors have the same variant and fields.
func (e Error) Equal(other Error) bool {
	return e == other
}

func (Error) DomainError() {}

// Debug renders tag("label", "message"). Fields are embedded verbatim.
func Debug(tag, label, message string) string {
	var b strings.Builder
	b.Grow(len(tag) + len(label) + len(message) + 8)
	b.WriteString(tag)
	b.WriteString(`("`)
	b.WriteString(label)
	b.WriteString(`", "`)
	b.WriteString(message)
	b.WriteString(`")`)
	return b.String()
}

// AsDomain finds the first domain error in err's chain.
func AsDomain(err error) (Domain, bool) {
	var d Domain
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// IsDomain reports whether err's chain contains a domain error.
func IsDomain(err error) bool {
	_, ok := AsDomain(err)
	return ok
}
