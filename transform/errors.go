package transform

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can use errors.Is.
var (
	ErrMissingComponents    = errors.New("openrpc document has no components.schemas")
	ErrUnresolvedReference  = errors.New("unresolved reference")
	ErrNotEnumerable        = errors.New("schema is not enumerable")
	ErrPropertyConflict     = errors.New("conflicting property definitions")
	ErrVariantNameCollision = errors.New("variant name collision")
	ErrReferenceCycle       = errors.New("reference cycle in composition")
)

// Error is a transformation failure tied to a single definition.
type Error struct {
	Kind       error
	Definition string
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("definition %s: %v", e.Definition, e.Kind)
	}
	return fmt.Sprintf("definition %s: %v: %s", e.Definition, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, definition string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Definition: definition, Detail: fmt.Sprintf(format, args...)}
}
