package schema

import (
	"errors"
	"strings"
)

// ErrIntrospection indicates a failure enumerating tables, columns or
// foreign keys from a live database.
var ErrIntrospection = errors.New("strata: schema introspection failed")

// IntrospectionError wraps a collaborator-reported introspection failure
// together with the offending table, when known.
type IntrospectionError struct {
	Table   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *IntrospectionError) Error() string {
	var b strings.Builder
	b.WriteString("strata: introspection error")
	if e.Table != "" {
		b.WriteString(" on table ")
		b.WriteString(e.Table)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *IntrospectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for
// IntrospectionError.
func (e *IntrospectionError) Is(target error) bool {
	return target == ErrIntrospection
}

// NewIntrospectionError creates a new IntrospectionError.
func NewIntrospectionError(table, message string, cause error) *IntrospectionError {
	return &IntrospectionError{
		Table:   table,
		Message: message,
		Cause:   cause,
	}
}

// IsIntrospectionError reports whether the error is an IntrospectionError.
func IsIntrospectionError(err error) bool {
	var ie *IntrospectionError
	return errors.As(err, &ie)
}
