package migrate

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDialect indicates a migration dialect no renderer is
// registered for.
var ErrUnsupportedDialect = errors.New("strata: unsupported migration dialect")

// UnsupportedDialectError names the unknown dialect.
type UnsupportedDialectError struct {
	Dialect Dialect
}

// Error implements the error interface.
func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("strata: unsupported migration dialect %q", e.Dialect)
}

// Is reports whether the target matches the sentinel error for
// UnsupportedDialectError.
func (e *UnsupportedDialectError) Is(target error) bool {
	return target == ErrUnsupportedDialect
}

// NewUnsupportedDialectError creates a new UnsupportedDialectError.
func NewUnsupportedDialectError(d Dialect) *UnsupportedDialectError {
	return &UnsupportedDialectError{Dialect: d}
}

// IsUnsupportedDialectError reports whether the error is an
// UnsupportedDialectError.
func IsUnsupportedDialectError(err error) bool {
	var ue *UnsupportedDialectError
	return errors.As(err, &ue)
}
