package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMetadata indicates entity metadata missing an attribute a
// consumer depends on.
var ErrInvalidMetadata = errors.New("strata: invalid entity metadata")

// InvalidMetadataError names the missing attribute of an entity.
type InvalidMetadataError struct {
	Class string
	Attr  string
}

// Error implements the error interface.
func (e *InvalidMetadataError) Error() string {
	if e.Class == "" {
		return fmt.Sprintf("strata: entity metadata is missing %s", e.Attr)
	}
	return fmt.Sprintf("strata: entity %s is missing %s", e.Class, e.Attr)
}

// Is reports whether the target matches the sentinel error for
// InvalidMetadataError.
func (e *InvalidMetadataError) Is(target error) bool {
	return target == ErrInvalidMetadata
}

// NewInvalidMetadataError creates a new InvalidMetadataError.
func NewInvalidMetadataError(class, attr string) *InvalidMetadataError {
	return &InvalidMetadataError{Class: class, Attr: attr}
}

// IsInvalidMetadataError reports whether the error is an
// InvalidMetadataError.
func IsInvalidMetadataError(err error) bool {
	var ie *InvalidMetadataError
	return errors.As(err, &ie)
}

// ErrNamingAmbiguity indicates two tables deriving the same entity
// class name.
var ErrNamingAmbiguity = errors.New("strata: ambiguous entity class name")

// NamingAmbiguityError reports the tables that collide on one derived
// class name. Collisions are never merged; the caller must rename a
// table or build the entity from source.
type NamingAmbiguityError struct {
	ClassName string
	Tables    []string
}

// Error implements the error interface.
func (e *NamingAmbiguityError) Error() string {
	return fmt.Sprintf("strata: tables %s derive the same class name %s",
		strings.Join(e.Tables, ", "), e.ClassName)
}

// Is reports whether the target matches the sentinel error for
// NamingAmbiguityError.
func (e *NamingAmbiguityError) Is(target error) bool {
	return target == ErrNamingAmbiguity
}

// NewNamingAmbiguityError creates a new NamingAmbiguityError.
func NewNamingAmbiguityError(class string, tables []string) *NamingAmbiguityError {
	return &NamingAmbiguityError{ClassName: class, Tables: tables}
}

// IsNamingAmbiguityError reports whether the error is a
// NamingAmbiguityError.
func IsNamingAmbiguityError(err error) bool {
	var ne *NamingAmbiguityError
	return errors.As(err, &ne)
}
