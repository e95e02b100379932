package gen

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound indicates a template identity no renderer could
// resolve.
var ErrTemplateNotFound = errors.New("strata: template not found")

// TemplateNotFoundError names the unresolvable template identity.
type TemplateNotFoundError struct {
	ID TemplateID
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	if e.ID.Lang == "" {
		return fmt.Sprintf("strata: no template for feature %s", e.ID.Feature)
	}
	return fmt.Sprintf("strata: no %s template for feature %s", e.ID.Lang, e.ID.Feature)
}

// Is reports whether the target matches the sentinel error for
// TemplateNotFoundError.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// NewTemplateNotFoundError creates a new TemplateNotFoundError.
func NewTemplateNotFoundError(id TemplateID) *TemplateNotFoundError {
	return &TemplateNotFoundError{ID: id}
}

// IsTemplateNotFoundError reports whether the error is a
// TemplateNotFoundError.
func IsTemplateNotFoundError(err error) bool {
	var te *TemplateNotFoundError
	return errors.As(err, &te)
}
