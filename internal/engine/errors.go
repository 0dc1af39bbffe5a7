package engine

import (
	"errors"
	"fmt"
)

// SurfaceError reports that a script's selector resolved to no display
// surface. This is fatal at startup: the run never begins.
type SurfaceError struct {
	Selector string
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("no display surface matches selector %q", e.Selector)
}

// IsSurfaceError reports whether err is a surface resolution failure.
// Uses errors.As to handle wrapped errors.
func IsSurfaceError(err error) bool {
	var se *SurfaceError
	return errors.As(err, &se)
}

// NewSurfaceError creates a SurfaceError for the given selector.
func NewSurfaceError(selector string) *SurfaceError {
	return &SurfaceError{Selector: selector}
}
