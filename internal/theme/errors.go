package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat indicates corrupted theme input: a malformed color,
	// a bad version string, a schema violation, or a circular reference.
	ErrInvalidFormat = errors.New("invalid theme format")

	// ErrCircularReference is raised when @token references form a cycle.
	// It is a kind of ErrInvalidFormat.
	ErrCircularReference = fmt.Errorf("%w: circular reference", ErrInvalidFormat)

	// ErrTokenNotFound is returned by low-level accessors with no fallback.
	ErrTokenNotFound = errors.New("token not found")

	// ErrNotInitialized is returned when composition or resolution is
	// attempted before any base theme exists.
	ErrNotInitialized = errors.New("theme system not initialized")
)

// ValidationError describes a single structural validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) String() string {
	return e.Field + ": " + e.Message
}

// BuildError carries the validator's accumulated error list out of
// Builder.Build.
type BuildError struct {
	Errors      []ValidationError
	Suggestions []string
}

func (e *BuildError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		parts[i] = ve.String()
	}
	return fmt.Sprintf("theme validation failed (%d errors): %s",
		len(e.Errors), strings.Join(parts, "; "))
}

func (e *BuildError) Unwrap() error {
	return ErrInvalidFormat
}
