package mapping

import (
	"errors"
	"fmt"
)

// Errors returned by the mapping loader.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNotFound is returned when the mapping path does not resolve to a readable file.
	ErrNotFound = errors.New("mapping file not found")

	// ErrParse is returned when the mapping file is not a valid JSON object.
	ErrParse = errors.New("mapping file could not be parsed")
)

// NotFoundError reports a mapping path that does not exist or cannot be read.
type NotFoundError struct {
	Path string // Resolved path of the mapping file
	Err  error  // Underlying error
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mapping file '%s' not found or unreadable: %v", e.Path, e.Err)
}

// Unwrap implements error unwrapping for NotFoundError.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError reports mapping content that is not well-formed.
type ParseError struct {
	Path   string // Resolved path of the mapping file
	Offset int64  // Byte offset of the syntax error, -1 when unknown
	Reason string // Detailed error message
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("failed to parse mapping file '%s' at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("failed to parse mapping file '%s': %s", e.Path, e.Reason)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
