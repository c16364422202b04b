package introspect

import (
	"errors"
	"fmt"
)

// Errors returned while resolving or describing a client method.
var (
	// ErrNilClient is returned when there is no client instance to resolve against.
	ErrNilClient = errors.New("client is nil")

	// ErrInvalidPath is returned for an empty method path or an empty path element.
	ErrInvalidPath = errors.New("invalid method path")

	// ErrMemberNotFound is returned when a path element names no exported field or method.
	ErrMemberNotFound = errors.New("member not found")

	// ErrNotCallable is returned when a Method does not hold a function value.
	ErrNotCallable = errors.New("method is not callable")
)

// ResolveError reports why a method path could not be resolved on a client.
type ResolveError struct {
	Path    string // Full dotted path being resolved
	Element string // Path element that failed
	Err     error  // Underlying error
}

// Error implements the error interface for ResolveError.
func (e *ResolveError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("cannot resolve method '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot resolve method '%s' at '%s': %v", e.Path, e.Element, e.Err)
}

// Unwrap implements error unwrapping for ResolveError.
func (e *ResolveError) Unwrap() error {
	return e.Err
}
