package actions

import (
	"errors"
	"fmt"
)

// Errors reported for a single action while building descriptors.
// These can be used with errors.Is() for error type checking.
var (
	// ErrIntrospection is matched by every IntrospectionError.
	ErrIntrospection = errors.New("introspection failed")

	// ErrNoMethodBinding is returned when an action has no client method configured.
	ErrNoMethodBinding = errors.New("no client method configured")

	// ErrNoFakeClient is returned when a base action has no fake client factory.
	ErrNoFakeClient = errors.New("no fake client factory")

	// ErrNamespaceRequired is returned when a generator has no namespace to build.
	ErrNamespaceRequired = errors.New("namespace is required")
)

// IntrospectionError reports why an action's client method could not be described.
// It never aborts a build; the action gets a degraded descriptor instead.
type IntrospectionError struct {
	Namespace string // Namespace of the action
	Action    string // Short action name
	Method    string // Client method path, empty when none is configured
	Err       error  // Underlying error
}

// Error implements the error interface for IntrospectionError.
func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("%s.%s %v", e.Namespace, e.Action, e.Err)
}

// Unwrap implements error unwrapping for IntrospectionError.
func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIntrospection.
func (e *IntrospectionError) Is(target error) bool {
	return target == ErrIntrospection
}
