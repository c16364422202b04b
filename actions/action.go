// Package actions turns an action mapping into action descriptors.
//
// Every namespace of the mapping has one BaseAction describing the service
// client its actions call. For each mapping entry a Generator binds a Class
// to the configured client method, resolves that method on a fake client
// (a client value that is never connected) and records its argument list
// and description in a Descriptor.
package actions

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"actiongen.evalgo.org/introspect"
)

// FakeClientFactory builds a client instance used only to look up methods.
// It must not open connections or require credentials.
type FakeClientFactory func() (any, error)

// BaseAction is the static description shared by all actions of a namespace.
type BaseAction struct {
	// Namespace is the mapping key of the actions, e.g. "hetzner".
	Namespace string

	// NewFakeClient builds the client the actions' methods are resolved on.
	NewFakeClient FakeClientFactory

	// Catalog documents the client's methods. It may be nil.
	Catalog *introspect.Catalog
}

// Class is an action bound to one client method of its base action.
// Classes are created by Generator.CreateActionClass and never modified.
type Class struct {
	Name             string
	ClientMethodName string
	Base             *BaseAction
}

// FakeClientMethod builds a fake client and resolves the bound method on it.
// A panicking factory is reported as an error.
func (c *Class) FakeClientMethod() (m introspect.Method, err error) {
	if c == nil || c.ClientMethodName == "" {
		return introspect.Method{}, ErrNoMethodBinding
	}
	if c.Base == nil || c.Base.NewFakeClient == nil {
		return introspect.Method{}, ErrNoFakeClient
	}

	client, err := c.newFakeClient()
	if err != nil {
		return introspect.Method{}, fmt.Errorf("failed to create fake client: %w", err)
	}

	return c.Base.Catalog.ResolveDocumented(client, c.ClientMethodName)
}

func (c *Class) newFakeClient() (client any, err error) {
	defer func() {
		if r := recover(); r != nil {
			client, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Base.NewFakeClient()
}

// Descriptor describes one generated action.
type Descriptor struct {
	// Class is nil when the entry has no client method configured.
	Class *Class `json:"-"`

	// Name is the fully qualified action name, "namespace.action".
	Name string `json:"name"`

	// Method is the bound client method path.
	Method string `json:"method,omitempty"`

	// Description is empty when the method is undocumented or could not be resolved.
	Description string `json:"description,omitempty"`

	// ArgList is the formatted parameter list, empty when the method could not be resolved.
	ArgList string `json:"arg_list"`

	// InputSchema holds JSON schemas of struct parameters, keyed by parameter name.
	InputSchema map[string]*jsonschema.Schema `json:"input_schema,omitempty"`
}
