package actions

import (
	"github.com/sirupsen/logrus"

	"actiongen.evalgo.org/common"
	"actiongen.evalgo.org/introspect"
	"actiongen.evalgo.org/mapping"
)

// MappingSource provides the normalized action mapping.
// *mapping.Loader is the usual implementation.
type MappingSource interface {
	GetMapping() (*mapping.Mapping, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger warnings are written to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithIntrospector replaces the default reflective introspector.
func WithIntrospector(introspector introspect.Introspector) Option {
	return func(g *Generator) {
		if introspector != nil {
			g.introspector = introspector
		}
	}
}

// WithInputSchemas enables JSON schemas for struct parameters on descriptors.
func WithInputSchemas(enabled bool) Option {
	return func(g *Generator) {
		g.inputSchemas = enabled
	}
}

// Generator builds the descriptors of a single namespace.
type Generator struct {
	base         *BaseAction
	source       MappingSource
	logger       logrus.FieldLogger
	introspector introspect.Introspector
	inputSchemas bool
}

// NewGenerator creates a generator for the namespace of base, reading
// entries from source. A generator without a base action has no namespace
// and its CreateActions fails with ErrNamespaceRequired.
func NewGenerator(base *BaseAction, source MappingSource, opts ...Option) *Generator {
	g := &Generator{
		base:         base,
		source:       source,
		logger:       common.Logger,
		introspector: introspect.Reflector{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Namespace returns the namespace the generator builds.
func (g *Generator) Namespace() string {
	if g.base == nil {
		return ""
	}
	return g.base.Namespace
}

// CreateActionClass binds method to the generator's base action. It returns
// nil when method is empty. The method is not resolved or called.
func (g *Generator) CreateActionClass(method string) *Class {
	if method == "" {
		return nil
	}
	return &Class{
		Name:             method,
		ClientMethodName: method,
		Base:             g.base,
	}
}

// CreateActions loads the mapping and returns one descriptor per entry of
// the generator's namespace, in mapping order. Mapping errors are returned
// as is. An entry whose method cannot be introspected is logged as a warning
// and gets a descriptor without argument list and description.
func (g *Generator) CreateActions() ([]Descriptor, error) {
	if g.Namespace() == "" {
		return nil, ErrNamespaceRequired
	}

	m, err := g.source.GetMapping()
	if err != nil {
		return nil, err
	}

	entries := m.Actions(g.base.Namespace)
	descriptors := make([]Descriptor, 0, len(entries))
	for _, entry := range entries {
		descriptors = append(descriptors, g.createAction(entry))
	}
	return descriptors, nil
}

func (g *Generator) createAction(entry mapping.Entry) Descriptor {
	class := g.CreateActionClass(entry.Method)
	descriptor := Descriptor{
		Class:  class,
		Name:   g.base.Namespace + "." + entry.Action,
		Method: entry.Method,
	}

	method, err := g.introspect(class, &descriptor)
	if err != nil {
		ierr := &IntrospectionError{
			Namespace: g.base.Namespace,
			Action:    entry.Action,
			Method:    entry.Method,
			Err:       err,
		}
		g.logger.WithFields(logrus.Fields{
			"namespace": ierr.Namespace,
			"action":    ierr.Action,
			"error":     ierr.Err.Error(),
		}).Warnf("Failed to create action: %v", ierr)
		descriptor.ArgList, descriptor.Description = "", ""
		return descriptor
	}

	if g.inputSchemas {
		schemas, err := introspect.InputSchemas(method)
		if err != nil {
			g.logger.WithField("action", descriptor.Name).Debugf("No input schema: %v", err)
		} else if len(schemas) > 0 {
			descriptor.InputSchema = schemas
		}
	}
	return descriptor
}

// introspect fills the argument list and description of d from the method
// bound to class.
func (g *Generator) introspect(class *Class, d *Descriptor) (introspect.Method, error) {
	method, err := class.FakeClientMethod()
	if err != nil {
		return introspect.Method{}, err
	}

	if d.ArgList, err = g.introspector.ArgList(method); err != nil {
		return introspect.Method{}, err
	}
	if d.Description, err = g.introspector.Description(method); err != nil {
		return introspect.Method{}, err
	}
	return method, nil
}
