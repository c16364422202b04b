// Package introspect recovers the calling signature and documentation of
// service client methods.
//
// A method is addressed by a dotted path relative to a client value, for
// example "Server.List" on *hcloud.Client: every element but the last names
// an exported struct field (or a method taking no arguments that returns the
// next value), the last element names the method. Go keeps neither parameter
// names nor doc comments at runtime, so both come from a Catalog supplied per
// client; parameter types always come from reflection. Type aliases are
// reported under the name of the aliased type.
package introspect

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Method is a resolved, callable client method.
type Method struct {
	// Path is the dotted path the method was resolved from.
	Path string

	// Func is the bound method value.
	Func reflect.Value

	// Doc holds the catalog documentation, if HasDoc is set.
	Doc    MethodDoc
	HasDoc bool
}

// Introspector describes a resolved method. Implementations must not invoke it.
type Introspector interface {
	// ArgList returns the parameter list in declaration order.
	ArgList(m Method) (string, error)

	// Description returns the documentation text, empty when none exists.
	Description(m Method) (string, error)
}

// Reflector is the default Introspector. It formats parameters as
// "name type" pairs, e.g. "ctx context.Context, opts hcloud.ServerListOpts".
type Reflector struct{}

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// ArgList implements Introspector.
func (Reflector) ArgList(m Method) (string, error) {
	t, err := m.funcType()
	if err != nil {
		return "", err
	}

	names := m.paramNames()
	parts := make([]string, t.NumIn())
	for i := range parts {
		parts[i] = names[i] + " " + paramType(t, i)
	}
	return strings.Join(parts, ", "), nil
}

// Description implements Introspector.
func (Reflector) Description(m Method) (string, error) {
	if _, err := m.funcType(); err != nil {
		return "", err
	}
	if !m.HasDoc {
		return "", nil
	}
	return strings.TrimSpace(m.Doc.Description), nil
}

func (m Method) funcType() (reflect.Type, error) {
	if !m.Func.IsValid() || m.Func.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, m.Path)
	}
	return m.Func.Type(), nil
}

// paramNames returns one name per parameter. Catalog names are used when
// they cover every parameter, otherwise names are derived from the types.
func (m Method) paramNames() []string {
	t := m.Func.Type()
	if m.HasDoc && len(m.Doc.Params) == t.NumIn() {
		return m.Doc.Params
	}

	names := make([]string, t.NumIn())
	seen := make(map[string]int, t.NumIn())
	for i := range names {
		name := fmt.Sprintf("arg%d", i)
		switch {
		case t.In(i) == contextType:
			name = "ctx"
		case t.IsVariadic() && i == t.NumIn()-1:
			name = "opts"
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s%d", name, n)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}

// paramType formats the type of parameter i. The variadic parameter keeps
// its "..." prefix.
func paramType(t reflect.Type, i int) string {
	if t.IsVariadic() && i == t.NumIn()-1 {
		return "..." + typeString(t.In(i).Elem())
	}
	return typeString(t.In(i))
}

func typeString(t reflect.Type) string {
	return strings.ReplaceAll(t.String(), "interface {}", "any")
}

// Resolve finds the method at path on client. Accessor methods met along the
// path are called; the final method is only bound, never invoked. Panics
// raised while walking the path are returned as errors.
func Resolve(client any, path string) (m Method, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = Method{}
			err = &ResolveError{Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if client == nil {
		return Method{}, &ResolveError{Path: path, Err: ErrNilClient}
	}

	elements := strings.Split(path, ".")
	for _, element := range elements {
		if element == "" {
			return Method{}, &ResolveError{Path: path, Err: ErrInvalidPath}
		}
	}

	v := reflect.ValueOf(client)
	for _, element := range elements[:len(elements)-1] {
		next, err := member(v, element)
		if err != nil {
			return Method{}, &ResolveError{Path: path, Element: element, Err: err}
		}
		v = next
	}

	last := elements[len(elements)-1]
	fn := methodByName(v, last)
	if !fn.IsValid() {
		return Method{}, &ResolveError{Path: path, Element: last, Err: ErrMemberNotFound}
	}

	return Method{Path: path, Func: fn}, nil
}

// member steps from v to the field or accessor named name.
func member(v reflect.Value, name string) (reflect.Value, error) {
	if accessor := methodByName(v, name); accessor.IsValid() {
		t := accessor.Type()
		if t.NumIn() != 0 || t.NumOut() == 0 {
			return reflect.Value{}, fmt.Errorf("%s is a method, not an accessor", name)
		}
		return accessor.Call(nil)[0], nil
	}

	s := indirect(v)
	if !s.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil value before %s", ErrMemberNotFound, name)
	}
	if s.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, s.Type())
	}

	field, ok := s.Type().FieldByName(name)
	if !ok || !field.IsExported() {
		return reflect.Value{}, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, s.Type())
	}
	return s.FieldByIndex(field.Index), nil
}

// methodByName looks name up on v, including pointer-receiver methods of
// addressable values and the dynamic value of interfaces.
func methodByName(v reflect.Value, name string) reflect.Value {
	if !v.IsValid() {
		return reflect.Value{}
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return reflect.Value{}
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	switch {
	case v.Kind() == reflect.Interface:
		return methodByName(v.Elem(), name)
	case v.Kind() != reflect.Pointer && v.CanAddr():
		return v.Addr().MethodByName(name)
	}
	return reflect.Value{}
}

// indirect dereferences pointers and interfaces, returning the zero Value on nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
