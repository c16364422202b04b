package introspect

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// InputSchemas reflects a JSON schema for every named struct parameter of m
// (or pointer to one), keyed by parameter name. Other parameters have no
// schema. Function and channel fields are described by an empty schema.
func InputSchemas(m Method) (schemas map[string]*jsonschema.Schema, err error) {
	t, err := m.funcType()
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			schemas = nil
			err = fmt.Errorf("failed to reflect input schema of %s: %v", m.Path, r)
		}
	}()

	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		Anonymous:                 true,
		Mapper:                    opaqueKinds,
	}

	names := m.paramNames()
	schemas = make(map[string]*jsonschema.Schema)
	for i := 0; i < t.NumIn(); i++ {
		if t.IsVariadic() && i == t.NumIn()-1 {
			continue
		}
		param := t.In(i)
		if param.Kind() == reflect.Pointer {
			param = param.Elem()
		}
		if param.Kind() != reflect.Struct || param.Name() == "" {
			continue
		}
		schemas[names[i]] = reflector.ReflectFromType(param)
	}
	return schemas, nil
}

func opaqueKinds(t reflect.Type) *jsonschema.Schema {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return &jsonschema.Schema{}
	}
	return nil
}
