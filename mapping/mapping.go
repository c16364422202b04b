// Package mapping loads the action mapping file: a JSON document binding
// short action names to client method paths, grouped by namespace.
//
//	{
//	  "hetzner": {
//	    "_comment": "hcloud.Client",
//	    "server_list": "Server.List",
//	    "server_delete": {"method": "Server.DeleteWithResult"}
//	  }
//	}
//
// Key order is preserved as written in the document. "_comment" entries are
// documentation only and are removed at every depth while parsing.
package mapping

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CommentKey is the reserved annotation key stripped from every object.
const CommentKey = "_comment"

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// methodKey names the method in the object form of an action entry.
const methodKey = "method"

// Object is a JSON object that remembers key order.
type Object = orderedmap.OrderedMap[string, any]

// Entry is a single action binding of a namespace.
type Entry struct {
	Action string // short action name, e.g. "server_list"
	Method string // client method path, empty when none is configured
}

// Mapping is a normalized action mapping.
type Mapping struct {
	root *Object
}

// Parse parses a mapping document and strips comment annotations from it.
// The document root must be a JSON object.
func Parse(data []byte) (*Mapping, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return nil, &ParseError{Offset: 0, Reason: "unexpected UTF-8 byte order mark"}
	}
	if offset := invalidUTF8(data); offset >= 0 {
		return nil, &ParseError{Offset: offset, Reason: "invalid UTF-8 encoding"}
	}
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data)
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, &ParseError{Offset: -1, Reason: "mapping root must be a JSON object"}
	}

	root := decode(result).(*Object)
	StripComments(root)

	return &Mapping{root: root}, nil
}

// decode converts a gjson result into ordered objects, slices and scalars.
func decode(r gjson.Result) any {
	switch {
	case r.IsObject():
		obj := orderedmap.New[string, any]()
		r.ForEach(func(key, value gjson.Result) bool {
			obj.Set(key.String(), decode(value))
			return true
		})
		return obj
	case r.IsArray():
		arr := make([]any, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			arr = append(arr, decode(value))
			return true
		})
		return arr
	default:
		return r.Value()
	}
}

// invalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int64 {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return int64(i)
		}
		i += size
	}
	return -1
}

// syntaxError builds a ParseError, asking encoding/json for the offset of
// the first syntax error.
func syntaxError(data []byte) *ParseError {
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Offset: syntaxErr.Offset, Reason: syntaxErr.Error()}
	}
	if err != nil {
		return &ParseError{Offset: -1, Reason: err.Error()}
	}
	return &ParseError{Offset: -1, Reason: "invalid JSON"}
}

// Root returns the normalized document.
func (m *Mapping) Root() *Object {
	return m.root
}

// Namespaces returns the namespace keys in document order. Keys whose value
// is not an object are skipped.
func (m *Mapping) Namespaces() []string {
	namespaces := make([]string, 0, m.root.Len())
	for pair := m.root.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := pair.Value.(*Object); ok {
			namespaces = append(namespaces, pair.Key)
		}
	}
	return namespaces
}

// Namespace returns the sub-mapping of namespace, if present.
func (m *Mapping) Namespace(namespace string) (*Object, bool) {
	value, ok := m.root.Get(namespace)
	if !ok {
		return nil, false
	}
	obj, ok := value.(*Object)
	return obj, ok
}

// Actions returns the entries of namespace in document order. A missing
// namespace yields no entries.
func (m *Mapping) Actions(namespace string) []Entry {
	obj, ok := m.Namespace(namespace)
	if !ok {
		return nil
	}

	entries := make([]Entry, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Action: pair.Key, Method: methodName(pair.Value)})
	}
	return entries
}

// methodName extracts the method path of an action value. Strings are used
// as-is, objects contribute their "method" member, anything else binds nothing.
func methodName(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case *Object:
		if method, ok := v.Get(methodKey); ok {
			if s, ok := method.(string); ok {
				return s
			}
		}
	}
	return ""
}

// MarshalJSON encodes the normalized mapping, preserving key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.root)
}
