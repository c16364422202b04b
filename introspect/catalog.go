package introspect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MethodDoc documents one client method.
type MethodDoc struct {
	Description string   `yaml:"description"`
	Params      []string `yaml:"params"`
}

// Catalog is the static documentation of a client's methods, keyed by
// method path. It is normally embedded as YAML next to the client adapter:
//
//	client: github.com/hetznercloud/hcloud-go/v2/hcloud
//	methods:
//	  Server.List:
//	    description: Returns a list of servers for a specific page.
//	    params: [ctx, opts]
type Catalog struct {
	Client  string               `yaml:"client"`
	Methods map[string]MethodDoc `yaml:"methods"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse method catalog: %w", err)
	}
	if catalog.Methods == nil {
		catalog.Methods = map[string]MethodDoc{}
	}
	return &catalog, nil
}

// Lookup returns the documentation of path. A nil catalog documents nothing.
func (c *Catalog) Lookup(path string) (MethodDoc, bool) {
	if c == nil {
		return MethodDoc{}, false
	}
	doc, ok := c.Methods[path]
	return doc, ok
}

// ResolveDocumented resolves path on client and attaches its documentation
// from the catalog.
func (c *Catalog) ResolveDocumented(client any, path string) (Method, error) {
	m, err := Resolve(client, path)
	if err != nil {
		return Method{}, err
	}
	m.Doc, m.HasDoc = c.Lookup(path)
	return m, nil
}
