package actions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actiongen.evalgo.org/config"
	"actiongen.evalgo.org/introspect"
	"actiongen.evalgo.org/mapping"
)

type ServerListOpts struct {
	Name string `json:"name"`
}

type serverClient struct{}

func (*serverClient) List(ctx context.Context, opts ServerListOpts) ([]string, error) {
	return nil, nil
}

func (*serverClient) Get(ctx context.Context, id int64) (string, error) { return "", nil }

type computeClient struct {
	Servers serverClient
}

const computeCatalog = `
client: example.com/compute
methods:
  Servers.List:
    description: Lists all servers.
    params: [ctx, opts]
`

// staticSource serves a fixed mapping document.
type staticSource struct {
	doc string
	err error
}

func (s staticSource) GetMapping() (*mapping.Mapping, error) {
	if s.err != nil {
		return nil, s.err
	}
	return mapping.Parse([]byte(s.doc))
}

func computeBase(t *testing.T) *BaseAction {
	t.Helper()
	catalog, err := introspect.ParseCatalog([]byte(computeCatalog))
	require.NoError(t, err)
	return &BaseAction{
		Namespace:     "compute",
		NewFakeClient: func() (any, error) { return &computeClient{}, nil },
		Catalog:       catalog,
	}
}

func newTestGenerator(t *testing.T, doc string, opts ...Option) (*Generator, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	return NewGenerator(computeBase(t), staticSource{doc: doc}, opts...), hook
}

func warnings(hook *test.Hook) []logrus.Entry {
	var out []logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			out = append(out, *entry)
		}
	}
	return out
}

func TestCreateActionClass(t *testing.T) {
	g, _ := newTestGenerator(t, `{}`)

	class := g.CreateActionClass("Servers.List")
	require.NotNil(t, class)
	assert.Equal(t, "Servers.List", class.Name)
	assert.Equal(t, "Servers.List", class.ClientMethodName)
	assert.Same(t, g.base, class.Base)

	assert.Nil(t, g.CreateActionClass(""))
}

func TestCreateActions_WorkedExample(t *testing.T) {
	g, hook := newTestGenerator(t, `{"compute": {"_comment": "x", "list_servers": "servers_list"}}`)

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	d := descriptors[0]
	assert.Equal(t, "compute.list_servers", d.Name)
	require.NotNil(t, d.Class)
	assert.Equal(t, "servers_list", d.Class.ClientMethodName)

	// servers_list does not exist on the fake client.
	assert.Empty(t, d.ArgList)
	assert.Empty(t, d.Description)
	assert.Len(t, warnings(hook), 1)
}

func TestCreateActions_Cardinality(t *testing.T) {
	g, hook := newTestGenerator(t, `{
		"compute": {
			"_comment": "compute client",
			"list_servers": "Servers.List",
			"get_server": "Servers.Get",
			"list_servers_again": {"_comment": "alias", "method": "Servers.List"}
		},
		"storage": {"list_volumes": "Volumes.List"}
	}`)

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	names := make(map[string]bool)
	for _, d := range descriptors {
		names[d.Name] = true
	}
	assert.Len(t, names, 3)

	assert.Equal(t, Descriptor{
		Class:       descriptors[0].Class,
		Name:        "compute.list_servers",
		Method:      "Servers.List",
		Description: "Lists all servers.",
		ArgList:     "ctx context.Context, opts actions.ServerListOpts",
	}, descriptors[0])
	assert.Equal(t, "compute.get_server", descriptors[1].Name)
	assert.Equal(t, "ctx context.Context, arg1 int64", descriptors[1].ArgList)
	assert.Empty(t, descriptors[1].Description)
	assert.Equal(t, "compute.list_servers_again", descriptors[2].Name)
	assert.Equal(t, descriptors[0].ArgList, descriptors[2].ArgList)

	assert.Empty(t, warnings(hook))
}

func TestCreateActions_MissingNamespace(t *testing.T) {
	g, hook := newTestGenerator(t, `{"storage": {"list_volumes": "Volumes.List"}}`)

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	assert.NotNil(t, descriptors)
	assert.Empty(t, descriptors)
	assert.Empty(t, hook.AllEntries())
}

func TestCreateActions_EmptyMethodName(t *testing.T) {
	g, hook := newTestGenerator(t, `{"compute": {"noop": "", "odd": 42, "list_servers": "Servers.List"}}`)

	var descriptors []Descriptor
	var err error
	require.NotPanics(t, func() {
		descriptors, err = g.CreateActions()
	})
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	for _, d := range descriptors[:2] {
		assert.Nil(t, d.Class)
		assert.Empty(t, d.ArgList)
		assert.Empty(t, d.Description)
	}
	assert.NotEmpty(t, descriptors[2].ArgList)

	warns := warnings(hook)
	require.Len(t, warns, 2)
	assert.Equal(t, "noop", warns[0].Data["action"])
	assert.Contains(t, warns[0].Data["error"], ErrNoMethodBinding.Error())
}

func TestCreateActions_FailureIsolation(t *testing.T) {
	g, hook := newTestGenerator(t, `{"compute": {
		"list_servers": "Servers.List",
		"delete_server": "Servers.Delete",
		"get_server": "Servers.Get"
	}}`)

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	assert.NotEmpty(t, descriptors[0].ArgList)
	assert.Empty(t, descriptors[1].ArgList)
	assert.Empty(t, descriptors[1].Description)
	assert.NotNil(t, descriptors[1].Class)
	assert.NotEmpty(t, descriptors[2].ArgList)

	warns := warnings(hook)
	require.Len(t, warns, 1)
	assert.Equal(t, "compute", warns[0].Data["namespace"])
	assert.Equal(t, "delete_server", warns[0].Data["action"])
	assert.Contains(t, warns[0].Message, "compute.delete_server")
	assert.Contains(t, warns[0].Message, "Servers.Delete")
}

func TestCreateActions_FakeClientFailures(t *testing.T) {
	tests := []struct {
		name    string
		factory FakeClientFactory
		want    string
	}{
		{
			name:    "FactoryError",
			factory: func() (any, error) { return nil, errors.New("no endpoint") },
			want:    "no endpoint",
		},
		{
			name:    "FactoryPanic",
			factory: func() (any, error) { panic("nil config") },
			want:    "nil config",
		},
		{
			name:    "NilClient",
			factory: func() (any, error) { return nil, nil },
			want:    introspect.ErrNilClient.Error(),
		},
		{
			name: "NoFactory",
			want: ErrNoFakeClient.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			base := &BaseAction{Namespace: "compute", NewFakeClient: tt.factory}
			g := NewGenerator(base, staticSource{doc: `{"compute": {"a": "Servers.List", "b": "Servers.Get"}}`}, WithLogger(logger))

			descriptors, err := g.CreateActions()
			require.NoError(t, err)
			require.Len(t, descriptors, 2)
			for _, d := range descriptors {
				assert.Empty(t, d.ArgList)
				assert.Empty(t, d.Description)
			}

			warns := warnings(hook)
			require.Len(t, warns, 2)
			assert.Contains(t, warns[0].Data["error"], tt.want)
		})
	}
}

type failingIntrospector struct{}

func (failingIntrospector) ArgList(introspect.Method) (string, error) { return "partial", nil }

func (failingIntrospector) Description(introspect.Method) (string, error) {
	return "", errors.New("no docs")
}

func TestCreateActions_IntrospectorFailure(t *testing.T) {
	g, hook := newTestGenerator(t, `{"compute": {"list_servers": "Servers.List"}}`,
		WithIntrospector(failingIntrospector{}))

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	require.Len(t, descriptors, 1)
	assert.Empty(t, descriptors[0].ArgList)
	assert.Len(t, warnings(hook), 1)
}

func TestCreateActions_MappingErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dir := t.TempDir()

	t.Run("NotFound", func(t *testing.T) {
		loader := mapping.NewLoader(config.ActionsConfig{MappingPath: filepath.Join(dir, "missing.json")}, logger)
		descriptors, err := NewGenerator(computeBase(t), loader, WithLogger(logger)).CreateActions()
		assert.Nil(t, descriptors)
		assert.ErrorIs(t, err, mapping.ErrNotFound)
	})

	t.Run("Parse", func(t *testing.T) {
		g, _ := newTestGenerator(t, `{"compute": `)
		descriptors, err := g.CreateActions()
		assert.Nil(t, descriptors)
		assert.ErrorIs(t, err, mapping.ErrParse)
	})

	assert.Empty(t, warnings(hook))
}

func TestCreateActions_WithoutNamespace(t *testing.T) {
	doc := `{"compute": {"list": "Servers.List"}}`

	for name, base := range map[string]*BaseAction{"NilBase": nil, "EmptyNamespace": {}} {
		t.Run(name, func(t *testing.T) {
			g := NewGenerator(base, staticSource{doc: doc})
			assert.Empty(t, g.Namespace())

			descriptors, err := g.CreateActions()
			assert.ErrorIs(t, err, ErrNamespaceRequired)
			assert.Nil(t, descriptors)

			class := g.CreateActionClass("Servers.List")
			require.NotNil(t, class)
			_, err = class.FakeClientMethod()
			assert.ErrorIs(t, err, ErrNoFakeClient)
		})
	}
}

func TestCreateActions_InputSchemas(t *testing.T) {
	g, _ := newTestGenerator(t, `{"compute": {"list_servers": "Servers.List", "get_server": "Servers.Get"}}`,
		WithInputSchemas(true))

	descriptors, err := g.CreateActions()
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	require.Contains(t, descriptors[0].InputSchema, "opts")
	assert.Nil(t, descriptors[1].InputSchema)
}

func TestIntrospectionError(t *testing.T) {
	err := &IntrospectionError{Namespace: "compute", Action: "noop", Err: ErrNoMethodBinding}

	assert.True(t, errors.Is(err, ErrIntrospection))
	assert.True(t, errors.Is(err, ErrNoMethodBinding))
	assert.Equal(t, "compute.noop no client method configured", err.Error())
}
