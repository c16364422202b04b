package mapping

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actiongen.evalgo.org/config"
)

const sampleMapping = `{
	"compute": {
		"_comment": "compute client",
		"list_servers": "servers_list",
		"get_server": "servers_get"
	}
}`

func writeMapping(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_AbsolutePath(t *testing.T) {
	path := writeMapping(t, t.TempDir(), "mapping.json", sampleMapping)
	logger, hook := test.NewNullLogger()

	loader := NewLoader(config.ActionsConfig{MappingPath: path}, logger)
	m, err := loader.GetMapping()
	require.NoError(t, err)

	assert.Equal(t, path, loader.ResolvedPath())
	assert.Equal(t, []Entry{
		{Action: "list_servers", Method: "servers_list"},
		{Action: "get_server", Method: "servers_get"},
	}, m.Actions("compute"))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, path, hook.LastEntry().Data["path"])
	assert.Contains(t, hook.LastEntry().Message, path)
}

func TestLoader_RelativeToResourceRoot(t *testing.T) {
	root := t.TempDir()
	writeMapping(t, root, filepath.Join("mappings", "openstack.json"), sampleMapping)
	logger, _ := test.NewNullLogger()

	loader := NewLoader(config.ActionsConfig{
		MappingPath:  "./mappings/openstack.json",
		ResourceRoot: root,
	}, logger)

	m, err := loader.GetMapping()
	require.NoError(t, err)
	assert.Len(t, m.Actions("compute"), 2)
	assert.Equal(t, filepath.Join(root, "mappings", "openstack.json"), loader.ResolvedPath())
}

func TestLoader_RelativeToFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/mapping.json": &fstest.MapFile{Data: []byte(sampleMapping)},
	}
	logger, _ := test.NewNullLogger()

	m, err := NewLoaderFS("data/mapping.json", fsys, "pkg", logger).GetMapping()
	require.NoError(t, err)
	assert.Equal(t, []string{"compute"}, m.Namespaces())
}

func TestLoader_EmbeddedDefault(t *testing.T) {
	logger, hook := test.NewNullLogger()

	loader := NewLoader(config.ActionsConfig{MappingPath: "mapping.json"}, logger)
	m, err := loader.GetMapping()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("resources", "mapping.json"), loader.ResolvedPath())
	assert.Equal(t, []string{"hetzner", "gitlab", "gitea", "redis", "s3", "minio"}, m.Namespaces())
	assert.Contains(t, m.Actions("hetzner"), Entry{Action: "server_delete", Method: "Server.DeleteWithResult"})

	out, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(out), CommentKey)
	assert.Len(t, hook.Entries, 1)
}

func TestLoader_NotFound(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()

	tests := []struct {
		name   string
		loader *Loader
	}{
		{
			name:   "MissingAbsolute",
			loader: NewLoader(config.ActionsConfig{MappingPath: filepath.Join(dir, "missing.json")}, logger),
		},
		{
			name:   "DirectoryAbsolute",
			loader: NewLoader(config.ActionsConfig{MappingPath: dir}, logger),
		},
		{
			name:   "MissingRelative",
			loader: NewLoaderFS("missing.json", fstest.MapFS{}, "pkg", logger),
		},
		{
			name:   "EscapingRelative",
			loader: NewLoaderFS("../outside.json", fstest.MapFS{}, "pkg", logger),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.loader.GetMapping()
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.False(t, errors.Is(err, ErrParse))

			var notFound *NotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, tt.loader.ResolvedPath(), notFound.Path)
		})
	}
}

func TestLoader_NotFoundWrapsFSError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewLoader(config.ActionsConfig{MappingPath: filepath.Join(t.TempDir(), "missing.json")}, logger).GetMapping()

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_ParseError(t *testing.T) {
	path := writeMapping(t, t.TempDir(), "broken.json", `{"compute": {"list_servers": }`)
	logger, _ := test.NewNullLogger()

	m, err := NewLoader(config.ActionsConfig{MappingPath: path}, logger).GetMapping()
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrNotFound))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoader_NilLoggerUsesDefault(t *testing.T) {
	loader := NewLoaderFS("mapping.json", fstest.MapFS{}, "pkg", nil)
	assert.NotNil(t, loader.logger)
}
