// Package clients provides the base actions of the supported service clients.
// Each namespace of the action mapping corresponds to one client SDK:
//
//   - hetzner: Hetzner Cloud (hcloud-go)
//   - gitlab: GitLab REST API (client-go)
//   - gitea: Gitea API (sdk/gitea)
//   - redis: Redis and compatible servers (go-redis)
//   - s3: Amazon S3 (aws-sdk-go-v2)
//   - minio: MinIO and S3 compatible storage (minio-go)
//
// A base action builds its fake client without credentials and without
// contacting the service, so methods can be resolved offline. Method
// documentation comes from the YAML catalogs embedded from docs/.
package clients

import (
	"embed"
	"fmt"
	"path"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
	"actiongen.evalgo.org/introspect"
)

//go:embed docs/*.yaml
var docs embed.FS

// adapter builds the fake client factory of one namespace.
type adapter struct {
	namespace string
	factory   func(cfg config.ClientsConfig) actions.FakeClientFactory
}

// adapters lists the supported namespaces in mapping order.
var adapters = []adapter{
	{HetznerNamespace, HetznerFakeClient},
	{GitlabNamespace, GitlabFakeClient},
	{GiteaNamespace, GiteaFakeClient},
	{RedisNamespace, RedisFakeClient},
	{S3Namespace, S3FakeClient},
	{MinioNamespace, MinioFakeClient},
}

// Namespaces returns the supported namespaces.
func Namespaces() []string {
	namespaces := make([]string, len(adapters))
	for i, a := range adapters {
		namespaces[i] = a.namespace
	}
	return namespaces
}

// Catalog returns the embedded method catalog of a namespace.
func Catalog(namespace string) (*introspect.Catalog, error) {
	data, err := docs.ReadFile(path.Join("docs", namespace+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no method catalog for namespace %s: %w", namespace, err)
	}
	catalog, err := introspect.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("namespace %s: %w", namespace, err)
	}
	return catalog, nil
}

// BaseAction returns the base action of a namespace.
func BaseAction(namespace string, cfg config.ClientsConfig) (*actions.BaseAction, error) {
	for _, a := range adapters {
		if a.namespace != namespace {
			continue
		}
		catalog, err := Catalog(namespace)
		if err != nil {
			return nil, err
		}
		return &actions.BaseAction{
			Namespace:     namespace,
			NewFakeClient: a.factory(cfg),
			Catalog:       catalog,
		}, nil
	}
	return nil, fmt.Errorf("unsupported namespace: %s", namespace)
}

// BaseActions returns the base actions of all supported namespaces.
func BaseActions(cfg config.ClientsConfig) ([]*actions.BaseAction, error) {
	bases := make([]*actions.BaseAction, 0, len(adapters))
	for _, a := range adapters {
		base, err := BaseAction(a.namespace, cfg)
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}
	return bases, nil
}

// NewRegistry registers a generator for each namespace in cfg.Actions.Namespaces,
// or for every supported namespace when the list is empty. All generators
// read their entries from source.
func NewRegistry(cfg *config.Config, source actions.MappingSource, opts ...actions.Option) (*actions.Registry, error) {
	namespaces := cfg.Actions.Namespaces
	if len(namespaces) == 0 {
		namespaces = Namespaces()
	}

	opts = append([]actions.Option{actions.WithInputSchemas(cfg.Actions.InputSchemas)}, opts...)

	registry := actions.NewRegistry()
	for _, namespace := range namespaces {
		base, err := BaseAction(namespace, cfg.Clients)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(actions.NewGenerator(base, source, opts...)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
