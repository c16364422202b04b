package clients

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// MinioNamespace is the mapping namespace of MinIO actions.
const MinioNamespace = "minio"

// MinioFakeClient returns a factory for a *minio.Client with empty static
// credentials for cfg.MinioEndpoint.
func MinioFakeClient(cfg config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds: credentials.NewStaticV4("", "", ""),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		return client, nil
	}
}
