package clients

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// S3Namespace is the mapping namespace of Amazon S3 actions.
const S3Namespace = "s3"

// S3FakeClient returns a factory for an *s3.Client in cfg.S3Region with
// empty static credentials. Loading the default configuration reads only
// the local environment and shared config files.
func S3FakeClient(cfg config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("", "", "")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.UsePathStyle = true
		}), nil
	}
}
