package clients

import (
	"github.com/redis/go-redis/v9"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// RedisNamespace is the mapping namespace of Redis actions.
const RedisNamespace = "redis"

// RedisFakeClient returns a factory for a *redis.Client configured for
// cfg.RedisAddr. go-redis connects lazily, so no connection is opened.
func RedisFakeClient(cfg config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), nil
	}
}
