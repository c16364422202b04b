package clients

import (
	"fmt"

	"code.gitea.io/sdk/gitea"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// GiteaNamespace is the mapping namespace of Gitea actions.
const GiteaNamespace = "gitea"

// GiteaFakeClient returns a factory for a *gitea.Client pointed at
// cfg.GiteaURL. An empty server version disables the version probe the
// client otherwise sends on creation.
func GiteaFakeClient(cfg config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		client, err := gitea.NewClient(cfg.GiteaURL, gitea.SetGiteaVersion(""))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gitea client: %w", err)
		}
		return client, nil
	}
}
