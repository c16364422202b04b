package clients

import (
	"fmt"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// GitlabNamespace is the mapping namespace of GitLab actions.
const GitlabNamespace = "gitlab"

// GitlabFakeClient returns a factory for a *gitlab.Client without a token,
// pointed at cfg.GitlabURL. Method paths address the services of
// gitlab.Client, e.g. "Projects.ListProjects".
func GitlabFakeClient(cfg config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		client, err := gitlab.NewClient("", gitlab.WithBaseURL(cfg.GitlabURL))
		if err != nil {
			return nil, fmt.Errorf("failed to create GitLab client: %w", err)
		}
		return client, nil
	}
}
