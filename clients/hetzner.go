package clients

import (
	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/config"
)

// HetznerNamespace is the mapping namespace of Hetzner Cloud actions.
const HetznerNamespace = "hetzner"

// HetznerFakeClient returns a factory for an unauthenticated *hcloud.Client.
// Method paths address the resource clients of hcloud.Client, e.g. "Server.List".
func HetznerFakeClient(config.ClientsConfig) actions.FakeClientFactory {
	return func() (any, error) {
		return hcloud.NewClient(hcloud.WithToken("")), nil
	}
}
