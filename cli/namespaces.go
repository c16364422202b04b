package cli

import (
	"github.com/spf13/cobra"

	"actiongen.evalgo.org/clients"
	"actiongen.evalgo.org/mapping"
)

// namespaceInfo summarizes one namespace of the mapping.
type namespaceInfo struct {
	Name      string `json:"name"`
	Actions   int    `json:"actions"`
	Client    string `json:"client,omitempty"`
	Supported bool   `json:"supported"`
}

func newNamespacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces",
		Short: "list the namespaces of the action mapping",
		Long: `Lists every namespace of the action mapping in document order with its
number of actions and the client SDK its methods are resolved on. Namespaces
without a supported client produce no descriptors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := a.namespaces()
			if err != nil {
				return err
			}
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			return writeNamespaceTable(cmd.OutOrStdout(), infos)
		},
	}
}

func (a *app) namespaces() ([]namespaceInfo, error) {
	m, err := mapping.NewLoader(a.cfg.Actions, a.logger).GetMapping()
	if err != nil {
		return nil, err
	}

	infos := make([]namespaceInfo, 0)
	for _, namespace := range m.Namespaces() {
		info := namespaceInfo{
			Name:    namespace,
			Actions: len(m.Actions(namespace)),
		}
		if catalog, err := clients.Catalog(namespace); err == nil {
			info.Client = catalog.Client
			info.Supported = true
		}
		infos = append(infos, info)
	}
	return infos, nil
}
