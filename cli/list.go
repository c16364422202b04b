package cli

import (
	"github.com/spf13/cobra"

	"actiongen.evalgo.org/actions"
	"actiongen.evalgo.org/clients"
	"actiongen.evalgo.org/mapping"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [namespace...]",
		Short: "list the generated action descriptors",
		Long: `Builds the action descriptors of the given namespaces, or of every
configured namespace when none are given, and prints them.

Actions whose client method cannot be resolved are still listed without
argument list and description; a warning is logged for each of them.`,
		Example: `  actiongen list
  actiongen list hetzner redis -o json
  actiongen list --mapping /etc/actiongen/mapping.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := a.createActions(args)
			if err != nil {
				return err
			}
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), descriptors)
			}
			return writeDescriptorTable(cmd.OutOrStdout(), descriptors)
		},
	}
}

// createActions builds the descriptors of namespaces, or of every
// registered namespace when namespaces is empty.
func (a *app) createActions(namespaces []string) ([]actions.Descriptor, error) {
	cfg := *a.cfg
	if len(namespaces) > 0 {
		cfg.Actions.Namespaces = namespaces
	}

	loader := mapping.NewLoader(cfg.Actions, a.logger)
	registry, err := clients.NewRegistry(&cfg, loader, actions.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	if len(namespaces) > 0 {
		return registry.CreateActions(namespaces...)
	}
	return registry.CreateAllActions()
}
