package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"actiongen.evalgo.org/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version of actiongen and its client SDKs",
		Args:  cobra.NoArgs,
		// no configuration is needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			info := version.GetBuildInfo()
			fmt.Fprintf(out, "actiongen %s (%s)\n", version.GetVersion(), info.GoVersion)
			for _, dep := range version.ClientDependencies() {
				fmt.Fprintf(out, "  %s %s\n", dep.Path, dep.Version)
			}
		},
	}
}
