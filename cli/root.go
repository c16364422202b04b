// Package cli provides the actiongen command-line interface.
//
// The commands read the action mapping, build one generator per supported
// service client and print the resulting action descriptors:
//
//	actiongen list [namespace...]   descriptors of all or the given namespaces
//	actiongen namespaces            namespaces of the mapping and their clients
//	actiongen version               binary and client SDK versions
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags
//  2. Environment variables (ACTIONGEN_ prefix, e.g. ACTIONGEN_ACTIONS_MAPPING_PATH)
//  3. .env file
//  4. Configuration file
//  5. Default values
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"actiongen.evalgo.org/common"
	"actiongen.evalgo.org/config"
)

// Output formats of the list and namespaces commands.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// RootCmd is the actiongen root command.
var RootCmd = NewRootCmd()

// app holds the state shared by the commands of one root command.
type app struct {
	loader  *config.Loader
	cfgFile string
	output  string

	cfg    *config.Config
	logger logrus.FieldLogger
}

// NewRootCmd builds the root command and its subcommands. Every call returns
// an independent command tree with its own configuration loader.
func NewRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader(config.DefaultEnvPrefix)}
	a.loader.SetConfigDefaults()

	cmd := &cobra.Command{
		Use:   "actiongen",
		Short: "generate action descriptors from a service client mapping",
		Long: `actiongen reads an action mapping that binds short action names to
methods of service clients (Hetzner Cloud, GitLab, Gitea, Redis, S3, MinIO)
and prints one descriptor per action with the method's argument list and
description. Clients are never connected.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.actiongen/config.yaml)")
	flags.String("mapping", "", "action mapping file, absolute or relative to the resource root")
	flags.String("resource-root", "", "directory relative mapping paths are resolved against (default: embedded resources)")
	flags.Bool("input-schemas", false, "attach JSON schemas of struct parameters to descriptors")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.StringVarP(&a.output, "output", "o", OutputTable, "output format (table, json)")

	v := a.loader.Viper()
	_ = v.BindPFlag("actions.mapping_path", flags.Lookup("mapping"))
	_ = v.BindPFlag("actions.resource_root", flags.Lookup("resource-root"))
	_ = v.BindPFlag("actions.input_schemas", flags.Lookup("input-schemas"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))

	cmd.AddCommand(newListCmd(a), newNamespacesCmd(a), newVersionCmd())
	return cmd
}

// initConfig loads the configuration and sets up logging. Logs go to the
// command's error stream so that stdout carries only command output.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	switch a.output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("invalid output format: %s", a.output)
	}

	cfg, err := a.loader.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	level, err := common.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	logger := common.NewLogger(common.LoggerConfig{
		Level:     level,
		Format:    cfg.Logging.Format,
		Service:   cfg.Service.Name,
		AddCaller: cfg.Logging.AddCaller,
	})
	logger.SetOutput(cmd.ErrOrStderr())

	a.cfg = cfg
	a.logger = common.ServiceLogger(logger, cfg.Service.Name)
	return nil
}
