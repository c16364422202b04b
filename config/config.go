// Package config provides configuration management for the action generator.
//
// This package handles loading configuration from multiple sources with proper precedence:
//   - YAML configuration files
//   - .env files
//   - Environment variables (configurable prefix, default: ACTIONGEN_)
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Default values (set via SetConfigDefaults)
//  2. Configuration file (./config.yaml, ./configs/config.yaml, ~/.actiongen/config.yaml, /etc/actiongen/config.yaml)
//  3. .env file, exported into the process environment
//  4. Environment variables
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("ACTIONGEN", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader := mapping.NewLoader(cfg.Actions, logger)
//
// # Environment Variables
//
// Use the prefix and underscores for nested keys:
//   - ACTIONGEN_ACTIONS_MAPPING_PATH=/etc/actiongen/mapping.json
//   - ACTIONGEN_LOGGING_LEVEL=debug
//   - ACTIONGEN_CLIENTS_GITLAB_URL=https://gitlab.example.com
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultEnvPrefix is the environment variable prefix used by the actiongen command.
const DefaultEnvPrefix = "ACTIONGEN"

// ServiceConfig contains service metadata.
type ServiceConfig struct {
	// Name is the service name attached to log entries
	Name string `mapstructure:"name"`

	// Environment is the deployment environment (development, staging, production)
	Environment string `mapstructure:"environment"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format"`

	// AddCaller adds the calling function to every entry
	AddCaller bool `mapstructure:"add_caller"`
}

// ActionsConfig locates the action mapping and controls descriptor generation.
type ActionsConfig struct {
	// MappingPath is the mapping file. Absolute paths are read from disk,
	// relative paths are resolved against ResourceRoot.
	MappingPath string `mapstructure:"mapping_path"`

	// ResourceRoot is the directory relative mapping paths are resolved
	// against. Empty selects the resources embedded in the binary.
	ResourceRoot string `mapstructure:"resource_root"`

	// Namespaces restricts generation to the listed namespaces. Empty means all.
	Namespaces []string `mapstructure:"namespaces"`

	// InputSchemas attaches JSON schemas of struct parameters to descriptors.
	InputSchemas bool `mapstructure:"input_schemas"`
}

// ClientsConfig holds the endpoints used to build the credential-less client
// instances that are introspected. No connection is opened to any of them.
type ClientsConfig struct {
	GitlabURL     string `mapstructure:"gitlab_url"`
	GiteaURL      string `mapstructure:"gitea_url"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	S3Region      string `mapstructure:"s3_region"`
	RedisAddr     string `mapstructure:"redis_addr"`
}

// Config is the complete actiongen configuration.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Logging LoggingConfig `mapstructure:"logging"`
	Actions ActionsConfig `mapstructure:"actions"`
	Clients ClientsConfig `mapstructure:"clients"`
}

// Loader provides configuration loading functionality.
type Loader struct {
	v      *viper.Viper
	prefix string
}

// NewLoader creates a new configuration loader with the given environment prefix.
// The prefix is used for environment variables (e.g., "ACTIONGEN" -> "ACTIONGEN_ACTIONS_MAPPING_PATH").
func NewLoader(envPrefix string) *Loader {
	return &Loader{
		v:      viper.New(),
		prefix: envPrefix,
	}
}

// Viper exposes the underlying viper instance so command flags can be bound to keys.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetDefaults sets default configuration values.
// This should be called before Load().
func (l *Loader) SetDefaults(defaults map[string]interface{}) {
	for key, value := range defaults {
		l.v.SetDefault(key, value)
	}
}

// SetConfigDefaults sets the standard actiongen defaults.
func (l *Loader) SetConfigDefaults() {
	l.v.SetDefault("service.name", "actiongen")
	l.v.SetDefault("service.environment", "development")

	l.v.SetDefault("logging.level", "info")
	l.v.SetDefault("logging.format", "text")
	l.v.SetDefault("logging.add_caller", false)

	l.v.SetDefault("actions.mapping_path", "mapping.json")
	l.v.SetDefault("actions.resource_root", "")
	l.v.SetDefault("actions.namespaces", []string{})
	l.v.SetDefault("actions.input_schemas", false)

	l.v.SetDefault("clients.gitlab_url", "https://gitlab.com/api/v4")
	l.v.SetDefault("clients.gitea_url", "https://gitea.com")
	l.v.SetDefault("clients.minio_endpoint", "localhost:9000")
	l.v.SetDefault("clients.s3_region", "us-east-1")
	l.v.SetDefault("clients.redis_addr", "localhost:6379")
}

// Load reads configuration from file, .env, and environment variables.
// If cfgFile is empty, searches for config.yaml in standard locations.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (with prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func (l *Loader) Load(cfgFile string, target interface{}) error {
	if cfgFile != "" {
		l.v.SetConfigFile(cfgFile)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		l.v.AddConfigPath("./configs")
		l.v.AddConfigPath("$HOME/.actiongen")
		l.v.AddConfigPath("/etc/actiongen")
	}

	if err := l.v.ReadInConfig(); err != nil {
		// an explicit file must exist, auto-discovery may find nothing
		if cfgFile != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// .env values never override variables already present in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	if l.prefix != "" {
		l.v.SetEnvPrefix(l.prefix)
	}
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.v.Unmarshal(target); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}

	return nil
}

// LoadConfig is a convenience function that loads configuration with standard defaults.
func LoadConfig(envPrefix, cfgFile string) (*Config, error) {
	loader := NewLoader(envPrefix)
	loader.SetConfigDefaults()
	return loader.LoadConfig(cfgFile)
}

// LoadConfig loads and validates a Config using the loader's current
// defaults and bindings.
func (l *Loader) LoadConfig(cfgFile string) (*Config, error) {
	cfg := &Config{}
	if err := l.Load(cfgFile, cfg); err != nil {
		return nil, err
	}

	if err := ExpandPaths(cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ExpandPaths replaces a leading "~" in the mapping path and resource root
// with the user's home directory.
func ExpandPaths(cfg *Config) error {
	for _, p := range []*string{&cfg.Actions.MappingPath, &cfg.Actions.ResourceRoot} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand path %s: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// ValidateConfig validates the loaded configuration.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Actions.MappingPath) == "" {
		return fmt.Errorf("actions.mapping_path is required")
	}

	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
