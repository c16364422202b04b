package common

import (
	"fmt"
	"strings"
	"time"

	"actiongen.evalgo.org/version"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the minimum severity a logger emits.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggerConfig configures a logrus logger.
type LoggerConfig struct {
	Level      LogLevel // Minimum log level
	Format     string   // "json" or "text"
	Service    string   // Service name added to every entry
	AddCaller  bool     // Add caller information
	TimeFormat string   // Time format for logs
}

// DefaultLoggerConfig returns the text/info configuration used when nothing
// else is configured.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      LogLevelInfo,
		Format:     "text",
		TimeFormat: time.RFC3339,
	}
}

// ParseLogLevel converts a configuration string into a LogLevel.
// "warning" is accepted as an alias of "warn".
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return "", fmt.Errorf("unknown log level: %q", level)
	}
}

// NewLogger creates a logger configured according to config, writing through
// an OutputSplitter.
func NewLogger(config LoggerConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&OutputSplitter{})
	ConfigureLogger(logger, config)
	return logger
}

// ConfigureLogger applies level, format and caller settings to an existing
// logger without touching its output.
func ConfigureLogger(logger *logrus.Logger, config LoggerConfig) {
	switch config.Level {
	case LogLevelDebug:
		logger.SetLevel(logrus.DebugLevel)
	case LogLevelWarn:
		logger.SetLevel(logrus.WarnLevel)
	case LogLevelError:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timeFormat,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timeFormat,
			FullTimestamp:   true,
		})
	}

	logger.SetReportCaller(config.AddCaller)
}

// ServiceLogger returns an entry of logger carrying the service name and
// version on every line. A nil logger falls back to the global Logger.
func ServiceLogger(logger *logrus.Logger, serviceName string) *logrus.Entry {
	if logger == nil {
		logger = Logger
	}
	return logger.WithFields(logrus.Fields{
		"service": serviceName,
		"version": version.GetVersion(),
	})
}
