// Package common provides the logging infrastructure shared by the action generator.
//
// Log output is routed by severity: error-level entries go to stderr while
// info, debug and warning entries go to stdout. This keeps generator warnings
// (for example a client method that could not be introspected) on the regular
// stream and reserves stderr for failures that abort a build.
//
// The logging system is built on logrus. A package-level Logger is provided
// for command-line use; library code accepts a logrus.FieldLogger so callers
// can inject their own instance.
//
// Usage Patterns:
//
//	common.Logger.WithFields(logrus.Fields{
//	    "namespace": "hetzner",
//	    "action":    "server_list",
//	}).Warn("Failed to create action")
package common

import (
	"bytes"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	textErrorMarker = []byte("level=error")
	jsonErrorMarker = []byte(`"level":"error"`)
)

// OutputSplitter routes formatted log entries to one of two writers based on
// their level. Entries produced by either the logrus text or JSON formatter
// at error level are written to Err; everything else goes to Out.
//
// A zero OutputSplitter writes to os.Stdout and os.Stderr.
//
// Example Message Routing:
//
//	Input: `time="2024-01-15T10:30:00Z" level=error msg="mapping file not found"`
//	Output: Routed to Err
//
//	Input: `{"level":"warning","msg":"Failed to create action: hetzner.server_list"}`
//	Output: Routed to Out
type OutputSplitter struct {
	Out io.Writer
	Err io.Writer
}

// Write implements io.Writer.
func (splitter *OutputSplitter) Write(p []byte) (n int, err error) {
	if bytes.Contains(p, textErrorMarker) || bytes.Contains(p, jsonErrorMarker) {
		return splitter.errWriter().Write(p)
	}
	return splitter.outWriter().Write(p)
}

func (splitter *OutputSplitter) outWriter() io.Writer {
	if splitter.Out != nil {
		return splitter.Out
	}
	return os.Stdout
}

func (splitter *OutputSplitter) errWriter() io.Writer {
	if splitter.Err != nil {
		return splitter.Err
	}
	return os.Stderr
}

// Logger is the global logger used by the actiongen command.
//
// It is pre-configured with an OutputSplitter and can be reconfigured through
// ConfigureLogger once the configuration has been loaded:
//
//	common.ConfigureLogger(common.Logger, common.LoggerConfig{
//	    Level:  common.LogLevelDebug,
//	    Format: "json",
//	})
var Logger = logrus.New()

func init() {
	Logger.SetOutput(&OutputSplitter{})
}
