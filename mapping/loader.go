package mapping

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"actiongen.evalgo.org/common"
	"actiongen.evalgo.org/config"
	"actiongen.evalgo.org/resources"
)

// embeddedRootName is the display name of the embedded resource root.
const embeddedRootName = "resources"

// Loader reads the action mapping configured in an ActionsConfig.
//
// Absolute paths are read from the local filesystem as-is. Relative paths are
// resolved against the resource root: the configured ResourceRoot directory,
// or the resources embedded in the binary when none is configured.
type Loader struct {
	path     string
	root     fs.FS
	rootName string
	logger   logrus.FieldLogger
}

// NewLoader creates a loader for cfg. A nil logger uses common.Logger.
func NewLoader(cfg config.ActionsConfig, logger logrus.FieldLogger) *Loader {
	if cfg.ResourceRoot != "" {
		return NewLoaderFS(cfg.MappingPath, os.DirFS(cfg.ResourceRoot), cfg.ResourceRoot, logger)
	}
	return NewLoaderFS(cfg.MappingPath, resources.FS, embeddedRootName, logger)
}

// NewLoaderFS creates a loader resolving relative paths against root.
// rootName is only used to report the resolved path.
func NewLoaderFS(mappingPath string, root fs.FS, rootName string, logger logrus.FieldLogger) *Loader {
	if logger == nil {
		logger = common.Logger
	}
	return &Loader{
		path:     mappingPath,
		root:     root,
		rootName: rootName,
		logger:   logger,
	}
}

// ResolvedPath returns the location the mapping is read from.
func (l *Loader) ResolvedPath() string {
	if filepath.IsAbs(l.path) {
		return l.path
	}
	return filepath.Join(l.rootName, filepath.FromSlash(l.path))
}

// GetMapping reads, parses and normalizes the mapping file. It fails with a
// *NotFoundError when the file cannot be read and with a *ParseError when
// its content is not a JSON object. Nothing is cached between calls.
func (l *Loader) GetMapping() (*Mapping, error) {
	resolved := l.ResolvedPath()

	l.logger.WithField("path", resolved).Infof("Processing action mapping from file: %s", resolved)

	data, err := l.read()
	if err != nil {
		return nil, &NotFoundError{Path: resolved, Err: err}
	}

	m, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = resolved
		}
		return nil, err
	}

	return m, nil
}

func (l *Loader) read() ([]byte, error) {
	if filepath.IsAbs(l.path) {
		return os.ReadFile(l.path)
	}

	name := path.Clean(strings.TrimPrefix(filepath.ToSlash(l.path), "./"))
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: l.path, Err: fs.ErrInvalid}
	}
	return fs.ReadFile(l.root, name)
}
