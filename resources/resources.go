// Package resources embeds the files shipped with the actiongen binary.
// Relative mapping paths are resolved against FS unless a resource root
// directory is configured.
package resources

import "embed"

// DefaultMappingPath is the mapping file shipped with the binary.
const DefaultMappingPath = "mapping.json"

// FS holds the embedded resource files.
//
//go:embed *.json
var FS embed.FS
