// Package version reports build information for the actiongen binary and
// the versions of the service client SDKs it introspects.
package version

import (
	"runtime/debug"
	"sort"
)

// ModulePath is the import path of this module.
const ModulePath = "actiongen.evalgo.org"

// ClientModules are the service client SDK modules whose exported methods
// are introspected. Their versions determine the generated argument lists.
var ClientModules = []string{
	"github.com/hetznercloud/hcloud-go/v2",
	"gitlab.com/gitlab-org/api/client-go",
	"code.gitea.io/sdk/gitea",
	"github.com/redis/go-redis/v9",
	"github.com/aws/aws-sdk-go-v2/service/s3",
	"github.com/minio/minio-go/v7",
}

// DependencyInfo contains information about a module dependency.
type DependencyInfo struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Replace string `json:"replace,omitempty"` // If module is replaced
}

// BuildInfo contains the build information of the running binary.
type BuildInfo struct {
	GoVersion    string           `json:"goVersion"`
	MainModule   string           `json:"mainModule"`
	MainVersion  string           `json:"mainVersion"`
	Dependencies []DependencyInfo `json:"dependencies"`
}

// GetBuildInfo returns the build information with dependencies sorted by path.
func GetBuildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{
			GoVersion:    "unknown",
			MainModule:   "unknown",
			MainVersion:  "unknown",
			Dependencies: []DependencyInfo{},
		}
	}

	buildInfo := &BuildInfo{
		GoVersion:    info.GoVersion,
		MainModule:   info.Path,
		MainVersion:  info.Main.Version,
		Dependencies: make([]DependencyInfo, 0, len(info.Deps)),
	}

	for _, dep := range info.Deps {
		buildInfo.Dependencies = append(buildInfo.Dependencies, toDependencyInfo(dep))
	}

	sort.Slice(buildInfo.Dependencies, func(i, j int) bool {
		return buildInfo.Dependencies[i].Path < buildInfo.Dependencies[j].Path
	})

	return buildInfo
}

// GetVersion returns the version of this module, "dev" for local builds and
// "unknown" when no build information is embedded (e.g. under go test).
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Path == ModulePath || info.Main.Path == ModulePath {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		return "dev"
	}

	if dep := GetDependency(ModulePath); dep != nil {
		return dep.Version
	}

	return "unknown"
}

// GetDependency returns version information for a specific module, or nil if
// the module is not part of the build.
func GetDependency(modulePath string) *DependencyInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			depInfo := toDependencyInfo(dep)
			return &depInfo
		}
	}

	return nil
}

// ClientDependencies returns the build versions of the ClientModules that are
// part of the binary, in ClientModules order.
func ClientDependencies() []DependencyInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	byPath := make(map[string]*debug.Module, len(info.Deps))
	for _, dep := range info.Deps {
		byPath[dep.Path] = dep
	}

	deps := make([]DependencyInfo, 0, len(ClientModules))
	for _, path := range ClientModules {
		if dep, ok := byPath[path]; ok {
			deps = append(deps, toDependencyInfo(dep))
		}
	}
	return deps
}

func toDependencyInfo(dep *debug.Module) DependencyInfo {
	depInfo := DependencyInfo{
		Path:    dep.Path,
		Version: dep.Version,
	}
	if dep.Replace != nil {
		depInfo.Replace = dep.Replace.Path + "@" + dep.Replace.Version
	}
	return depInfo
}
