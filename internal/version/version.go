// Package version reports the build of the moduledev binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/moduledev/cli/internal/version.Version=...".
var (
	Version   = devVersion
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const devVersion = "v0.0.0-dev"

// Info describes one build.
type Info struct {
	Version   string `yaml:"version"`
	GitCommit string `yaml:"gitCommit"`
	BuildDate string `yaml:"buildDate"`
	GoVersion string `yaml:"goVersion"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetInfo returns the build information. Values not set at link time are
// taken from the module build info when the binary carries one, as it does
// after go install.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}

// String renders the multi-line form printed by moduledev version.
func (i Info) String() string {
	return fmt.Sprintf("moduledev version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion)
}
