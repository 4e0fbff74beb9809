// Package version exposes the build metadata stamped in at link time.
package version

import (
	"fmt"
	"runtime"
)

// Overridden via -ldflags on release builds; the defaults cover a plain
// `go build`.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info is a snapshot of the build metadata plus the running toolchain.
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
}

// Get returns the build info of this binary.
func Get() Info {
	return Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the one-line form used by `robotfmt --version`.
func (i Info) String() string {
	return fmt.Sprintf("robotfmt %s (%s, %s)", i.Version, i.Platform, i.GoVersion)
}

// Rows returns the field/value pairs the version command tabulates.
func (i Info) Rows() [][]string {
	return [][]string{
		{"Version", i.Version},
		{"Build Date", i.BuildDate},
		{"Git Commit", i.GitCommit},
		{"Go Version", i.GoVersion},
		{"Platform", i.Platform},
	}
}
