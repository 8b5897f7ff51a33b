package version

import "fmt"

// Version contains the doctools version.
// Set via build-time ldflags in release builds:
// go build -ldflags "-X github.com/krachkiste/doctools/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by `doctools version`.
func String() string {
	return fmt.Sprintf("doctools %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
