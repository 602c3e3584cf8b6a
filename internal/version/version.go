// Package version provides build-time version information for the layout
// tools.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	// Version is the semantic version
	Version = "0.1.0"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns the version with its commit, for banners.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
