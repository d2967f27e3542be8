// Package version exposes build metadata injected at link time via
// -ldflags "-X github.com/Sumatoshi-tech/regiondex/pkg/version.Version=...".
package version

// Build metadata, overridden at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
