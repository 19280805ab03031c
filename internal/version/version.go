// Package version exposes build metadata, set at link time via
// -ldflags "-X github.com/arblack/trade-tracker/internal/version.Version=...".
package version

// Version is the build version string. "dev" when built without ldflags.
var Version = "dev"
