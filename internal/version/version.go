// Package version holds build metadata stamped in via -ldflags, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0"
package version

//nolint:revive // Overwritten by the linker at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
