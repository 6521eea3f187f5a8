// Package version holds build metadata for wiifolio.
package version

import "fmt"

// Version and Commit are set at build time via -ldflags "-X".
var (
	Version = "development"
	Commit  = "unknown"
)

// String returns the version, suffixed with the commit when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner is the line printed by the version command.
func Banner() string {
	return fmt.Sprintf("wiifolio %s", String())
}
