// Package build provides version and build information for cmdntfy.
// This package has no dependencies on other internal packages.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns the multi-line version banner printed by --version.
func Info() string {
	version := Version
	if IsDevBuild() {
		version += " (development build)"
	}
	return fmt.Sprintf("%s\nBuilt from commit: %s\nBuild date: %s\nGo version: %s\n",
		version, Commit, BuildDate, runtime.Version())
}
