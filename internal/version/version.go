// Package version holds build metadata for hrdesk.
package version

import (
	"fmt"
	"runtime"
)

// Version, Commit and Date are set at build time with -ldflags -X.
var (
	Version = "development"
	Commit  = "unknown"
	Date    = ""
)

// String returns the version, with the commit appended when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Long returns the version line printed by the version command.
func Long() string {
	s := fmt.Sprintf("hrdesk %s (%s %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Date != "" {
		s += " built " + Date
	}
	return s
}
